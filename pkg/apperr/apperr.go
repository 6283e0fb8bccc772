// Package apperr holds the caller-facing error taxonomy shared by the services.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindMethodNotAllowed
	KindUnhandledAction
)

// Error is an error whose message is safe to return to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func MethodNotAllowed() *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: "Method not allowed"}
}

func UnhandledAction() *Error {
	return &Error{Kind: KindUnhandledAction, Message: "Invalid action"}
}

// Internal hides the cause behind a generic message.
func Internal() *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error"}
}

// As unwraps err into an *Error. Errors outside the taxonomy come back as Internal with ok=false.
func As(err error) (appErr *Error, ok bool) {
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return Internal(), false
}

func Status(err error) int {
	appErr, _ := As(err)
	switch appErr.Kind {
	case KindValidation, KindUnhandledAction:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
