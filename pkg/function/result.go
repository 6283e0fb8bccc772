package function

import (
	"encoding/json"
	"net/http"

	"zidesign/pkg/apperr"
	"zidesign/pkg/logger"
)

const internalErrorBody = `{"error":"Internal server error"}`

// Result is what an operation produces: either a payload with its status, or an error.
type Result struct {
	Status  int
	Payload interface{}
	Err     error
}

func OK(payload interface{}) Result {
	return Result{Status: http.StatusOK, Payload: payload}
}

func Created(payload interface{}) Result {
	return Result{Status: http.StatusCreated, Payload: payload}
}

func Fail(err error) Result {
	return Result{Err: err}
}

type errorBody struct {
	Error string `json:"error"`
}

// Encode serializes a result into a response envelope.
func Encode(res Result) Response {
	if res.Err != nil {
		appErr, _ := apperr.As(res.Err)
		return encodeJSON(apperr.Status(res.Err), errorBody{Error: appErr.Message})
	}
	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	return encodeJSON(status, res.Payload)
}

// Respond logs failures outside the error taxonomy, then encodes the result.
func Respond(log *logger.Logger, operation string, res Result) Response {
	if res.Err != nil {
		if _, ok := apperr.As(res.Err); !ok && log != nil {
			log.Error("%s failed: %v", operation, res.Err)
		}
	}
	return Encode(res)
}

func encodeJSON(status int, payload interface{}) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    JSONHeaders(),
			Body:       internalErrorBody,
		}
	}
	return Response{
		StatusCode: status,
		Headers:    JSONHeaders(),
		Body:       string(body),
	}
}
