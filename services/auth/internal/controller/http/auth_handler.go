package http

import (
	"context"
	"encoding/json"
	"net/http"

	"zidesign/pkg/apperr"
	"zidesign/pkg/function"
	"zidesign/pkg/logger"
	"zidesign/services/auth/internal/entity"
	"zidesign/services/auth/internal/usecase"
)

const (
	ActionRegister      = "register"
	ActionLogin         = "login"
	ActionUpdateProfile = "update_profile"
)

var allowedMethods = []string{http.MethodPost, http.MethodOptions}

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// AuthRequest is the body of every auth call; the action selects which fields apply.
type AuthRequest struct {
	Action string      `json:"action" example:"register"`
	Email  string      `json:"email" example:"alice@test.com"`
	Name   *string     `json:"name" example:"Alice"`
	UserID json.Number `json:"user_id" swaggertype:"integer" example:"1"`
	Bio    *string     `json:"bio"`
	Avatar *string     `json:"avatar"`
}

type UserResponse struct {
	User    *entity.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Handle godoc
// @Summary      Register, login or update profile
// @Description  Dispatches on the "action" field: register (email, name), login (email), update_profile (user_id, optional name/bio/avatar).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body AuthRequest true "Action and its fields"
// @Success      200  {object}  UserResponse
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      405  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth [post]
func (h *AuthHandler) Handle(ctx context.Context, req function.Request) function.Response {
	switch req.Method() {
	case http.MethodOptions:
		return function.Preflight(allowedMethods...)
	case http.MethodPost:
	default:
		return function.Encode(function.Fail(apperr.MethodNotAllowed()))
	}

	var body AuthRequest
	if err := req.DecodeBody(&body); err != nil {
		return function.Encode(function.Fail(err))
	}

	switch body.Action {
	case ActionRegister:
		return function.Respond(h.logger, ActionRegister, h.register(ctx, body))
	case ActionLogin:
		return function.Respond(h.logger, ActionLogin, h.login(ctx, body))
	case ActionUpdateProfile:
		return function.Respond(h.logger, ActionUpdateProfile, h.updateProfile(ctx, body))
	default:
		return function.Encode(function.Fail(apperr.UnhandledAction()))
	}
}

func (h *AuthHandler) register(ctx context.Context, body AuthRequest) function.Result {
	var name string
	if body.Name != nil {
		name = *body.Name
	}

	user, err := h.authUseCase.Register(ctx, body.Email, name)
	if err != nil {
		return function.Fail(err)
	}
	return function.Created(UserResponse{User: user, Message: "User registered successfully"})
}

func (h *AuthHandler) login(ctx context.Context, body AuthRequest) function.Result {
	user, err := h.authUseCase.Login(ctx, body.Email)
	if err != nil {
		return function.Fail(err)
	}
	return function.OK(UserResponse{User: user})
}

func (h *AuthHandler) updateProfile(ctx context.Context, body AuthRequest) function.Result {
	userID, present, err := function.ParseID(body.UserID)
	if err != nil {
		return function.Fail(apperr.Validation("Invalid user ID"))
	}
	if !present {
		return function.Fail(apperr.Validation("User ID is required"))
	}

	user, err := h.authUseCase.UpdateProfile(ctx, userID, entity.ProfileUpdate{
		Name:   body.Name,
		Bio:    body.Bio,
		Avatar: body.Avatar,
	})
	if err != nil {
		return function.Fail(err)
	}
	return function.OK(UserResponse{User: user})
}
