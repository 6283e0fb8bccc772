package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"zidesign/pkg/apperr"
	"zidesign/pkg/function"
	"zidesign/pkg/logger"
	"zidesign/services/works/internal/entity"
	"zidesign/services/works/internal/usecase"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}

type WorksHandler struct {
	worksUseCase usecase.WorksUseCase
	logger       *logger.Logger
}

func NewWorksHandler(worksUseCase usecase.WorksUseCase, logger *logger.Logger) *WorksHandler {
	return &WorksHandler{
		worksUseCase: worksUseCase,
		logger:       logger,
	}
}

type CreateWorkRequest struct {
	Title       string      `json:"title" example:"Summer Sunset"`
	Description *string     `json:"description"`
	Category    string      `json:"category" example:"illustration"`
	License     string      `json:"license" example:"cc-by"`
	Tags        []string    `json:"tags"`
	AuthorID    json.Number `json:"author_id" swaggertype:"integer" example:"1"`
	AuthorRole  string      `json:"author_role" example:"user"`
	ImageBase64 string      `json:"image_base64"`
}

type UpdateWorkRequest struct {
	WorkID json.Number `json:"work_id" swaggertype:"integer" example:"1"`
	Status string      `json:"status" example:"approved"`
}

type WorksResponse struct {
	Works []*entity.Work `json:"works"`
}

type WorkResponse struct {
	Work    *entity.Work `json:"work"`
	Message string       `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *WorksHandler) Handle(ctx context.Context, req function.Request) function.Response {
	switch req.Method() {
	case http.MethodOptions:
		return function.Preflight(allowedMethods...)
	case http.MethodGet:
		return function.Respond(h.logger, "list works", h.ListWorks(ctx, req))
	case http.MethodPost:
		return function.Respond(h.logger, "create work", h.CreateWork(ctx, req))
	case http.MethodPut:
		return function.Respond(h.logger, "update work", h.UpdateWork(ctx, req))
	case http.MethodDelete:
		return function.Respond(h.logger, "delete work", h.DeleteWork(ctx, req))
	default:
		return function.Encode(function.Fail(apperr.MethodNotAllowed()))
	}
}

// ListWorks godoc
// @Summary      List works
// @Description  Works joined with their author, newest first. Filters combine with AND.
// @Tags         works
// @Produce      json
// @Param        status     query  string   false  "Exact status"
// @Param        category   query  string   false  "Exact category"
// @Param        author_id  query  integer  false  "Author ID"
// @Success      200  {object}  WorksResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /works [get]
func (h *WorksHandler) ListWorks(ctx context.Context, req function.Request) function.Result {
	filter := entity.ListFilter{
		Status:   req.Query("status"),
		Category: req.Query("category"),
	}
	if raw := req.Query("author_id"); raw != "" {
		authorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return function.Fail(apperr.Validation("Invalid author_id"))
		}
		filter.AuthorID = &authorID
	}

	works, err := h.worksUseCase.ListWorks(ctx, filter)
	if err != nil {
		return function.Fail(err)
	}
	if works == nil {
		works = []*entity.Work{}
	}
	return function.OK(WorksResponse{Works: works})
}

// CreateWork godoc
// @Summary      Submit a work
// @Description  Uploads the image and stores the work. Admin submissions are approved immediately, others wait for moderation.
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        request body CreateWorkRequest true "Work and base64 image"
// @Success      201  {object}  WorkResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /works [post]
func (h *WorksHandler) CreateWork(ctx context.Context, req function.Request) function.Result {
	var body CreateWorkRequest
	if err := req.DecodeBody(&body); err != nil {
		return function.Fail(err)
	}

	authorID, _, err := function.ParseID(body.AuthorID)
	if err != nil {
		return function.Fail(apperr.Validation("Invalid author_id"))
	}

	authorRole := body.AuthorRole
	if authorRole == "" {
		authorRole = "user"
	}

	work, err := h.worksUseCase.CreateWork(ctx, entity.NewWork{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		License:     body.License,
		Tags:        body.Tags,
		AuthorID:    authorID,
		AuthorRole:  authorRole,
		ImageBase64: body.ImageBase64,
	})
	if err != nil {
		return function.Fail(err)
	}
	return function.Created(WorkResponse{Work: work, Message: "Work created successfully"})
}

// UpdateWork godoc
// @Summary      Update or fetch a work
// @Description  Sets the status when one is given; without a status the current work is returned unchanged.
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        request body UpdateWorkRequest true "Work ID and optional status"
// @Success      200  {object}  WorkResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /works [put]
func (h *WorksHandler) UpdateWork(ctx context.Context, req function.Request) function.Result {
	var body UpdateWorkRequest
	if err := req.DecodeBody(&body); err != nil {
		return function.Fail(err)
	}

	workID, present, err := function.ParseID(body.WorkID)
	if err != nil {
		return function.Fail(apperr.Validation("Invalid work ID"))
	}
	if !present {
		return function.Fail(apperr.Validation("Work ID is required"))
	}

	work, err := h.worksUseCase.UpdateWork(ctx, workID, body.Status)
	if err != nil {
		return function.Fail(err)
	}
	return function.OK(WorkResponse{Work: work})
}

// DeleteWork godoc
// @Summary      Delete a work
// @Tags         works
// @Produce      json
// @Param        id  query  integer  true  "Work ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /works [delete]
func (h *WorksHandler) DeleteWork(ctx context.Context, req function.Request) function.Result {
	workID, present, err := function.ParseID(json.Number(req.Query("id")))
	if err != nil {
		return function.Fail(apperr.Validation("Invalid work ID"))
	}
	if !present {
		return function.Fail(apperr.Validation("Work ID is required"))
	}

	if err := h.worksUseCase.DeleteWork(ctx, workID); err != nil {
		return function.Fail(err)
	}
	return function.OK(MessageResponse{Message: "Work deleted successfully"})
}
