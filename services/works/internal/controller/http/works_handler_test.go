package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zidesign/pkg/apperr"
	"zidesign/pkg/function"
	"zidesign/pkg/logger"
	"zidesign/services/works/internal/entity"
	"zidesign/services/works/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWorksUseCase is a mock implementation of WorksUseCase
type MockWorksUseCase struct {
	mock.Mock
}

func (m *MockWorksUseCase) ListWorks(ctx context.Context, filter entity.ListFilter) ([]*entity.Work, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorksUseCase) CreateWork(ctx context.Context, input entity.NewWork) (*entity.Work, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorksUseCase) UpdateWork(ctx context.Context, workID int64, status string) (*entity.Work, error) {
	args := m.Called(workID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorksUseCase) DeleteWork(ctx context.Context, workID int64) error {
	args := m.Called(workID)
	return args.Error(0)
}

var _ usecase.WorksUseCase = (*MockWorksUseCase)(nil)

func setupTestRouter(h *WorksHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(function.Gin(h))
	return router
}

func perform(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func int64Ptr(v int64) *int64 {
	return &v
}

func sampleWork() *entity.Work {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &entity.Work{
		ID:        1,
		Title:     "Sunset",
		Category:  "illustration",
		ImageURL:  "https://cdn.test/works/5/sunset_abcdef12.jpg",
		License:   "cc-by",
		Tags:      []string{},
		AuthorID:  5,
		Status:    entity.StatusPending,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestOptions_Preflight(t *testing.T) {
	router := setupTestRouter(NewWorksHandler(new(MockWorksUseCase), logger.New()))

	w := perform(router, "OPTIONS", "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestUnsupportedMethod(t *testing.T) {
	router := setupTestRouter(NewWorksHandler(new(MockWorksUseCase), logger.New()))

	w := perform(router, "PATCH", "/", "{}")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Method not allowed", decode(t, w)["error"])
}

func TestListWorks_Filters(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	listed := sampleWork()
	listed.AuthorName = "Alice"
	mockUseCase.On("ListWorks", entity.ListFilter{Status: "approved", Category: "photo", AuthorID: int64Ptr(5)}).
		Return([]*entity.Work{listed}, nil)
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "GET", "/?status=approved&category=photo&author_id=5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	works := decode(t, w)["works"].([]interface{})
	require.Len(t, works, 1)
	assert.Equal(t, "Alice", works[0].(map[string]interface{})["author_name"])
	mockUseCase.AssertExpectations(t)
}

func TestListWorks_EmptyIsArray(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	mockUseCase.On("ListWorks", entity.ListFilter{}).Return(nil, nil)
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "GET", "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"works":[]}`, w.Body.String())
}

func TestListWorks_ZeroAuthorIDIsApplied(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	mockUseCase.On("ListWorks", entity.ListFilter{AuthorID: int64Ptr(0)}).Return([]*entity.Work{}, nil)
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "GET", "/?author_id=0", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"works":[]}`, w.Body.String())
	mockUseCase.AssertExpectations(t)
}

func TestListWorks_InvalidAuthorID(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "GET", "/?author_id=abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid author_id", decode(t, w)["error"])
	mockUseCase.AssertNotCalled(t, "ListWorks", mock.Anything)
}

func TestCreateWork_Success(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	mockUseCase.On("CreateWork", mock.MatchedBy(func(in entity.NewWork) bool {
		return in.AuthorID == 5 && in.AuthorRole == "user" && in.Title == "Sunset" && in.ImageBase64 == "aGVsbG8="
	})).Return(sampleWork(), nil)
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "POST", "/", `{"title":"Sunset","category":"illustration","license":"cc-by","author_id":5,"image_base64":"aGVsbG8="}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decode(t, w)
	assert.Equal(t, "Work created successfully", response["message"])
	work := response["work"].(map[string]interface{})
	assert.Equal(t, "pending", work["status"])
	assert.Equal(t, []interface{}{}, work["tags"])
	mockUseCase.AssertExpectations(t)
}

func TestCreateWork_MissingFields(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	mockUseCase.On("CreateWork", mock.Anything).Return(nil, apperr.Validation("Missing required fields"))
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "POST", "/", `{"title":"Sunset"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decode(t, w)["error"])
}

func TestCreateWork_StorageError(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	mockUseCase.On("CreateWork", mock.Anything).Return(nil, errors.New("failed to store image: timeout"))
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "POST", "/", `{"title":"Sunset","category":"c","license":"l","author_id":"5","image_base64":"aGVsbG8="}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode(t, w)["error"])
}

func TestUpdateWork_RequiresID(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "PUT", "/", `{"status":"approved"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Work ID is required", decode(t, w)["error"])
}

func TestUpdateWork_Success(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	approved := sampleWork()
	approved.Status = entity.StatusApproved
	mockUseCase.On("UpdateWork", int64(1), "approved").Return(approved, nil)
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "PUT", "/", `{"work_id":1,"status":"approved"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode(t, w)
	assert.NotContains(t, response, "message")
	assert.Equal(t, "approved", response["work"].(map[string]interface{})["status"])
}

func TestUpdateWork_FetchWithoutStatus(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	mockUseCase.On("UpdateWork", int64(1), "").Return(sampleWork(), nil)
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "PUT", "/", `{"work_id":"1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateWork_NotFound(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	mockUseCase.On("UpdateWork", int64(99), "approved").Return(nil, apperr.NotFound("Work not found"))
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "PUT", "/", `{"work_id":99,"status":"approved"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Work not found", decode(t, w)["error"])
}

func TestDeleteWork(t *testing.T) {
	mockUseCase := new(MockWorksUseCase)
	mockUseCase.On("DeleteWork", int64(3)).Return(nil)
	mockUseCase.On("DeleteWork", int64(4)).Return(apperr.NotFound("Work not found"))
	router := setupTestRouter(NewWorksHandler(mockUseCase, logger.New()))

	w := perform(router, "DELETE", "/?id=3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Work deleted successfully", decode(t, w)["message"])

	w = perform(router, "DELETE", "/?id=4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(router, "DELETE", "/", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Work ID is required", decode(t, w)["error"])

	w = perform(router, "DELETE", "/?id=x1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid work ID", decode(t, w)["error"])
}
