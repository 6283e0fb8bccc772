package function

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zidesign/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Success(t *testing.T) {
	resp := Encode(Created(map[string]string{"message": "ok"}))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.JSONEq(t, `{"message":"ok"}`, resp.Body)
	assert.False(t, resp.IsBase64Encoded)
}

func TestEncode_TypedError(t *testing.T) {
	resp := Encode(Fail(apperr.Conflict("User already exists")))

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"error":"User already exists"}`, resp.Body)
}

func TestEncode_UnexpectedErrorIsGeneric(t *testing.T) {
	resp := Encode(Fail(errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal server error"}`, resp.Body)
}

func TestEncode_UnmarshalablePayload(t *testing.T) {
	resp := Encode(OK(map[string]interface{}{"bad": make(chan int)}))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, json.Valid([]byte(resp.Body)))
}

func TestPreflight(t *testing.T) {
	resp := Preflight("GET", "POST", "OPTIONS")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "", resp.Body)
	assert.False(t, resp.IsBase64Encoded)
	assert.Equal(t, "GET, POST, OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
	assert.Equal(t, "Content-Type", resp.Headers["Access-Control-Allow-Headers"])
	assert.Equal(t, "86400", resp.Headers["Access-Control-Max-Age"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
}

func TestResponse_JSONShape(t *testing.T) {
	raw, err := json.Marshal(Encode(OK(map[string]int{"n": 1})))
	require.NoError(t, err)

	var shape map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &shape))
	assert.Contains(t, shape, "statusCode")
	assert.Contains(t, shape, "headers")
	assert.Contains(t, shape, "body")
	assert.Equal(t, false, shape["isBase64Encoded"])
}

func TestDecodeBody(t *testing.T) {
	var v struct {
		Action string `json:"action"`
	}

	require.NoError(t, Request{Body: ""}.DecodeBody(&v))
	assert.Equal(t, "", v.Action)

	require.NoError(t, Request{Body: `{"action":"login"}`}.DecodeBody(&v))
	assert.Equal(t, "login", v.Action)

	encoded := base64.StdEncoding.EncodeToString([]byte(`{"action":"register"}`))
	require.NoError(t, Request{Body: encoded, IsBase64Encoded: true}.DecodeBody(&v))
	assert.Equal(t, "register", v.Action)

	err := Request{Body: `{"action":`}.DecodeBody(&v)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestRequestMethodAndQuery(t *testing.T) {
	assert.Equal(t, "GET", Request{}.Method())
	assert.Equal(t, "DELETE", Request{HTTPMethod: "delete"}.Method())
	assert.Equal(t, "", Request{}.Query("id"))
	assert.Equal(t, "7", Request{QueryStringParameters: map[string]string{"id": "7"}}.Query("id"))
}

func TestParseID(t *testing.T) {
	id, present, err := ParseID(json.Number("42"))
	assert.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, int64(42), id)

	_, present, err = ParseID(json.Number(""))
	assert.NoError(t, err)
	assert.False(t, present)

	_, present, err = ParseID(json.Number("0"))
	assert.NoError(t, err)
	assert.False(t, present)

	_, present, err = ParseID(json.Number("abc"))
	assert.Error(t, err)
	assert.True(t, present)
}

func TestRecover(t *testing.T) {
	h := Recover(nil, HandlerFunc(func(ctx context.Context, req Request) Response {
		panic("boom")
	}))

	resp := h.Handle(context.Background(), Request{})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal server error"}`, resp.Body)
}

func TestGin_PassesRequestAndWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got Request
	h := HandlerFunc(func(ctx context.Context, req Request) Response {
		got = req
		return Encode(Created(map[string]string{"message": "done"}))
	})

	router := gin.New()
	router.NoRoute(Gin(h))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/anything?status=approved&status=pending", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, "POST", got.HTTPMethod)
	assert.Equal(t, "approved", got.Query("status"))
	assert.Equal(t, `{"a":1}`, got.Body)
	assert.Equal(t, "application/json", got.Headers["Content-Type"])

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"message":"done"}`, w.Body.String())
}

func TestGin_PreflightHasEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.NoRoute(Gin(HandlerFunc(func(ctx context.Context, req Request) Response {
		return Preflight("POST", "OPTIONS")
	})))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Body.String())
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestGin_NilBodyRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.NoRoute(Gin(HandlerFunc(func(ctx context.Context, req Request) Response {
		return Encode(OK(map[string]string{"id": req.Query("id"), "body": req.Body}))
	})))

	for _, method := range []string{"DELETE", "GET"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(method, "/?id=7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, method)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"), method)
		assert.JSONEq(t, `{"id":"7","body":""}`, w.Body.String(), method)
	}
}
