package cvstore

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobboard-backend/internal/shared/telemetry"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Cleanup(telemetry.SetLogger(zap.NewNop()))
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService()
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

type cvEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    CV     `json:"data"`
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) cvEnvelope {
	t.Helper()
	var env cvEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env), resp.Body.String())
	return env
}

func TestCVLifecycle(t *testing.T) {
	r := newTestRouter(t)

	resp := do(r, http.MethodPost, "/cv", `{"userId":"user-1","personalInfo":{"fullName":"Jane","email":"jane@example.com"},"skills":["Go"]}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	created := decode(t, resp)
	assert.True(t, created.Success)
	assert.Equal(t, "CV created successfully", created.Message)
	assert.Equal(t, "cv-test-1", created.Data.ID)

	resp = do(r, http.MethodGet, "/cv?userId=user-1", "")
	require.Equal(t, http.StatusOK, resp.Code)
	fetched := decode(t, resp)
	assert.True(t, fetched.Success)
	assert.Equal(t, created.Data.ID, fetched.Data.ID)
	assert.Equal(t, []string{"Go"}, fetched.Data.Skills)

	resp = do(r, http.MethodPut, "/cv", `{"id":"cv-test-1","personalInfo":{"fullName":"Jane Smith"},"skills":["Go","SQL"]}`)
	require.Equal(t, http.StatusOK, resp.Code)
	updated := decode(t, resp)
	assert.Equal(t, "CV updated successfully", updated.Message)
	assert.Equal(t, "user-1", updated.Data.UserID)
	assert.True(t, updated.Data.CreatedAt.Equal(created.Data.CreatedAt))
	assert.Equal(t, []string{"Go", "SQL"}, updated.Data.Skills)
}

func TestCVErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		want   string
	}{
		{name: "get without user", method: http.MethodGet, target: "/cv", status: http.StatusBadRequest, want: "User ID is required"},
		{name: "get unknown user", method: http.MethodGet, target: "/cv?userId=ghost", status: http.StatusNotFound, want: "CV not found"},
		{name: "create without personal info", method: http.MethodPost, target: "/cv", body: `{"skills":["Go"]}`, status: http.StatusBadRequest, want: "Personal information is required"},
		{name: "create bad json", method: http.MethodPost, target: "/cv", body: `{`, status: http.StatusInternalServerError, want: "Failed to create CV"},
		{name: "update without id", method: http.MethodPut, target: "/cv", body: `{"personalInfo":{"fullName":"x"}}`, status: http.StatusBadRequest, want: "CV ID is required"},
		{name: "update unknown", method: http.MethodPut, target: "/cv", body: `{"id":"cv-ghost"}`, status: http.StatusNotFound, want: "CV not found"},
		{name: "update bad json", method: http.MethodPut, target: "/cv", body: `[]`, status: http.StatusInternalServerError, want: "Failed to update CV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(r, tt.method, tt.target, tt.body)

			require.Equal(t, tt.status, resp.Code)
			assert.JSONEq(t, `{"success":false,"error":"`+tt.want+`"}`, resp.Body.String())
		})
	}
}
