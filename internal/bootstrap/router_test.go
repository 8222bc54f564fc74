package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ig-assessment/assessment-api/internal/projects/store"
)

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return BuildRouter(RouterDeps{
		ServiceName: "test-service",
		Env:         "test",
		Version:     "1.0.0",
		Store:       store.New(),
	})
}

func TestUnknownRouteReturnsNotFoundShape(t *testing.T) {
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "Not Found", "path": "/nope"}`, rr.Body.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
}

func TestHealthAndAPIAreMounted(t *testing.T) {
	r := buildTestRouter()

	for _, path := range []string{"/health", "/healthz", "/api/projects", "/api/stats"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, "path %s", path)
	}
}
