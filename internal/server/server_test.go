package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/server"

	"github.com/stretchr/testify/assert"
)

func TestHealthz(t *testing.T) {
	e := server.New()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMetricsEndpointIsExposed(t *testing.T) {
	e := server.New()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
