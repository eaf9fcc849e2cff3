package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcapi/pkg/api"
)

func TestInfo(t *testing.T) {
	h := NewInfoHandler(testLogger(), "1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	w := httptest.NewRecorder()
	h.Info(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.InfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "1.0.0", resp.Version)
	assert.NotEmpty(t, resp.APIName)
	assert.ElementsMatch(t,
		[]string{"add", "subtract", "multiply", "divide", "power", "sqrt"},
		resp.SupportedOperations)

	for _, endpoint := range []string{
		"POST /api/calculate",
		"GET /api/history",
		"POST /api/register",
		"POST /api/login",
		"GET /api/info",
	} {
		assert.Contains(t, resp.Endpoints, endpoint)
	}
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler(testLogger(), "dev")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "dev", resp.Version)
}
