package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/handler"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	h := gen.Handler(gen.NewStrictHandler(handler.NewHealthHandler(), nil))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[gen.Health](t, rec)
	require.Equal(t, "ok", body.Status)
}

func TestGetOpenAPI_servesEmbeddedDocument(t *testing.T) {
	rec := do(newHTTPHandler(handler.Services{}), http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi:")
}

func TestGetOpenAPI_NoDocument_Returns404(t *testing.T) {
	h := gen.Handler(gen.NewStrictHandler(handler.NewHealthHandler(), nil))

	rec := do(h, http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "no API document", body.Error.Message)
}

func TestUnknownRoute_returnsJSON404(t *testing.T) {
	rec := do(newHTTPHandler(handler.Services{}), http.MethodGet, "/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "route not found", body.Error.Message)
}
