package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"menuflow/internal/handler"
	"menuflow/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newScopedRouter registers the route behind the restaurant-scoping
// middleware, the same way the real router wires menu routes.
func newScopedRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	group := r.Group("/api/v1")
	group.Use(middleware.RestaurantContext())
	group.Handle(method, path, h)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeEnvelope unmarshals the standard response envelope, returning the
// data payload as raw JSON for the caller to inspect.
func decodeEnvelope(t *testing.T, body io.Reader) (success bool, data json.RawMessage, apiErr *handler.APIError) {
	t.Helper()
	var envelope struct {
		Success bool              `json:"success"`
		Data    json.RawMessage   `json:"data"`
		Error   *handler.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope.Success, envelope.Data, envelope.Error
}
