package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"menuflow/internal/middleware"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_PreservesCallerValue(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestLogger_IncludesRestaurantScope(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.RestaurantContext())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	restaurantID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Restaurant-ID", restaurantID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), "GET /ping 200")
	assert.Contains(t, buf.String(), "restaurant="+restaurantID.String())
}

func TestLogger_OmitsScopeOnUnscopedRoutes(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.NotContains(t, buf.String(), "restaurant=")
}
