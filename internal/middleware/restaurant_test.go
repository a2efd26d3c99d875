package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menuflow/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func scopedEcho() (*gin.Engine, *uuid.UUID) {
	var captured uuid.UUID
	r := gin.New()
	r.Use(middleware.RestaurantContext())
	r.GET("/ping", func(c *gin.Context) {
		id, err := middleware.GetRestaurantID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		captured = id
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestRestaurantContext_ValidHeader(t *testing.T) {
	r, captured := scopedEcho()
	restaurantID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Restaurant-ID", restaurantID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, restaurantID, *captured)
}

func TestRestaurantContext_MissingHeader(t *testing.T) {
	r, _ := scopedEcho()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_RESTAURANT_ID")
}

func TestRestaurantContext_InvalidUUID(t *testing.T) {
	r, _ := scopedEcho()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Restaurant-ID", "not-a-uuid")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_RESTAURANT_ID")
}

func TestGetRestaurantID_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := middleware.GetRestaurantID(c)
	require.Error(t, err)
}
