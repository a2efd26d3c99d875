package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRestaurantID is the gin context key holding the caller's
// restaurant id.
const ContextKeyRestaurantID = "restaurant_id"

// RestaurantContext extracts the X-Restaurant-ID header and stores it on the
// request context. Every menu route is scoped to one restaurant; requests
// without a valid id are rejected before reaching a handler.
func RestaurantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Restaurant-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "MISSING_RESTAURANT_ID", "message": "X-Restaurant-ID header is required"},
			})
			return
		}
		restaurantID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "INVALID_RESTAURANT_ID", "message": "X-Restaurant-ID must be a valid UUID"},
			})
			return
		}
		c.Set(ContextKeyRestaurantID, restaurantID)
		c.Next()
	}
}

// GetRestaurantID returns the restaurant id stored by RestaurantContext.
func GetRestaurantID(c *gin.Context) (uuid.UUID, error) {
	v, exists := c.Get(ContextKeyRestaurantID)
	if !exists {
		return uuid.Nil, errors.New("restaurant context not set")
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("restaurant context has unexpected type")
	}
	return id, nil
}
