package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"menuflow/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondAccepted sends a 202 response for work queued in the background.
func RespondAccepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var formatErr *domain.FormatError
	var planErr *domain.InvalidPlanError
	switch {
	case errors.As(err, &formatErr):
		return http.StatusBadRequest, "INVALID_DOCUMENT", formatErr.Error()
	case errors.As(err, &planErr):
		return http.StatusBadRequest, "INVALID_PLAN", planErr.Error()
	case errors.Is(err, domain.ErrMenuNotFound):
		return http.StatusNotFound, "MENU_NOT_FOUND", "menu not found"
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "ITEM_NOT_FOUND", "menu item not found"
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, "JOB_NOT_FOUND", "import job not found"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported document format; allowed: tabular, pdf, word, delimited, structured"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest, "EMPTY_DOCUMENT", "document contains no readable records"
	case errors.Is(err, domain.ErrItemAlreadyExists):
		return http.StatusConflict, "ITEM_ALREADY_EXISTS", "an identical item already exists on this menu"
	case errors.Is(err, domain.ErrInvalidItem):
		return http.StatusBadRequest, "INVALID_ITEM", "item rejected by validation"
	case errors.Is(err, domain.ErrRepositoryUnavailable):
		return http.StatusServiceUnavailable, "REPOSITORY_UNAVAILABLE", "menu storage is temporarily unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
