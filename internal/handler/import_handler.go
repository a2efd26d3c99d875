package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuflow/internal/domain"
	"menuflow/internal/middleware"
	"menuflow/internal/service"
)

// ImportHandler commits resolution plans and exposes job polling.
type ImportHandler struct {
	importService service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Commit handles POST /api/v1/menus/:id/import. The body is an approved
// resolution plan. Small plans run synchronously and return the result with
// 200; larger plans are queued and return a job handle with 202.
func (h *ImportHandler) Commit(c *gin.Context) {
	restaurantID, err := middleware.GetRestaurantID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_RESTAURANT_ID", "missing restaurant context")
		return
	}
	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_MENU_ID", "menu id must be a valid UUID")
		return
	}

	var plan domain.ResolutionPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a resolution plan")
		return
	}

	outcome, err := h.importService.Commit(c.Request.Context(), &service.CommitInput{
		RestaurantID: restaurantID,
		MenuID:       menuID,
		Plan:         &plan,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	if outcome.Job != nil {
		RespondAccepted(c, outcome.Job)
		return
	}
	RespondOK(c, outcome.Result)
}

// GetJob handles GET /api/v1/imports/:id.
func (h *ImportHandler) GetJob(c *gin.Context) {
	restaurantID, err := middleware.GetRestaurantID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_RESTAURANT_ID", "missing restaurant context")
		return
	}
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JOB_ID", "job id must be a valid UUID")
		return
	}

	job, err := h.importService.GetJob(c.Request.Context(), restaurantID, jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, job)
}
