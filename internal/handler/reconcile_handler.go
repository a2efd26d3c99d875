package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuflow/internal/domain"
	"menuflow/internal/middleware"
	"menuflow/internal/service"
)

// ReconcileHandler compares parse results against persisted menus.
type ReconcileHandler struct {
	reconcileService service.ReconcileService
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconcileService service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconcileService: reconcileService}
}

// Reconcile handles POST /api/v1/menus/:id/reconcile. The body is a parse
// result, possibly edited by the caller since parsing. The response carries
// one advisory conflict record per item, in item order.
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
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

	var result domain.ParseResult
	if err := c.ShouldBindJSON(&result); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a parse result")
		return
	}

	records, err := h.reconcileService.Reconcile(c.Request.Context(), restaurantID, menuID, &result)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"menu_id":   menuID,
		"menu_name": result.MenuName,
		"conflicts": records,
	})
}
