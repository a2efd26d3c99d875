package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuflow/internal/csvexport"
	"menuflow/internal/middleware"
	"menuflow/internal/service"
)

// MenuHandler exposes read access to persisted menus.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListItems handles GET /api/v1/menus/:id/items.
func (h *MenuHandler) ListItems(c *gin.Context) {
	restaurantID, menuID, ok := menuRequestScope(c)
	if !ok {
		return
	}

	items, err := h.menuService.ListItems(c.Request.Context(), restaurantID, menuID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"menu_id": menuID,
		"items":   items,
		"total":   len(items),
	})
}

// ExportCSV handles GET /api/v1/menus/:id/export. The response is a UTF-8
// CSV with a BOM so Excel opens it correctly on Windows.
func (h *MenuHandler) ExportCSV(c *gin.Context) {
	restaurantID, menuID, ok := menuRequestScope(c)
	if !ok {
		return
	}

	menu, err := h.menuService.GetMenu(c.Request.Context(), restaurantID, menuID)
	if err != nil {
		HandleError(c, err)
		return
	}
	items, err := h.menuService.ListItems(c.Request.Context(), restaurantID, menuID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(menu.Name)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteItems(items); err != nil {
		return
	}
	w.Flush()
}

// menuRequestScope extracts the restaurant and menu ids common to every menu
// route. Returns false if an error response was already written.
func menuRequestScope(c *gin.Context) (restaurantID, menuID uuid.UUID, ok bool) {
	restaurantID, err := middleware.GetRestaurantID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_RESTAURANT_ID", "missing restaurant context")
		return uuid.Nil, uuid.Nil, false
	}
	menuID, err = uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_MENU_ID", "menu id must be a valid UUID")
		return uuid.Nil, uuid.Nil, false
	}
	return restaurantID, menuID, true
}
