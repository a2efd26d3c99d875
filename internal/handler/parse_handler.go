package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"menuflow/internal/domain"
	"menuflow/internal/middleware"
	"menuflow/internal/service"
)

// ParseHandler handles menu document upload and parsing.
type ParseHandler struct {
	parseService service.ParseService
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parseService service.ParseService) *ParseHandler {
	return &ParseHandler{parseService: parseService}
}

// Parse handles POST /api/v1/menus/parse. It accepts a multipart upload with
// a file field, a menu_name field, and an optional format override. The
// response body is the full parse result; nothing is persisted yet.
func (h *ParseHandler) Parse(c *gin.Context) {
	restaurantID, err := middleware.GetRestaurantID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_RESTAURANT_ID", "missing restaurant context")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	menuName := c.PostForm("menu_name")
	if menuName == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_MENU_NAME", "menu_name field is required")
		return
	}

	var format domain.MenuFormat
	if raw := c.PostForm("format"); raw != "" {
		format = domain.MenuFormat(raw)
		if !domain.ValidFormats[format] {
			RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT",
				"unsupported format; allowed: tabular, pdf, word, delimited, structured")
			return
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	result, err := h.parseService.ParseUpload(c.Request.Context(), &service.ParseUploadInput{
		RestaurantID: restaurantID,
		MenuName:     menuName,
		FileName:     header.Filename,
		Format:       format,
		Data:         data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
