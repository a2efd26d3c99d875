package handler_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menuflow/internal/csvexport"
	"menuflow/internal/domain"
	"menuflow/internal/handler"
	"menuflow/mocks"
)

func menuGET(restaurantID, menuID, suffix string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menus/"+menuID+suffix, nil)
	req.Header.Set("X-Restaurant-ID", restaurantID)
	return req
}

func TestMenuHandler_ListItems_Success(t *testing.T) {
	menuSvc := new(mocks.MockMenuService)
	h := handler.NewMenuHandler(menuSvc)
	r := newScopedRouter(http.MethodGet, "/menus/:id/items", h.ListItems)
	restaurantID, menuID := uuid.New(), uuid.New()
	price := 8.50

	menuSvc.On("ListItems", mock.Anything, restaurantID, menuID).Return([]domain.ExistingMenuItem{
		{ID: uuid.New(), Name: "Mojito", ItemType: domain.ItemTypeBeverage, Price: &price},
		{ID: uuid.New(), Name: "Tiramisu", ItemType: domain.ItemTypeFood},
	}, nil)

	w := doRequest(t, r, menuGET(restaurantID.String(), menuID.String(), "/items"))

	assert.Equal(t, http.StatusOK, w.Code)
	success, data, _ := decodeEnvelope(t, w.Body)
	assert.True(t, success)
	assert.Contains(t, string(data), `"total":2`)
	assert.Contains(t, string(data), `"Mojito"`)
}

func TestMenuHandler_ListItems_MenuNotFound(t *testing.T) {
	menuSvc := new(mocks.MockMenuService)
	h := handler.NewMenuHandler(menuSvc)
	r := newScopedRouter(http.MethodGet, "/menus/:id/items", h.ListItems)

	menuSvc.On("ListItems", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrMenuNotFound)

	w := doRequest(t, r, menuGET(uuid.New().String(), uuid.New().String(), "/items"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuHandler_ListItems_MissingRestaurantHeader(t *testing.T) {
	menuSvc := new(mocks.MockMenuService)
	h := handler.NewMenuHandler(menuSvc)
	r := newScopedRouter(http.MethodGet, "/menus/:id/items", h.ListItems)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menus/"+uuid.New().String()+"/items", nil)
	w := doRequest(t, r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	menuSvc.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuHandler_ExportCSV_Success(t *testing.T) {
	menuSvc := new(mocks.MockMenuService)
	h := handler.NewMenuHandler(menuSvc)
	r := newScopedRouter(http.MethodGet, "/menus/:id/export", h.ExportCSV)
	restaurantID, menuID := uuid.New(), uuid.New()
	price := 8.50

	menuSvc.On("GetMenu", mock.Anything, restaurantID, menuID).
		Return(&domain.Menu{ID: menuID, Name: "Summer Menu"}, nil)
	menuSvc.On("ListItems", mock.Anything, restaurantID, menuID).Return([]domain.ExistingMenuItem{
		{
			ID:        uuid.New(),
			Name:      "Mojito",
			Category:  "Cocktails",
			ItemType:  domain.ItemTypeBeverage,
			Price:     &price,
			Beverage:  &domain.BeverageFacets{SpiritType: "white rum"},
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}, nil)

	w := doRequest(t, r, menuGET(restaurantID.String(), menuID.String(), "/export"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Summer_Menu")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, csvexport.BOM))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, csvexport.BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Name", records[0][0])
	assert.Len(t, records[0], 14)
	assert.Equal(t, "Mojito", records[1][0])
	assert.Equal(t, "8.50", records[1][3])
	assert.Equal(t, "white rum", records[1][8])
}

func TestMenuHandler_ExportCSV_MenuNotFound(t *testing.T) {
	menuSvc := new(mocks.MockMenuService)
	h := handler.NewMenuHandler(menuSvc)
	r := newScopedRouter(http.MethodGet, "/menus/:id/export", h.ExportCSV)

	menuSvc.On("GetMenu", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrMenuNotFound)

	w := doRequest(t, r, menuGET(uuid.New().String(), uuid.New().String(), "/export"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	menuSvc.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything, mock.Anything)
}
