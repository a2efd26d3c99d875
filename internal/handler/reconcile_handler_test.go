package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menuflow/internal/domain"
	"menuflow/internal/handler"
	"menuflow/mocks"
)

func reconcileRequest(t *testing.T, restaurantID, menuID string, result *domain.ParseResult) *http.Request {
	t.Helper()
	body, err := json.Marshal(result)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/menus/"+menuID+"/reconcile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restaurant-ID", restaurantID)
	return req
}

func TestReconcileHandler_Reconcile_Success(t *testing.T) {
	reconcileSvc := new(mocks.MockReconcileService)
	h := handler.NewReconcileHandler(reconcileSvc)
	r := newScopedRouter(http.MethodPost, "/menus/:id/reconcile", h.Reconcile)
	restaurantID, menuID := uuid.New(), uuid.New()

	reconcileSvc.On("Reconcile", mock.Anything, restaurantID, menuID, mock.AnythingOfType("*domain.ParseResult")).
		Return([]domain.ConflictRecord{
			{CandidateIndex: 0, Classification: domain.ConflictNew, SuggestedAction: domain.ActionCreate},
		}, nil)

	result := &domain.ParseResult{
		MenuName: "Lunch",
		Items:    []domain.ParsedMenuItem{{Name: "Mojito", ItemType: domain.ItemTypeBeverage}},
	}
	w := doRequest(t, r, reconcileRequest(t, restaurantID.String(), menuID.String(), result))

	assert.Equal(t, http.StatusOK, w.Code)
	success, data, _ := decodeEnvelope(t, w.Body)
	assert.True(t, success)
	assert.Contains(t, string(data), `"new"`)
	assert.Contains(t, string(data), menuID.String())
	reconcileSvc.AssertExpectations(t)
}

func TestReconcileHandler_Reconcile_InvalidMenuID(t *testing.T) {
	reconcileSvc := new(mocks.MockReconcileService)
	h := handler.NewReconcileHandler(reconcileSvc)
	r := newScopedRouter(http.MethodPost, "/menus/:id/reconcile", h.Reconcile)

	w := doRequest(t, r, reconcileRequest(t, uuid.New().String(), "42", &domain.ParseResult{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, _, apiErr := decodeEnvelope(t, w.Body)
	require.NotNil(t, apiErr)
	assert.Equal(t, "INVALID_MENU_ID", apiErr.Code)
	reconcileSvc.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileHandler_Reconcile_MalformedBody(t *testing.T) {
	reconcileSvc := new(mocks.MockReconcileService)
	h := handler.NewReconcileHandler(reconcileSvc)
	r := newScopedRouter(http.MethodPost, "/menus/:id/reconcile", h.Reconcile)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/menus/"+uuid.New().String()+"/reconcile", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restaurant-ID", uuid.New().String())
	w := doRequest(t, r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, _, apiErr := decodeEnvelope(t, w.Body)
	require.NotNil(t, apiErr)
	assert.Equal(t, "INVALID_BODY", apiErr.Code)
}

func TestReconcileHandler_Reconcile_MenuNotFound(t *testing.T) {
	reconcileSvc := new(mocks.MockReconcileService)
	h := handler.NewReconcileHandler(reconcileSvc)
	r := newScopedRouter(http.MethodPost, "/menus/:id/reconcile", h.Reconcile)

	reconcileSvc.On("Reconcile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrMenuNotFound)

	w := doRequest(t, r, reconcileRequest(t, uuid.New().String(), uuid.New().String(), &domain.ParseResult{}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	_, _, apiErr := decodeEnvelope(t, w.Body)
	require.NotNil(t, apiErr)
	assert.Equal(t, "MENU_NOT_FOUND", apiErr.Code)
}
