package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menuflow/internal/config"
	"menuflow/internal/domain"
	"menuflow/internal/service"
	"menuflow/mocks"
)

func setupReconcileService() (service.ReconcileService, *mocks.MockMenuRepo) {
	menuRepo := new(mocks.MockMenuRepo)
	svc := service.NewReconcileService(menuRepo, &config.ReconcileConfig{SimilarityThreshold: 0.80})
	return svc, menuRepo
}

func TestReconcileService_Reconcile_MenuNotFound(t *testing.T) {
	svc, menuRepo := setupReconcileService()
	restaurantID, menuID := uuid.New(), uuid.New()

	menuRepo.On("GetMenu", mock.Anything, restaurantID, menuID).Return(nil, domain.ErrMenuNotFound)

	_, err := svc.Reconcile(context.Background(), restaurantID, menuID, &domain.ParseResult{})

	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
	menuRepo.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileService_Reconcile_ComparesAgainstCurrentItems(t *testing.T) {
	svc, menuRepo := setupReconcileService()
	restaurantID, menuID := uuid.New(), uuid.New()
	existingID := uuid.New()
	price := 8.50

	menuRepo.On("GetMenu", mock.Anything, restaurantID, menuID).Return(&domain.Menu{ID: menuID}, nil)
	menuRepo.On("ListItems", mock.Anything, restaurantID, menuID).Return([]domain.ExistingMenuItem{
		{ID: existingID, Name: "Mojito", ItemType: domain.ItemTypeBeverage, Price: &price},
	}, nil)

	records, err := svc.Reconcile(context.Background(), restaurantID, menuID, &domain.ParseResult{
		Items: []domain.ParsedMenuItem{
			{Name: "Mojito", ItemType: domain.ItemTypeBeverage, Price: &price},
			{Name: "Tiramisu", ItemType: domain.ItemTypeFood},
		},
	})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ConflictExactDuplicate, records[0].Classification)
	require.NotNil(t, records[0].MatchedExistingItemID)
	assert.Equal(t, existingID, *records[0].MatchedExistingItemID)
	assert.Equal(t, domain.ConflictNew, records[1].Classification)
}

func TestReconcileService_Reconcile_ListItemsFailure(t *testing.T) {
	svc, menuRepo := setupReconcileService()
	restaurantID, menuID := uuid.New(), uuid.New()

	menuRepo.On("GetMenu", mock.Anything, restaurantID, menuID).Return(&domain.Menu{ID: menuID}, nil)
	menuRepo.On("ListItems", mock.Anything, restaurantID, menuID).Return(nil, domain.ErrRepositoryUnavailable)

	_, err := svc.Reconcile(context.Background(), restaurantID, menuID, &domain.ParseResult{})

	assert.ErrorIs(t, err, domain.ErrRepositoryUnavailable)
}
