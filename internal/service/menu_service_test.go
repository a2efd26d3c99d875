package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menuflow/internal/domain"
	"menuflow/internal/service"
	"menuflow/mocks"
)

func TestMenuService_ListItems_RequiresExistingMenu(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepo)
	svc := service.NewMenuService(menuRepo)
	restaurantID, menuID := uuid.New(), uuid.New()

	menuRepo.On("GetMenu", mock.Anything, restaurantID, menuID).Return(nil, domain.ErrMenuNotFound)

	_, err := svc.ListItems(context.Background(), restaurantID, menuID)

	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
	menuRepo.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuService_ListItems_EmptyMenu(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepo)
	svc := service.NewMenuService(menuRepo)
	restaurantID, menuID := uuid.New(), uuid.New()

	menuRepo.On("GetMenu", mock.Anything, restaurantID, menuID).Return(&domain.Menu{ID: menuID}, nil)
	menuRepo.On("ListItems", mock.Anything, restaurantID, menuID).Return([]domain.ExistingMenuItem{}, nil)

	items, err := svc.ListItems(context.Background(), restaurantID, menuID)

	require.NoError(t, err)
	assert.Empty(t, items)
}
