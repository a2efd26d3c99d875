package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"menuflow/internal/domain"
)

// MockMenuService is a mock implementation of service.MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) GetMenu(ctx context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error) {
	args := m.Called(ctx, restaurantID, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *MockMenuService) ListItems(ctx context.Context, restaurantID, menuID uuid.UUID) ([]domain.ExistingMenuItem, error) {
	args := m.Called(ctx, restaurantID, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExistingMenuItem), args.Error(1)
}
