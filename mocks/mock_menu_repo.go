package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"menuflow/internal/domain"
)

// MockMenuRepo is a mock implementation of port.MenuRepository.
type MockMenuRepo struct {
	mock.Mock
}

func (m *MockMenuRepo) GetMenu(ctx context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error) {
	args := m.Called(ctx, restaurantID, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *MockMenuRepo) ListItems(ctx context.Context, restaurantID, menuID uuid.UUID) ([]domain.ExistingMenuItem, error) {
	args := m.Called(ctx, restaurantID, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExistingMenuItem), args.Error(1)
}

func (m *MockMenuRepo) CreateItem(ctx context.Context, restaurantID, menuID uuid.UUID, item *domain.ParsedMenuItem) (uuid.UUID, error) {
	args := m.Called(ctx, restaurantID, menuID, item)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockMenuRepo) UpdateItem(ctx context.Context, restaurantID, itemID uuid.UUID, item *domain.ParsedMenuItem) error {
	args := m.Called(ctx, restaurantID, itemID, item)
	return args.Error(0)
}
