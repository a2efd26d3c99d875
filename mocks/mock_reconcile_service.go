package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"menuflow/internal/domain"
)

// MockReconcileService is a mock implementation of service.ReconcileService.
type MockReconcileService struct {
	mock.Mock
}

func (m *MockReconcileService) Reconcile(ctx context.Context, restaurantID, menuID uuid.UUID, result *domain.ParseResult) ([]domain.ConflictRecord, error) {
	args := m.Called(ctx, restaurantID, menuID, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConflictRecord), args.Error(1)
}
