package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"menuflow/internal/domain"
)

// MockImportJobRepo is a mock implementation of port.ImportJobRepository.
type MockImportJobRepo struct {
	mock.Mock
}

func (m *MockImportJobRepo) Create(ctx context.Context, job *domain.ImportJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockImportJobRepo) GetByID(ctx context.Context, restaurantID, jobID uuid.UUID) (*domain.ImportJob, error) {
	args := m.Called(ctx, restaurantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportJob), args.Error(1)
}

func (m *MockImportJobRepo) ClaimPending(ctx context.Context, limit int) ([]domain.ImportJob, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportJob), args.Error(1)
}

func (m *MockImportJobRepo) MarkCompleted(ctx context.Context, job *domain.ImportJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockImportJobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, reason string) error {
	args := m.Called(ctx, jobID, reason)
	return args.Error(0)
}
