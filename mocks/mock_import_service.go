package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"menuflow/internal/domain"
	"menuflow/internal/service"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Commit(ctx context.Context, input *service.CommitInput) (*service.CommitOutcome, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommitOutcome), args.Error(1)
}

func (m *MockImportService) GetJob(ctx context.Context, restaurantID, jobID uuid.UUID) (*domain.ImportJob, error) {
	args := m.Called(ctx, restaurantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportJob), args.Error(1)
}

func (m *MockImportService) ExecuteJob(ctx context.Context, job *domain.ImportJob) {
	m.Called(ctx, job)
}
