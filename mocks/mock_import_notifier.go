package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"menuflow/internal/port"
)

// MockImportNotifier is a mock implementation of port.ImportNotifier.
type MockImportNotifier struct {
	mock.Mock
}

func (m *MockImportNotifier) ImportCompleted(ctx context.Context, event port.ImportCompletedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
