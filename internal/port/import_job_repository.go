package port

import (
	"context"

	"github.com/google/uuid"

	"menuflow/internal/domain"
)

// ImportJobRepository persists background import jobs. ClaimPending is the
// single transition out of pending: it atomically moves up to limit jobs to
// running and returns them, so a job is never dispatched twice.
type ImportJobRepository interface {
	Create(ctx context.Context, job *domain.ImportJob) error
	GetByID(ctx context.Context, restaurantID, jobID uuid.UUID) (*domain.ImportJob, error)
	ClaimPending(ctx context.Context, limit int) ([]domain.ImportJob, error)
	MarkCompleted(ctx context.Context, job *domain.ImportJob) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, reason string) error
}
