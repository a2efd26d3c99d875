package port

import (
	"context"

	"github.com/google/uuid"
)

// ImportCompletedEvent summarizes a finished import for downstream
// consumers (e.g. staff notification). Delivery itself lives outside the
// pipeline; the core only emits the event.
type ImportCompletedEvent struct {
	JobID         uuid.UUID
	RestaurantID  uuid.UUID
	MenuID        uuid.UUID
	MenuName      string
	ImportedItems int
	FailedItems   int
	Failed        bool
}

// ImportNotifier receives import completion events.
type ImportNotifier interface {
	ImportCompleted(ctx context.Context, event ImportCompletedEvent) error
}
