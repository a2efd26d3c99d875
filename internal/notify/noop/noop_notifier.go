package noop

import (
	"context"

	"menuflow/internal/port"
)

type noopNotifier struct{}

// NewNoopNotifier creates an ImportNotifier that drops every event.
func NewNoopNotifier() port.ImportNotifier {
	return &noopNotifier{}
}

func (n *noopNotifier) ImportCompleted(_ context.Context, _ port.ImportCompletedEvent) error {
	return nil
}
