package lognotify

import (
	"context"
	"log"

	"menuflow/internal/port"
)

type logNotifier struct{}

// NewLogNotifier creates an ImportNotifier that writes each event to the
// process log. Useful in development and as the default provider.
func NewLogNotifier() port.ImportNotifier {
	return &logNotifier{}
}

func (n *logNotifier) ImportCompleted(_ context.Context, event port.ImportCompletedEvent) error {
	if event.Failed {
		log.Printf("[IMPORT NOTIFY] job %s for menu %q (restaurant %s) failed",
			event.JobID, event.MenuName, event.RestaurantID)
		return nil
	}
	log.Printf("[IMPORT NOTIFY] job %s for menu %q (restaurant %s) completed: %d imported, %d failed",
		event.JobID, event.MenuName, event.RestaurantID, event.ImportedItems, event.FailedItems)
	return nil
}
