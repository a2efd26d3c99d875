package port

import (
	"context"

	"github.com/google/uuid"

	"menuflow/internal/domain"
)

// MenuRepository is the narrow persistence contract the ingestion pipeline
// needs. The pipeline never deletes existing items.
type MenuRepository interface {
	GetMenu(ctx context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error)
	ListItems(ctx context.Context, restaurantID, menuID uuid.UUID) ([]domain.ExistingMenuItem, error)
	CreateItem(ctx context.Context, restaurantID, menuID uuid.UUID, item *domain.ParsedMenuItem) (uuid.UUID, error)
	UpdateItem(ctx context.Context, restaurantID, itemID uuid.UUID, item *domain.ParsedMenuItem) error
}
