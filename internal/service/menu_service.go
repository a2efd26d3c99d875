package service

import (
	"context"

	"github.com/google/uuid"

	"menuflow/internal/domain"
	"menuflow/internal/port"
)

// MenuService exposes read access to persisted menus for API consumers and
// the CSV export.
type MenuService interface {
	GetMenu(ctx context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error)
	ListItems(ctx context.Context, restaurantID, menuID uuid.UUID) ([]domain.ExistingMenuItem, error)
}

type menuService struct {
	menuRepo port.MenuRepository
}

// NewMenuService creates a new MenuService implementation.
func NewMenuService(menuRepo port.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) GetMenu(ctx context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error) {
	return s.menuRepo.GetMenu(ctx, restaurantID, menuID)
}

// ListItems returns the menu's items in stable id order. The menu must
// exist; an empty menu returns an empty slice, not an error.
func (s *menuService) ListItems(ctx context.Context, restaurantID, menuID uuid.UUID) ([]domain.ExistingMenuItem, error) {
	if _, err := s.menuRepo.GetMenu(ctx, restaurantID, menuID); err != nil {
		return nil, err
	}
	return s.menuRepo.ListItems(ctx, restaurantID, menuID)
}
