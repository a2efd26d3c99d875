package service

import (
	"context"

	"github.com/google/uuid"

	"menuflow/internal/config"
	"menuflow/internal/domain"
	"menuflow/internal/port"
	"menuflow/internal/reconcile"
)

// ReconcileService compares a parse result against the current state of a
// persisted menu.
type ReconcileService interface {
	Reconcile(ctx context.Context, restaurantID, menuID uuid.UUID, result *domain.ParseResult) ([]domain.ConflictRecord, error)
}

type reconcileService struct {
	menuRepo   port.MenuRepository
	reconciler *reconcile.Reconciler
}

// NewReconcileService creates a new ReconcileService implementation.
func NewReconcileService(menuRepo port.MenuRepository, cfg *config.ReconcileConfig) ReconcileService {
	return &reconcileService{
		menuRepo:   menuRepo,
		reconciler: reconcile.New(reconcile.Config{SimilarityThreshold: cfg.SimilarityThreshold}),
	}
}

// Reconcile fetches the menu's current items and computes one advisory
// ConflictRecord per candidate. Records are a snapshot: if the menu changes
// before commit the caller must reconcile again.
func (s *reconcileService) Reconcile(ctx context.Context, restaurantID, menuID uuid.UUID, result *domain.ParseResult) ([]domain.ConflictRecord, error) {
	if _, err := s.menuRepo.GetMenu(ctx, restaurantID, menuID); err != nil {
		return nil, err
	}
	existing, err := s.menuRepo.ListItems(ctx, restaurantID, menuID)
	if err != nil {
		return nil, err
	}
	return s.reconciler.Reconcile(result, existing), nil
}
