package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"menuflow/internal/domain"
	"menuflow/internal/port"
)

type menuRepo struct {
	db *sqlx.DB
}

// NewMenuRepo creates a new PostgreSQL-backed MenuRepository.
func NewMenuRepo(db *sqlx.DB) port.MenuRepository {
	return &menuRepo{db: db}
}

// menuItemRow is the raw row shape; facets live in one JSONB column holding
// only the group matching item_type.
type menuItemRow struct {
	ID          uuid.UUID       `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	ItemType    domain.ItemType `db:"item_type"`
	Price       *float64        `db:"price"`
	Facets      []byte          `db:"facets"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (r *menuRepo) GetMenu(ctx context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error) {
	var menu domain.Menu
	err := r.db.GetContext(ctx, &menu,
		"SELECT * FROM menus WHERE id = $1 AND restaurant_id = $2", menuID, restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, wrapDBError("menuRepo.GetMenu", err)
	}
	return &menu, nil
}

func (r *menuRepo) ListItems(ctx context.Context, restaurantID, menuID uuid.UUID) ([]domain.ExistingMenuItem, error) {
	var rows []menuItemRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, description, category, item_type, price, facets, created_at
		 FROM menu_items WHERE restaurant_id = $1 AND menu_id = $2
		 ORDER BY id`, restaurantID, menuID)
	if err != nil {
		return nil, wrapDBError("menuRepo.ListItems", err)
	}

	items := make([]domain.ExistingMenuItem, 0, len(rows))
	for i := range rows {
		item, err := rows[i].toExistingItem()
		if err != nil {
			return nil, fmt.Errorf("menuRepo.ListItems: decoding facets for item %s: %w", rows[i].ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *menuRepo) CreateItem(ctx context.Context, restaurantID, menuID uuid.UUID, item *domain.ParsedMenuItem) (uuid.UUID, error) {
	if strings.TrimSpace(item.Name) == "" {
		return uuid.Nil, fmt.Errorf("%w: item name is empty", domain.ErrInvalidItem)
	}

	facets, err := marshalFacets(item)
	if err != nil {
		return uuid.Nil, fmt.Errorf("menuRepo.CreateItem: %w", err)
	}

	id := uuid.New()
	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO menu_items (
			id, restaurant_id, menu_id, name, description, category,
			item_type, price, facets, confidence, original_text,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`,
		id, restaurantID, menuID, item.Name, item.Description, item.Category,
		item.ItemType, item.Price, facets, item.Confidence, item.OriginalText, now)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return uuid.Nil, domain.ErrItemAlreadyExists
		}
		return uuid.Nil, wrapDBError("menuRepo.CreateItem", err)
	}
	return id, nil
}

func (r *menuRepo) UpdateItem(ctx context.Context, restaurantID, itemID uuid.UUID, item *domain.ParsedMenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name is empty", domain.ErrInvalidItem)
	}

	facets, err := marshalFacets(item)
	if err != nil {
		return fmt.Errorf("menuRepo.UpdateItem: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET
			name = $1, description = $2, category = $3, item_type = $4,
			price = $5, facets = $6, confidence = $7, original_text = $8,
			updated_at = $9
		 WHERE id = $10 AND restaurant_id = $11`,
		item.Name, item.Description, item.Category, item.ItemType,
		item.Price, facets, item.Confidence, item.OriginalText,
		time.Now().UTC(), itemID, restaurantID)
	if err != nil {
		return wrapDBError("menuRepo.UpdateItem", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("menuRepo.UpdateItem: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (row *menuItemRow) toExistingItem() (domain.ExistingMenuItem, error) {
	item := domain.ExistingMenuItem{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		ItemType:    row.ItemType,
		Price:       row.Price,
		CreatedAt:   row.CreatedAt,
	}
	if len(row.Facets) == 0 || string(row.Facets) == "null" {
		return item, nil
	}
	switch row.ItemType {
	case domain.ItemTypeFood:
		item.Food = &domain.FoodFacets{}
		return item, json.Unmarshal(row.Facets, item.Food)
	case domain.ItemTypeBeverage:
		item.Beverage = &domain.BeverageFacets{}
		return item, json.Unmarshal(row.Facets, item.Beverage)
	case domain.ItemTypeWine:
		item.Wine = &domain.WineFacets{}
		return item, json.Unmarshal(row.Facets, item.Wine)
	}
	return item, nil
}

// marshalFacets serializes the single facet group matching the item type.
func marshalFacets(item *domain.ParsedMenuItem) ([]byte, error) {
	var group interface{}
	switch item.ItemType {
	case domain.ItemTypeFood:
		if item.Food != nil {
			group = item.Food
		}
	case domain.ItemTypeBeverage:
		if item.Beverage != nil {
			group = item.Beverage
		}
	case domain.ItemTypeWine:
		if item.Wine != nil {
			group = item.Wine
		}
	}
	if group == nil {
		return []byte("null"), nil
	}
	return json.Marshal(group)
}

// wrapDBError distinguishes infrastructure-level failures (connection
// refused, closed pool) from ordinary query errors so the import runner can
// fail a whole job instead of one item.
func wrapDBError(op string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, sql.ErrConnDone) ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "connection reset") {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrRepositoryUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
