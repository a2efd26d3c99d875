package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RawRecord is one decoded line or row-tuple produced by a format reader.
// Free-text formats emit a single field per record.
type RawRecord struct {
	Fields []string
	Line   int
}

// ItemCandidate is an unclassified, unstructured item extracted from raw
// records before typing and enhancement. Immutable once created.
type ItemCandidate struct {
	RawText      string
	Name         string
	Description  string
	PriceText    string
	CategoryHint string
	LineStart    int
	LineEnd      int
}

// FoodFacets holds the structured attributes specific to food items.
type FoodFacets struct {
	Ingredients  []string `json:"ingredients,omitempty"`
	Allergens    []string `json:"allergens,omitempty"`
	DietaryFlags []string `json:"dietary_flags,omitempty"`
}

// BeverageFacets holds the structured attributes specific to beverage items.
type BeverageFacets struct {
	SpiritType   string   `json:"spirit_type,omitempty"`
	ServingStyle string   `json:"serving_style,omitempty"`
	ABV          *float64 `json:"abv,omitempty"`
	Volume       string   `json:"volume,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	NonAlcoholic bool     `json:"non_alcoholic,omitempty"`
}

// WineServing is one "size: price" serving option for a wine.
type WineServing struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// WineFacets holds the structured attributes specific to wine items.
type WineFacets struct {
	Vintage        *int          `json:"vintage,omitempty"`
	Grapes         []string      `json:"grapes,omitempty"`
	Region         string        `json:"region,omitempty"`
	Producer       string        `json:"producer,omitempty"`
	ServingOptions []WineServing `json:"serving_options,omitempty"`
}

// ParsedMenuItem is the durable unit of parse output. It has no identity
// until committed; within a ParseResult it is identified by array position.
// Exactly one facet group may be populated, and only the one matching ItemType.
type ParsedMenuItem struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        *float64        `json:"price,omitempty"`
	Category     string          `json:"category"`
	ItemType     ItemType        `json:"item_type"`
	Food         *FoodFacets     `json:"food_facets,omitempty"`
	Beverage     *BeverageFacets `json:"beverage_facets,omitempty"`
	Wine         *WineFacets     `json:"wine_facets,omitempty"`
	Confidence   int             `json:"confidence"`
	OriginalText string          `json:"original_text"`
}

// ParseResult is the output of one parse invocation. The core never mutates
// it after handing it to the caller; a caller-edited copy may be re-submitted
// for reconciliation.
type ParseResult struct {
	MenuName        string           `json:"menu_name"`
	Items           []ParsedMenuItem `json:"items"`
	TotalItemsFound int              `json:"total_items_found"`
	ProcessingNotes []string         `json:"processing_notes"`
}

// Menu is a persisted menu owned by a restaurant.
type Menu struct {
	ID           uuid.UUID `db:"id" json:"id"`
	RestaurantID uuid.UUID `db:"restaurant_id" json:"restaurant_id"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ExistingMenuItem is a read-only projection of a persisted item used for
// comparison during reconciliation. The core never mutates it.
type ExistingMenuItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	ItemType    ItemType        `json:"item_type"`
	Price       *float64        `json:"price,omitempty"`
	Food        *FoodFacets     `json:"food_facets,omitempty"`
	Beverage    *BeverageFacets `json:"beverage_facets,omitempty"`
	Wine        *WineFacets     `json:"wine_facets,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ConflictRecord is the reconciler's advisory verdict for one candidate.
// It is recomputed from current menu state on every call, never persisted.
type ConflictRecord struct {
	CandidateIndex        int              `json:"candidate_index"`
	MatchedExistingItemID *uuid.UUID       `json:"matched_existing_item_id,omitempty"`
	MatchedName           string           `json:"matched_name,omitempty"`
	Classification        ConflictClass    `json:"classification"`
	ConflictingFields     []string         `json:"conflicting_fields,omitempty"`
	SuggestedAction       ResolutionAction `json:"suggested_action"`
}

// PlanEntry pairs one parsed item with the caller-approved action for it.
type PlanEntry struct {
	CandidateIndex int              `json:"candidate_index"`
	Item           ParsedMenuItem   `json:"item"`
	Action         ResolutionAction `json:"action"`
	ExistingItemID *uuid.UUID       `json:"existing_item_id,omitempty"`
}

// ResolutionPlan is the caller-approved set of (item, action) pairs applied
// at commit time.
type ResolutionPlan struct {
	MenuName string      `json:"menu_name"`
	Entries  []PlanEntry `json:"entries"`
}

// FailedCandidate records one per-item failure during plan execution.
type FailedCandidate struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ImportResult summarizes an executed resolution plan.
type ImportResult struct {
	MenuID           uuid.UUID         `json:"menu_id"`
	MenuName         string            `json:"menu_name"`
	TotalItems       int               `json:"total_items"`
	ImportedItems    int               `json:"imported_items"`
	FailedItems      int               `json:"failed_items"`
	CreatedItemIDs   []uuid.UUID       `json:"created_item_ids"`
	FailedCandidates []FailedCandidate `json:"failed_candidates,omitempty"`
	ProcessingNotes  []string          `json:"processing_notes,omitempty"`
}

// ImportJob is the asynchronous unit of work that applies an approved
// resolution plan. Status transitions pending -> running -> (completed|failed)
// exactly once; only the executing worker writes, pollers only read.
type ImportJob struct {
	ID               uuid.UUID           `db:"id" json:"job_id"`
	RestaurantID     uuid.UUID           `db:"restaurant_id" json:"restaurant_id"`
	MenuID           uuid.UUID           `db:"menu_id" json:"menu_id"`
	MenuName         string              `db:"menu_name" json:"menu_name"`
	Status           JobStatus           `db:"status" json:"status"`
	Plan             json.RawMessage     `db:"plan" json:"-"`
	CreatedItemIDs   UUIDList            `db:"created_item_ids" json:"created_item_ids"`
	FailedCandidates FailedCandidateList `db:"failed_candidates" json:"failed_candidates"`
	ProcessingNotes  StringList          `db:"processing_notes" json:"processing_notes"`
	Error            string              `db:"error" json:"error,omitempty"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
	StartedAt        *time.Time          `db:"started_at" json:"started_at,omitempty"`
	FinishedAt       *time.Time          `db:"finished_at" json:"finished_at,omitempty"`
}

// StringList is a []string stored as a JSONB column.
type StringList []string

// UUIDList is a []uuid.UUID stored as a JSONB column.
type UUIDList []uuid.UUID

// FailedCandidateList is a []FailedCandidate stored as a JSONB column.
type FailedCandidateList []FailedCandidate

func (l StringList) Value() (driver.Value, error)          { return jsonValue(l) }
func (l *StringList) Scan(src interface{}) error           { return jsonScan(src, l) }
func (l UUIDList) Value() (driver.Value, error)            { return jsonValue(l) }
func (l *UUIDList) Scan(src interface{}) error             { return jsonScan(src, l) }
func (l FailedCandidateList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *FailedCandidateList) Scan(src interface{}) error  { return jsonScan(src, l) }

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func jsonScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported scan type %T for jsonb column", src)
	}
}
