// Package reconcile compares freshly parsed menu items against the existing
// persisted menu and classifies each candidate as new, duplicate, or
// conflicting. It is a pure function of its inputs: it never mutates the
// existing menu, and its output is advisory only.
package reconcile

import (
	"math"
	"reflect"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/google/uuid"

	"menuflow/internal/domain"
)

// DefaultSimilarityThreshold is the normalized-name similarity above which
// two items count as likely duplicates. Tunable, not a contract.
const DefaultSimilarityThreshold = 0.80

// Config carries the tunable parameters of the reconciler.
type Config struct {
	SimilarityThreshold float64
}

// Reconciler computes conflict records for a parse result.
type Reconciler struct {
	threshold float64
}

// New creates a Reconciler. A zero threshold falls back to the default.
func New(cfg Config) *Reconciler {
	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Reconciler{threshold: threshold}
}

// Reconcile returns exactly one ConflictRecord per parsed item, in candidate
// index order. Records are computed against the given menu snapshot and must
// be recomputed if the menu changes before commit.
func (r *Reconciler) Reconcile(result *domain.ParseResult, existing []domain.ExistingMenuItem) []domain.ConflictRecord {
	records := make([]domain.ConflictRecord, 0, len(result.Items))
	for i := range result.Items {
		records = append(records, r.reconcileOne(i, &result.Items[i], existing))
	}
	return records
}

func (r *Reconciler) reconcileOne(index int, item *domain.ParsedMenuItem, existing []domain.ExistingMenuItem) domain.ConflictRecord {
	record := domain.ConflictRecord{
		CandidateIndex:  index,
		Classification:  domain.ConflictNew,
		SuggestedAction: domain.ActionCreate,
	}

	match, similarity, exact := r.bestMatch(item, existing)
	if match == nil {
		return record
	}

	id := match.ID
	record.MatchedExistingItemID = &id
	record.MatchedName = match.Name

	conflicting := conflictingFields(item, match)

	switch {
	case exact && len(conflicting) == 0:
		record.Classification = domain.ConflictExactDuplicate
		record.SuggestedAction = domain.ActionSkip
	case similarity >= r.threshold && len(conflicting) == 0:
		record.Classification = domain.ConflictLikelyDuplicate
		record.SuggestedAction = domain.ActionSkip
	default:
		record.Classification = domain.ConflictFieldConflict
		record.ConflictingFields = conflicting
		record.SuggestedAction = domain.ActionManual
	}
	return record
}

// bestMatch scans existing items of the same type for the highest-similarity
// name match. Exact numeric ties break by lowest existing id so the result
// is deterministic and reproducible.
func (r *Reconciler) bestMatch(item *domain.ParsedMenuItem, existing []domain.ExistingMenuItem) (*domain.ExistingMenuItem, float64, bool) {
	var best *domain.ExistingMenuItem
	bestScore := 0.0
	bestExact := false

	for i := range existing {
		other := &existing[i]
		if other.ItemType != item.ItemType {
			continue
		}

		exact := strings.EqualFold(strings.TrimSpace(item.Name), strings.TrimSpace(other.Name))
		score := 1.0
		if !exact {
			score = levenshtein.Similarity(normalizeName(item.Name), normalizeName(other.Name), nil)
		}

		switch {
		case score > bestScore:
		case score == bestScore && best != nil && idLess(other.ID, best.ID):
		default:
			continue
		}
		best, bestScore, bestExact = other, score, exact
	}

	if best == nil || (bestScore < r.threshold && !bestExact) {
		return nil, 0, false
	}
	return best, bestScore, bestExact
}

// conflictingFields compares the comparable fields of a parsed item and its
// matched existing item, returning differing field names in a fixed order.
func conflictingFields(item *domain.ParsedMenuItem, other *domain.ExistingMenuItem) []string {
	var fields []string
	if !priceEqual(item.Price, other.Price) {
		fields = append(fields, "price")
	}
	if !strings.EqualFold(strings.TrimSpace(item.Category), strings.TrimSpace(other.Category)) {
		fields = append(fields, "category")
	}
	if !facetsEqual(item, other) {
		fields = append(fields, "facets")
	}
	return fields
}

func priceEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return math.Abs(*a-*b) < 0.001
}

func facetsEqual(item *domain.ParsedMenuItem, other *domain.ExistingMenuItem) bool {
	switch item.ItemType {
	case domain.ItemTypeFood:
		return facetGroupEqual(item.Food, other.Food)
	case domain.ItemTypeBeverage:
		return facetGroupEqual(item.Beverage, other.Beverage)
	case domain.ItemTypeWine:
		return facetGroupEqual(item.Wine, other.Wine)
	}
	return true
}

func facetGroupEqual(a, b interface{}) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.IsNil() || bv.IsNil() {
		return av.IsNil() == bv.IsNil()
	}
	return reflect.DeepEqual(a, b)
}

// normalizeName lowercases and strips everything but letters, digits, and
// single spaces.
func normalizeName(name string) string {
	var sb strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func idLess(a, b uuid.UUID) bool {
	return strings.Compare(a.String(), b.String()) < 0
}
