package parser

import (
	"fmt"

	"menuflow/internal/domain"
	"menuflow/internal/reader"
)

// lowConfidenceNoteThreshold marks items worth a human look.
const lowConfidenceNoteThreshold = 40

// Session orchestrates one parse invocation: read, extract, classify,
// enhance, assemble. It is stateless across calls; concurrent sessions on
// different inputs need no coordination.
type Session struct{}

// NewSession creates a parse session.
func NewSession() *Session {
	return &Session{}
}

// ParseDocument turns document bytes into a normalized ParseResult. An
// unreadable document fails as a whole with a FormatError; every non-fatal
// problem becomes a processing note instead.
func (s *Session) ParseDocument(data []byte, format domain.MenuFormat, menuName string) (*domain.ParseResult, error) {
	r, err := reader.ForFormat(format)
	if err != nil {
		return nil, err
	}

	records, err := r.Read(data)
	if err != nil {
		return nil, err
	}

	candidates, notes := ExtractCandidates(records)

	result := &domain.ParseResult{
		MenuName:        menuName,
		Items:           []domain.ParsedMenuItem{},
		ProcessingNotes: notes,
	}
	if result.ProcessingNotes == nil {
		result.ProcessingNotes = []string{}
	}
	if len(records) == 0 {
		result.ProcessingNotes = append(result.ProcessingNotes, "document contained no readable records")
		return result, nil
	}

	for _, cand := range candidates {
		if cand.Name == "" {
			result.ProcessingNotes = append(result.ProcessingNotes,
				fmt.Sprintf("dropped candidate near line %d: no usable name", cand.LineStart))
			continue
		}

		item := s.assembleItem(cand, result)
		result.Items = append(result.Items, item)
	}

	result.TotalItemsFound = len(result.Items)
	return result, nil
}

// assembleItem runs classify then exactly one type-matched enhancer. The
// aggregate confidence is the minimum of the two stages: a chain cannot be
// more confident than its weakest link.
func (s *Session) assembleItem(cand domain.ItemCandidate, result *domain.ParseResult) domain.ParsedMenuItem {
	classification := Classify(cand)

	item := domain.ParsedMenuItem{
		Name:         cand.Name,
		Description:  cand.Description,
		Category:     classification.Category,
		ItemType:     classification.ItemType,
		OriginalText: cand.RawText,
	}
	if classification.Category == "Uncategorized" && cand.CategoryHint == "" {
		result.ProcessingNotes = append(result.ProcessingNotes,
			fmt.Sprintf("item %q near line %d has no category context", cand.Name, cand.LineStart))
	}

	if cand.PriceText != "" {
		if price, ok := ParsePrice(cand.PriceText); ok {
			item.Price = price
		} else {
			result.ProcessingNotes = append(result.ProcessingNotes,
				fmt.Sprintf("item %q: unparseable price text %q", cand.Name, cand.PriceText))
		}
	}

	// only the enhancer matching the classified type runs; the others are
	// skipped entirely so at most one facet group can ever be populated
	var enhancerConfidence int
	switch classification.ItemType {
	case domain.ItemTypeFood:
		item.Food, enhancerConfidence = EnhanceFood(cand)
	case domain.ItemTypeBeverage:
		item.Beverage, enhancerConfidence = EnhanceBeverage(cand)
	case domain.ItemTypeWine:
		item.Wine, enhancerConfidence = EnhanceWine(cand)
	}

	item.Confidence = classification.Confidence
	if enhancerConfidence < item.Confidence {
		item.Confidence = enhancerConfidence
	}

	if item.Confidence < lowConfidenceNoteThreshold {
		result.ProcessingNotes = append(result.ProcessingNotes,
			fmt.Sprintf("low confidence (%d) for item %q", item.Confidence, item.Name))
	}
	return item
}
