package parser

import (
	"strconv"
	"strings"

	"menuflow/internal/domain"
)

// EnhanceBeverage populates beverage-specific facets from the candidate's
// raw source text. Returns nil facets and zero confidence when no cue fires.
func EnhanceBeverage(cand domain.ItemCandidate) (*domain.BeverageFacets, int) {
	text := strings.ToLower(cand.RawText)
	facets := &domain.BeverageFacets{}
	cues := 0

	if spirit := firstMatch(text, spiritLexicon); spirit != "" {
		facets.SpiritType = spirit
		cues++
	} else if style := firstMatch(text, beerStyleLexicon); style != "" {
		facets.SpiritType = style
		cues++
	}

	if m := abvRe.FindStringSubmatch(cand.RawText); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v <= 100 {
			facets.ABV = &v
			cues++
		}
	}

	if m := volumeRe.FindString(cand.RawText); m != "" {
		facets.Volume = strings.ToLower(strings.Join(strings.Fields(m), ""))
		cues++
	}

	if style := firstMatch(text, servingStyleLexicon); style != "" {
		facets.ServingStyle = style
		cues++
	}

	if ingredients := extractIngredientList(cand.RawText); ingredients != nil {
		facets.Ingredients = ingredients
		cues++
	}

	if firstMatch(text, nonAlcoholicLexicon) != "" {
		facets.NonAlcoholic = true
		cues++
	}

	if cues == 0 {
		return nil, 0
	}
	return facets, cueConfidence(cues)
}
