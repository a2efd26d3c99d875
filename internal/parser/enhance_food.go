package parser

import (
	"strings"

	"menuflow/internal/domain"
)

// EnhanceFood populates food-specific facets from the candidate's raw
// source text. Returns nil facets and zero confidence when no cue fires.
func EnhanceFood(cand domain.ItemCandidate) (*domain.FoodFacets, int) {
	text := strings.ToLower(cand.RawText)
	facets := &domain.FoodFacets{}
	cues := 0

	if ingredients := extractIngredientList(cand.RawText); ingredients != nil {
		facets.Ingredients = ingredients
		cues++
	}

	if allergens := allMatches(text, allergenLexicon); len(allergens) > 0 {
		facets.Allergens = allergens
		cues++
	}

	if flags := dietaryFlags(text); len(flags) > 0 {
		facets.DietaryFlags = flags
		cues++
	}

	if cues == 0 {
		return nil, 0
	}
	return facets, cueConfidence(cues)
}

func dietaryFlags(text string) []string {
	flags := allMatches(text, dietaryFlagLexicon)
	seen := make(map[string]bool, len(flags))
	for _, f := range flags {
		seen[canonicalFlag(f)] = true
	}
	for marker, flag := range dietaryMarkers {
		if strings.Contains(text, marker) {
			seen[flag] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	// rebuild in deterministic lexicon order
	var out []string
	appendFlag := func(f string) {
		if seen[f] {
			out = append(out, f)
			delete(seen, f)
		}
	}
	for _, f := range dietaryFlagLexicon {
		appendFlag(canonicalFlag(f))
	}
	return out
}

// canonicalFlag folds spelling variants ("gluten free") onto one flag.
func canonicalFlag(f string) string {
	switch f {
	case "gluten free":
		return "gluten-free"
	case "dairy free":
		return "dairy-free"
	}
	return f
}
