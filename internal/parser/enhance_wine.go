package parser

import (
	"regexp"
	"strconv"
	"strings"

	"menuflow/internal/domain"
)

// servingOptionRe matches "size: price" fragments like "glass: 6.50" or
// "175ml: £7" as they appear in bracketed serving lists.
var servingOptionRe = regexp.MustCompile(`(?i)(glass|bottle|carafe|half bottle|\d+\s*(?:ml|cl))\s*[:\-]\s*[£$€]?\s*(\d+(?:[.,]\d{1,2})?)`)

// producerRe matches capitalized multi-word sequences, candidate producer or
// region names near the item name.
var producerRe = regexp.MustCompile(`\b([A-Z][a-zà-ü]+(?:\s+[A-Z][a-zà-ü]+)+)\b`)

// EnhanceWine populates wine-specific facets from the candidate's raw
// source text. Returns nil facets and zero confidence when no cue fires.
func EnhanceWine(cand domain.ItemCandidate) (*domain.WineFacets, int) {
	text := strings.ToLower(cand.RawText)
	facets := &domain.WineFacets{}
	cues := 0

	if m := vintageRe.FindStringSubmatch(cand.RawText); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			facets.Vintage = &year
			cues++
		}
	}

	if grapes := allMatches(text, grapeLexicon); len(grapes) > 0 {
		facets.Grapes = grapes
		cues++
	}

	if options := extractServingOptions(cand.RawText); len(options) > 0 {
		facets.ServingOptions = options
		cues++
	}

	if region := firstMatch(text, wineRegionLexicon); region != "" {
		facets.Region = titleCase(region)
		cues++
	}

	if producer := findProducer(cand, facets.Region); producer != "" {
		facets.Producer = producer
		cues++
	}

	if cues == 0 {
		return nil, 0
	}
	return facets, cueConfidence(cues)
}

func extractServingOptions(rawText string) []domain.WineServing {
	var options []domain.WineServing
	for _, m := range servingOptionRe.FindAllStringSubmatch(rawText, -1) {
		price, ok := ParsePrice(m[2])
		if !ok {
			continue
		}
		size := strings.ToLower(strings.Join(strings.Fields(m[1]), ""))
		if size == "halfbottle" {
			size = "half bottle"
		}
		options = append(options, domain.WineServing{Size: size, Price: *price})
	}
	return options
}

// findProducer picks the first capitalized multi-word sequence that is not
// the item name itself, a known region, or a grape variety.
func findProducer(cand domain.ItemCandidate, region string) string {
	name := strings.ToLower(strings.TrimSpace(cand.Name))
	for _, m := range producerRe.FindAllString(cand.RawText, -1) {
		lower := strings.ToLower(m)
		if lower == name || strings.Contains(name, lower) {
			continue
		}
		if region != "" && lower == strings.ToLower(region) {
			continue
		}
		if firstMatch(lower, wineRegionLexicon) != "" || firstMatch(lower, grapeLexicon) != "" {
			continue
		}
		return m
	}
	return ""
}
