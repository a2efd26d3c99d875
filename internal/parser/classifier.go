package parser

import (
	"regexp"
	"strings"

	"menuflow/internal/domain"
)

const (
	// classifierBase is the starting confidence once at least one cue fires.
	classifierBase = 40
	// classifierCueBoost is added per independent corroborating cue.
	classifierCueBoost = 15
	// classifierFloor is the confidence for a candidate with no cue at all.
	classifierFloor = 25
)

var (
	vintageRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	abvRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%(?:\s*[aA][bB][vV])?`)
	volumeRe  = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(ml|cl|l|oz|pint|pints)\b`)
)

// Classification is the classifier's verdict for one candidate.
type Classification struct {
	ItemType   domain.ItemType
	Category   string
	Confidence int
}

// Classify assigns an item type and category from lexical and line-shape
// cues. It never refuses: with no corroborating cue at all the candidate
// still classifies as food at a low confidence floor.
func Classify(cand domain.ItemCandidate) Classification {
	hint := strings.ToLower(cand.CategoryHint)
	text := strings.ToLower(cand.RawText)

	scores := map[domain.ItemType]int{}
	cueCounts := map[domain.ItemType]int{}
	cues := 0
	add := func(t domain.ItemType, weight int) {
		scores[t] += weight
		cueCounts[t]++
		cues++
	}

	// category header cues carry the most signal
	if containsAny(hint, wineHintWords) {
		add(domain.ItemTypeWine, 3)
	}
	if containsAny(hint, beverageHintWords) {
		add(domain.ItemTypeBeverage, 3)
	}
	if containsAny(hint, foodHintWords) {
		add(domain.ItemTypeFood, 3)
	}

	// line-shape cues
	if vintageRe.MatchString(cand.RawText) {
		add(domain.ItemTypeWine, 2)
	}
	if containsAny(text, grapeLexicon) {
		add(domain.ItemTypeWine, 2)
	}
	if abvRe.MatchString(cand.RawText) || volumeRe.MatchString(cand.RawText) {
		add(domain.ItemTypeBeverage, 2)
	}
	if containsAny(text, spiritLexicon) || containsAny(text, beerStyleLexicon) {
		add(domain.ItemTypeBeverage, 2)
	}
	if containsAny(text, dishNounLexicon) {
		add(domain.ItemTypeFood, 2)
	}

	category := cand.CategoryHint
	if category == "" {
		category = "Uncategorized"
	}

	if cues == 0 {
		return Classification{ItemType: domain.ItemTypeFood, Category: category, Confidence: classifierFloor}
	}

	// only cues corroborating the winning type count toward confidence, so
	// contradictory cues for losing types never inflate it
	itemType := pickWinner(scores)
	confidence := classifierBase + classifierCueBoost*cueCounts[itemType]
	if confidence > 100 {
		confidence = 100
	}
	return Classification{ItemType: itemType, Category: category, Confidence: confidence}
}

// classifierPriority breaks exact score ties: the more specific type wins.
var classifierPriority = []domain.ItemType{domain.ItemTypeWine, domain.ItemTypeBeverage, domain.ItemTypeFood}

// pickWinner returns the highest-scoring type, ties resolved by priority.
func pickWinner(scores map[domain.ItemType]int) domain.ItemType {
	winner := domain.ItemTypeFood
	best := -1
	for _, t := range classifierPriority {
		if scores[t] > best {
			winner, best = t, scores[t]
		}
	}
	return winner
}

func containsAny(text string, lexicon []string) bool {
	for _, entry := range lexicon {
		if strings.Contains(text, entry) {
			return true
		}
	}
	return false
}
