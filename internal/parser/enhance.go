package parser

import (
	"regexp"
	"strings"
)

// enhancerCueBoost is the confidence contribution of each independent cue.
// Zero cues mean zero enhancement confidence: a pure base item.
const enhancerCueBoost = 25

// ingredientListRe captures a comma-separated token list following a dash
// or colon, stopping before any price token.
var ingredientListRe = regexp.MustCompile(`[-–—:]\s*([^-–—:£$€]+)`)

func cueConfidence(cues int) int {
	c := cues * enhancerCueBoost
	if c > 100 {
		return 100
	}
	return c
}

// extractIngredientList detects an ingredient list in raw text: at least two
// comma-separated tokens after a dash or colon. Tokens are lowercased.
func extractIngredientList(rawText string) []string {
	m := ingredientListRe.FindStringSubmatch(rawText)
	if m == nil {
		return nil
	}
	parts := strings.Split(m[1], ",")
	if len(parts) < 2 {
		return nil
	}
	var out []string
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		t = strings.TrimRight(t, ". \t")
		if t == "" || len(t) > 40 {
			continue
		}
		out = append(out, t)
	}
	if len(out) < 2 {
		return nil
	}
	return out
}

// firstMatch returns the first lexicon entry contained in text, or "".
func firstMatch(text string, lexicon []string) string {
	for _, entry := range lexicon {
		if strings.Contains(text, entry) {
			return entry
		}
	}
	return ""
}

// allMatches collects every lexicon entry contained in text, in lexicon
// order, skipping entries that are substrings of an earlier match.
func allMatches(text string, lexicon []string) []string {
	var out []string
	for _, entry := range lexicon {
		if !strings.Contains(text, entry) {
			continue
		}
		shadowed := false
		for _, prev := range out {
			if strings.Contains(prev, entry) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			out = append(out, entry)
		}
	}
	return out
}
