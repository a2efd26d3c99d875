package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"menuflow/internal/domain"
)

// priceRe matches a currency-prefixed or suffixed numeric token, or a bare
// two-decimal number at the end of a line.
var priceRe = regexp.MustCompile(`(?:[$£€]\s*\d+(?:[.,]\d{1,2})?)|(?:\d+(?:[.,]\d{1,2})?\s*[$£€])|(?:\d+[.,]\d{2}\s*$)`)

// nameSeparatorRe splits an item line into name and trailing description.
var nameSeparatorRe = regexp.MustCompile(`\s+[-–—]\s+|:\s+`)

// ExtractCandidates converts raw records into unstructured item candidates.
// Multi-field records are treated as columnar data; single-field records go
// through the free-text heuristics (price markers, category headers, line
// grouping). Returns the candidates plus non-fatal processing notes.
func ExtractCandidates(records []domain.RawRecord) ([]domain.ItemCandidate, []string) {
	if cols, start, ok := detectColumns(records); ok {
		return extractColumnar(records[start:], cols)
	}
	return extractFreeText(records)
}

// columnMap locates the interesting columns of a columnar document.
// An index of -1 means the column is absent.
type columnMap struct {
	name        int
	description int
	price       int
	category    int
	width       int
}

// detectColumns looks for a header row naming at least a name-like column.
// Returns the mapping and the index of the first data record.
func detectColumns(records []domain.RawRecord) (columnMap, int, bool) {
	for i, rec := range records {
		if len(rec.Fields) < 2 {
			return columnMap{}, 0, false
		}
		cols := columnMap{name: -1, description: -1, price: -1, category: -1, width: len(rec.Fields)}
		for j, f := range rec.Fields {
			switch strings.ToLower(strings.TrimSpace(f)) {
			case "name", "item", "item name", "title", "dish":
				if cols.name == -1 {
					cols.name = j
				}
			case "description", "desc", "details":
				cols.description = j
			case "price", "cost", "amount":
				cols.price = j
			case "category", "section", "type", "group":
				cols.category = j
			}
		}
		if cols.name >= 0 {
			return cols, i + 1, true
		}
		// only the first row can be a header
		break
	}
	// multi-field data without a header: assume positional name column
	if len(records) > 0 && len(records[0].Fields) >= 2 {
		return columnMap{name: 0, description: -1, price: -1, category: -1, width: len(records[0].Fields)}, 0, true
	}
	return columnMap{}, 0, false
}

func extractColumnar(records []domain.RawRecord, cols columnMap) ([]domain.ItemCandidate, []string) {
	var cands []domain.ItemCandidate
	var notes []string

	for _, rec := range records {
		cand := domain.ItemCandidate{
			RawText:   strings.Join(rec.Fields, " | "),
			LineStart: rec.Line,
			LineEnd:   rec.Line,
		}
		cand.Name = field(rec.Fields, cols.name)
		cand.Description = field(rec.Fields, cols.description)
		cand.PriceText = field(rec.Fields, cols.price)
		cand.CategoryHint = field(rec.Fields, cols.category)

		// no mapped price column: take the first price-shaped field
		if cand.PriceText == "" {
			for j, f := range rec.Fields {
				if j == cols.name || j == cols.description || j == cols.category {
					continue
				}
				if priceRe.MatchString(f) {
					cand.PriceText = strings.TrimSpace(f)
					break
				}
			}
		}
		// no mapped description column: take the longest remaining field
		if cand.Description == "" {
			for j, f := range rec.Fields {
				if j == cols.name || j == cols.price || j == cols.category || f == cand.PriceText {
					continue
				}
				if len(f) > len(cand.Description) {
					cand.Description = strings.TrimSpace(f)
				}
			}
		}
		cands = append(cands, cand)
	}
	return cands, notes
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

func extractFreeText(records []domain.RawRecord) ([]domain.ItemCandidate, []string) {
	var cands []domain.ItemCandidate
	var notes []string

	currentCategory := ""
	var current *domain.ItemCandidate // last completed item, still accepting description lines
	var pending []string              // lines awaiting a price marker
	pendingStart := 0

	flushPending := func() {
		if len(pending) == 0 {
			return
		}
		// a dash-separated orphan block still looks like an item, keep it
		// without a price; anything else is noise
		joined := strings.Join(pending, " ")
		if nameSeparatorRe.MatchString(joined) {
			name, desc := splitNameDescription(joined)
			cands = append(cands, domain.ItemCandidate{
				RawText:      strings.Join(pending, "\n"),
				Name:         name,
				Description:  desc,
				CategoryHint: currentCategory,
				LineStart:    pendingStart,
				LineEnd:      pendingStart + len(pending) - 1,
			})
		} else {
			notes = append(notes, fmt.Sprintf("skipped %d line(s) near line %d: no price marker or item shape", len(pending), pendingStart))
		}
		pending = nil
	}

	for _, rec := range records {
		line := strings.TrimSpace(rec.Fields[0])

		if line == "" {
			current = nil
			flushPending()
			continue
		}

		if loc := priceRe.FindStringIndex(line); loc != nil {
			prefix := strings.TrimSpace(line[:loc[0]])
			prefix = strings.TrimRight(prefix, ".-–— \t")
			priceText := strings.TrimSpace(line[loc[0]:loc[1]])

			cand := domain.ItemCandidate{
				PriceText:    priceText,
				CategoryHint: currentCategory,
				LineStart:    rec.Line,
				LineEnd:      rec.Line,
			}
			if prefix == "" && len(pending) > 0 {
				// price on its own line closes the block above it
				cand.Name, cand.Description = splitNameDescription(strings.Join(pending, " "))
				if cand.Description == "" && len(pending) > 1 {
					cand.Name = pending[0]
					cand.Description = strings.Join(pending[1:], " ")
				}
				cand.LineStart = pendingStart
			} else {
				cand.Name, cand.Description = splitNameDescription(prefix)
				if len(pending) > 0 {
					cand.Name = pending[0]
					if cand.Description == "" {
						cand.Description = strings.TrimSpace(prefix)
					}
					cand.LineStart = pendingStart
				}
			}
			cand.RawText = strings.TrimSpace(strings.Join(append(pending, line), "\n"))
			pending = nil
			cands = append(cands, cand)
			current = &cands[len(cands)-1]
			continue
		}

		if isCategoryHeader(line) {
			current = nil
			flushPending()
			currentCategory = titleCase(strings.TrimSuffix(line, ":"))
			continue
		}

		if current != nil {
			// proximity grouping: the line extends the previous item
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += " " + line
			}
			current.RawText += "\n" + line
			current.LineEnd = rec.Line
			continue
		}

		if len(pending) == 0 {
			pendingStart = rec.Line
		}
		pending = append(pending, line)
	}
	flushPending()

	return cands, notes
}

// splitNameDescription separates "Mojito - White rum, lime juice, ..." into
// a name and the trailing description.
func splitNameDescription(text string) (string, string) {
	text = strings.TrimSpace(text)
	if loc := nameSeparatorRe.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]]), strings.TrimSpace(text[loc[1]:])
	}
	return text, ""
}

// isCategoryHeader recognizes short all-caps or colon-terminated lines with
// no price marker, e.g. "COCKTAILS" or "Red Wines:".
func isCategoryHeader(line string) bool {
	if len(line) > 40 || strings.Count(line, " ") > 4 {
		return false
	}
	if strings.HasSuffix(line, ":") {
		return hasLetter(line)
	}
	letters := 0
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			letters++
		}
	}
	return letters >= 3
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParsePrice attempts a numeric parse of verbatim price text. Failure never
// drops a candidate; the session records a note and leaves the price nil.
func ParsePrice(priceText string) (*float64, bool) {
	s := strings.TrimSpace(priceText)
	s = strings.Trim(s, "$£€ \t")
	if s == "" {
		return nil, false
	}
	// continental decimal comma
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil, false
	}
	return &v, true
}
