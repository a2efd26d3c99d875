package reader

import (
	"encoding/csv"
	"errors"
	"strings"
	"unicode/utf8"

	"menuflow/internal/domain"
)

type delimitedReader struct{}

func (r *delimitedReader) Format() domain.MenuFormat { return domain.FormatDelimited }

// delimiter candidates, tried in order. Comma is last because free-text menu
// lines routinely contain commas in ingredient lists.
var delimiters = []rune{'\t', ';', '|', ','}

// Read decodes delimited text. If a delimiter splits every sampled line into
// the same field count (>1), the input is parsed as columnar records;
// otherwise each non-empty line becomes a single free-text record.
func (r *delimitedReader) Read(data []byte) ([]domain.RawRecord, error) {
	if !utf8.Valid(data) {
		return nil, domain.NewFormatError(domain.FormatDelimited, errors.New("input is not valid UTF-8 text"))
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	if delim, ok := sniffDelimiter(lines); ok {
		return readColumnar(text, delim)
	}

	var records []domain.RawRecord
	for i, line := range lines {
		// blank lines are kept: the extractor uses them as grouping boundaries
		records = append(records, domain.RawRecord{Fields: []string{strings.TrimSpace(line)}, Line: i + 1})
	}
	return records, nil
}

func readColumnar(text string, delim rune) ([]domain.RawRecord, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, domain.NewFormatError(domain.FormatDelimited, err)
	}

	var records []domain.RawRecord
	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		records = append(records, domain.RawRecord{Fields: trimFields(row), Line: i + 1})
	}
	return records, nil
}

// sniffDelimiter samples up to ten non-empty lines and picks the first
// candidate that yields a consistent field count greater than one.
func sniffDelimiter(lines []string) (rune, bool) {
	var sample []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sample = append(sample, line)
		if len(sample) == 10 {
			break
		}
	}
	if len(sample) < 2 {
		return 0, false
	}

	for _, delim := range delimiters {
		count := strings.Count(sample[0], string(delim)) + 1
		if count < 2 {
			continue
		}
		consistent := true
		for _, line := range sample[1:] {
			if strings.Count(line, string(delim))+1 != count {
				consistent = false
				break
			}
		}
		if consistent {
			return delim, true
		}
	}
	return 0, false
}
