package reader

import (
	"bytes"
	"errors"

	"github.com/xuri/excelize/v2"

	"menuflow/internal/domain"
)

type tabularReader struct{}

func (r *tabularReader) Format() domain.MenuFormat { return domain.FormatTabular }

// Read de-tabulates the first sheet of a spreadsheet into row-tuple records.
// Row numbers are 1-based to match what a user sees in their spreadsheet app.
func (r *tabularReader) Read(data []byte) ([]domain.RawRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, domain.NewFormatError(domain.FormatTabular, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewFormatError(domain.FormatTabular, errors.New("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, domain.NewFormatError(domain.FormatTabular, err)
	}

	records := make([]domain.RawRecord, 0, len(rows))
	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		records = append(records, domain.RawRecord{Fields: trimFields(row), Line: i + 1})
	}
	return records, nil
}

func isEmptyRow(fields []string) bool {
	for _, f := range fields {
		if len(bytes.TrimSpace([]byte(f))) > 0 {
			return false
		}
	}
	return true
}

func trimFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(bytes.TrimSpace([]byte(f)))
	}
	return out
}
