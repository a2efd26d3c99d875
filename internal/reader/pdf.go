package reader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"menuflow/internal/domain"
)

type pdfReader struct{}

func (r *pdfReader) Format() domain.MenuFormat { return domain.FormatPDF }

// Read extracts page text in reading order, one record per visual row.
// The pdf library panics on some malformed inputs, so decoding runs behind
// a recover that converts the panic into a FormatError.
func (r *pdfReader) Read(data []byte) (records []domain.RawRecord, err error) {
	defer func() {
		if p := recover(); p != nil {
			records = nil
			err = domain.NewFormatError(domain.FormatPDF, fmt.Errorf("malformed pdf: %v", p))
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.NewFormatError(domain.FormatPDF, err)
	}

	line := 0
	for pageNum := 1; pageNum <= doc.NumPage(); pageNum++ {
		page := doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, domain.NewFormatError(domain.FormatPDF, err)
		}
		for _, row := range rows {
			var sb strings.Builder
			for _, text := range row.Content {
				sb.WriteString(text.S)
			}
			line++
			t := strings.TrimSpace(sb.String())
			if t == "" {
				continue
			}
			records = append(records, domain.RawRecord{Fields: []string{t}, Line: line})
		}
	}

	return records, nil
}
