// Package reader decodes uploaded menu documents into flat raw records.
// Each reader handles exactly one format; anything it cannot decode is a
// fatal domain.FormatError for the whole document.
package reader

import (
	"menuflow/internal/domain"
)

// Reader extracts raw line or row-tuple records from document bytes.
type Reader interface {
	Format() domain.MenuFormat
	Read(data []byte) ([]domain.RawRecord, error)
}

var readers = map[domain.MenuFormat]Reader{
	domain.FormatTabular:    &tabularReader{},
	domain.FormatPDF:        &pdfReader{},
	domain.FormatWord:       &wordReader{},
	domain.FormatDelimited:  &delimitedReader{},
	domain.FormatStructured: &structuredReader{},
}

// ForFormat returns the reader registered for the given format.
func ForFormat(format domain.MenuFormat) (Reader, error) {
	r, ok := readers[format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	return r, nil
}
