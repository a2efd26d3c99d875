package reader

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"menuflow/internal/domain"
)

type wordReader struct{}

func (r *wordReader) Format() domain.MenuFormat { return domain.FormatWord }

// Read flattens a .docx document into one record per paragraph. A docx file
// is a zip archive; the body text lives in word/document.xml as w:p
// (paragraph) elements containing w:t (text run) elements.
func (r *wordReader) Read(data []byte) ([]domain.RawRecord, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.NewFormatError(domain.FormatWord, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, domain.NewFormatError(domain.FormatWord, errors.New("archive has no word/document.xml"))
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, domain.NewFormatError(domain.FormatWord, err)
	}
	defer rc.Close()

	records, err := paragraphsFromXML(rc)
	if err != nil {
		return nil, domain.NewFormatError(domain.FormatWord, err)
	}
	return records, nil
}

// paragraphsFromXML walks the document token stream, collecting text runs
// per paragraph. Tabs and breaks inside a paragraph become single spaces.
func paragraphsFromXML(r io.Reader) ([]domain.RawRecord, error) {
	dec := xml.NewDecoder(r)

	var records []domain.RawRecord
	var para strings.Builder
	inText := false
	line := 0

	flush := func() {
		line++
		t := strings.TrimSpace(para.String())
		para.Reset()
		if t == "" {
			return
		}
		records = append(records, domain.RawRecord{Fields: []string{t}, Line: line})
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab", "br":
				para.WriteByte(' ')
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inText {
				para.Write(el)
			}
		}
	}
	if para.Len() > 0 {
		flush()
	}
	return records, nil
}
