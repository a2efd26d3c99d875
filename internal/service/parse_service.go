package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"menuflow/internal/config"
	"menuflow/internal/domain"
	"menuflow/internal/parser"
	"menuflow/internal/port"
)

// ParseUploadInput is the DTO for menu document upload requests.
type ParseUploadInput struct {
	RestaurantID uuid.UUID
	MenuName     string
	FileName     string
	Format       domain.MenuFormat // empty means sniff from FileName
	Data         []byte
}

// ParseService turns uploaded menu documents into parse results.
type ParseService interface {
	ParseUpload(ctx context.Context, input *ParseUploadInput) (*domain.ParseResult, error)
}

type parseService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewParseService creates a new ParseService implementation.
func NewParseService(storage port.ObjectStorage, cfg *config.S3Config) ParseService {
	return &parseService{storage: storage, cfg: cfg}
}

func (s *parseService) ParseUpload(ctx context.Context, input *ParseUploadInput) (*domain.ParseResult, error) {
	format := input.Format
	if format == "" {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
		format = domain.FormatForExtension[ext]
	}
	if !domain.ValidFormats[format] {
		return nil, domain.ErrUnsupportedFormat
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if int64(len(input.Data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	session := parser.NewSession()
	result, err := session.ParseDocument(input.Data, format, input.MenuName)
	if err != nil {
		return nil, err
	}

	// archive the original bytes for audit; failure is never fatal
	if err := s.archiveUpload(ctx, input, format); err != nil {
		log.Printf("parseService: archiving upload for restaurant %s failed: %v", input.RestaurantID, err)
		result.ProcessingNotes = append(result.ProcessingNotes, "original document could not be archived")
	}

	return result, nil
}

func (s *parseService) archiveUpload(ctx context.Context, input *ParseUploadInput, format domain.MenuFormat) error {
	if s.storage == nil {
		return nil
	}
	key := fmt.Sprintf("restaurants/%s/uploads/%s_%s",
		input.RestaurantID, uuid.New(), filepath.Base(input.FileName))
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(input.Data),
		ContentType: contentTypeForFormat(format),
		Size:        int64(len(input.Data)),
	})
	return err
}

func contentTypeForFormat(format domain.MenuFormat) string {
	switch format {
	case domain.FormatTabular:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case domain.FormatPDF:
		return "application/pdf"
	case domain.FormatWord:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case domain.FormatStructured:
		return "application/json"
	default:
		return "text/plain"
	}
}
