package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menuflow/internal/config"
	"menuflow/internal/domain"
	"menuflow/internal/port"
	"menuflow/internal/service"
	"menuflow/mocks"
)

func setupParseService(maxFileSizeMB int64) (service.ParseService, *mocks.MockObjectStorage) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewParseService(storage, &config.S3Config{
		Bucket:        "menu-uploads",
		MaxFileSizeMB: maxFileSizeMB,
	})
	return svc, storage
}

const simpleMenuText = "STARTERS\nGarlic Bread 4.50\nBruschetta 5.00\n"

func TestParseService_ParseUpload_SniffsFormatFromExtension(t *testing.T) {
	svc, storage := setupParseService(10)
	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)

	result, err := svc.ParseUpload(context.Background(), &service.ParseUploadInput{
		RestaurantID: uuid.New(),
		MenuName:     "Lunch",
		FileName:     "lunch.txt",
		Data:         []byte(simpleMenuText),
	})

	require.NoError(t, err)
	assert.Equal(t, "Lunch", result.MenuName)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "Garlic Bread", result.Items[0].Name)
}

func TestParseService_ParseUpload_ExplicitFormatWinsOverExtension(t *testing.T) {
	svc, storage := setupParseService(10)
	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)

	result, err := svc.ParseUpload(context.Background(), &service.ParseUploadInput{
		RestaurantID: uuid.New(),
		MenuName:     "Lunch",
		FileName:     "lunch.dat",
		Format:       domain.FormatDelimited,
		Data:         []byte(simpleMenuText),
	})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}

func TestParseService_ParseUpload_UnsupportedFormat(t *testing.T) {
	svc, storage := setupParseService(10)

	_, err := svc.ParseUpload(context.Background(), &service.ParseUploadInput{
		RestaurantID: uuid.New(),
		MenuName:     "Lunch",
		FileName:     "lunch.exe",
		Data:         []byte(simpleMenuText),
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestParseService_ParseUpload_FileTooLarge(t *testing.T) {
	svc, storage := setupParseService(0)

	_, err := svc.ParseUpload(context.Background(), &service.ParseUploadInput{
		RestaurantID: uuid.New(),
		MenuName:     "Lunch",
		FileName:     "lunch.txt",
		Data:         []byte(simpleMenuText),
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestParseService_ParseUpload_ArchivesOriginal(t *testing.T) {
	svc, storage := setupParseService(10)
	restaurantID := uuid.New()

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "menu-uploads" &&
			in.ContentType == "text/plain" &&
			in.Size == int64(len(simpleMenuText))
	})).Return(&port.UploadOutput{}, nil)

	_, err := svc.ParseUpload(context.Background(), &service.ParseUploadInput{
		RestaurantID: restaurantID,
		MenuName:     "Lunch",
		FileName:     "lunch.txt",
		Data:         []byte(simpleMenuText),
	})

	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestParseService_ParseUpload_ArchiveFailureIsNotFatal(t *testing.T) {
	svc, storage := setupParseService(10)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket unreachable"))

	result, err := svc.ParseUpload(context.Background(), &service.ParseUploadInput{
		RestaurantID: uuid.New(),
		MenuName:     "Lunch",
		FileName:     "lunch.txt",
		Data:         []byte(simpleMenuText),
	})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Contains(t, result.ProcessingNotes, "original document could not be archived")
}

func TestParseService_ParseUpload_UnreadableDocument(t *testing.T) {
	svc, storage := setupParseService(10)

	_, err := svc.ParseUpload(context.Background(), &service.ParseUploadInput{
		RestaurantID: uuid.New(),
		MenuName:     "Lunch",
		FileName:     "lunch.json",
		Data:         []byte("{not json"),
	})

	var formatErr *domain.FormatError
	assert.ErrorAs(t, err, &formatErr)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}
