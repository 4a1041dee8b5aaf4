package service

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"eventhub/internal/logger"
	"eventhub/internal/models"
	"eventhub/internal/repository"
	"eventhub/internal/storage"
)

type EventService interface {
	GetAll(ctx context.Context) ([]models.EventDetails, error)
	GetByUserID(ctx context.Context, userID string) ([]models.EventDetails, error)
	GetByID(ctx context.Context, eventID string) (*models.EventDetails, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, eventID string) error
	UploadImage(ctx context.Context, eventID, fileName string, file io.Reader, size int64) (*models.Image, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
}

func NewEventService(eventRepo repository.EventRepository, imageRepo repository.ImageRepository, storage storage.Storage) EventService {
	return &eventService{
		eventRepo: eventRepo,
		imageRepo: imageRepo,
		storage:   storage,
	}
}

func (s *eventService) GetAll(ctx context.Context) ([]models.EventDetails, error) {
	return s.eventRepo.GetAll(ctx)
}

func (s *eventService) GetByUserID(ctx context.Context, userID string) ([]models.EventDetails, error) {
	return s.eventRepo.GetByUserID(ctx, userID)
}

func (s *eventService) GetByID(ctx context.Context, eventID string) (*models.EventDetails, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *eventService) Create(ctx context.Context, event *models.Event) error {
	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) Update(ctx context.Context, event *models.Event) error {
	return s.eventRepo.Update(ctx, event)
}

func (s *eventService) Delete(ctx context.Context, eventID string) error {
	return s.eventRepo.Delete(ctx, eventID)
}

// UploadImage stores the file in object storage and records the resulting
// URL. If the database insert fails, the stored object is removed again.
func (s *eventService) UploadImage(ctx context.Context, eventID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	objectName, imageURL, err := s.storage.UploadImage(ctx, eventID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	image := &models.Image{
		URL:     imageURL,
		EventID: eventID,
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		if delErr := s.storage.DeleteImage(ctx, objectName); delErr != nil {
			logger.Warn("failed to remove orphaned object", zap.String("object", objectName), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}

	return image, nil
}
