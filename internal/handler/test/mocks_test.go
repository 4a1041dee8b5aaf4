package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"eventhub/internal/models"
	"eventhub/internal/service"
	"eventhub/internal/token"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Refresh(ctx context.Context, claims *token.Claims) (*models.User, string, string, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) GetAll(ctx context.Context) ([]models.EventDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EventDetails), args.Error(1)
}

func (m *MockEventService) GetByUserID(ctx context.Context, userID string) ([]models.EventDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EventDetails), args.Error(1)
}

func (m *MockEventService) GetByID(ctx context.Context, eventID string) (*models.EventDetails, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventDetails), args.Error(1)
}

func (m *MockEventService) Create(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventService) Update(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventService) Delete(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *MockEventService) UploadImage(ctx context.Context, eventID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	args := m.Called(ctx, eventID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportCSV(ctx context.Context, reader io.Reader, userID string) (*service.ImportResult, error) {
	args := m.Called(ctx, reader, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

type MockAttendeeRepository struct {
	mock.Mock
}

func (m *MockAttendeeRepository) GetByEventID(ctx context.Context, eventID string) ([]models.Attendee, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendee), args.Error(1)
}

func (m *MockAttendeeRepository) GetByUserID(ctx context.Context, userID string) ([]models.Attendee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendee), args.Error(1)
}

func (m *MockAttendeeRepository) Create(ctx context.Context, attendee *models.Attendee) error {
	args := m.Called(ctx, attendee)
	return args.Error(0)
}

func (m *MockAttendeeRepository) Update(ctx context.Context, attendeeID, date string) error {
	args := m.Called(ctx, attendeeID, date)
	return args.Error(0)
}

func (m *MockAttendeeRepository) Delete(ctx context.Context, attendeeID string) error {
	args := m.Called(ctx, attendeeID)
	return args.Error(0)
}
