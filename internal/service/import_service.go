package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"eventhub/internal/config"
	"eventhub/internal/logger"
	"eventhub/internal/models"
	"eventhub/internal/repository"
)

// ErrTooManyRows rejects imports above the configured row limit before any
// database work starts.
var ErrTooManyRows = errors.New("import exceeds the maximum number of rows")

// Cover attached to imported events that carry no image column.
const defaultCoverURL = "/uploads/400x200.png"

// CSV column layout, in order. A header row starting with "id" is skipped.
const (
	colID = iota
	colTitle
	colDescription
	colStartTime
	colOpeningTime
	colMinimumAge
	colSpecialZone
	colLocation
	colLatitude
	colLongitude
	colCategoryID
	colImage
	colDates

	columnCount
)

// ImportRecord is one parsed CSV row. Records in the success list carry the
// ids assigned during the import.
type ImportRecord struct {
	models.Event
	ImageURL string   `json:"imageUrl"`
	Dates    []string `json:"dates"`
}

type ImportedRows struct {
	Quantity int            `json:"quantity"`
	Success  []ImportRecord `json:"success"`
	Failed   []ImportRecord `json:"failed"`
}

type ImportResult struct {
	Error    bool         `json:"error"`
	Imported ImportedRows `json:"imported"`
}

type ImportService interface {
	ImportCSV(ctx context.Context, reader io.Reader, userID string) (*ImportResult, error)
}

type importService struct {
	eventRepo repository.EventRepository
	imageRepo repository.ImageRepository
	dateRepo  repository.DateRepository
	cfg       *config.Config
}

func NewImportService(eventRepo repository.EventRepository, imageRepo repository.ImageRepository, dateRepo repository.DateRepository, cfg *config.Config) ImportService {
	return &importService{
		eventRepo: eventRepo,
		imageRepo: imageRepo,
		dateRepo:  dateRepo,
		cfg:       cfg,
	}
}

// ImportCSV converts a tabular upload into event aggregates, each with a
// cover image and a set of occurrence dates. Rows are processed strictly in
// input order; each row's writes run in one transaction, so a failed row
// leaves nothing behind. The result accumulators are local to the call.
func (s *importService) ImportCSV(ctx context.Context, reader io.Reader, userID string) (*ImportResult, error) {
	rows, err := s.readRows(reader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Imported: ImportedRows{
			Success: []ImportRecord{},
			Failed:  []ImportRecord{},
		},
	}

	for _, row := range rows {
		result.Imported.Quantity++

		record, err := parseRecord(row, userID)
		if err != nil {
			logger.Warn("import row rejected", zap.Int("row", result.Imported.Quantity), zap.Error(err))
			result.Imported.Failed = append(result.Imported.Failed, record)
			continue
		}

		if err := s.importRecord(ctx, &record); err != nil {
			logger.Warn("import row failed", zap.Int("row", result.Imported.Quantity), zap.Error(err))
			result.Imported.Failed = append(result.Imported.Failed, record)
			continue
		}

		result.Imported.Success = append(result.Imported.Success, record)
	}

	result.Error = len(result.Imported.Failed) > 0

	return result, nil
}

func (s *importService) readRows(reader io.Reader) ([][]string, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		// Skip the header row.
		if len(rows) == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[colID]), "id") {
			continue
		}

		if len(rows) >= s.cfg.MaxImportRows {
			return nil, ErrTooManyRows
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// parseRecord maps a row onto an event record. A partially parsed record is
// returned even on failure so it can be reported in the failed list.
func parseRecord(row []string, userID string) (ImportRecord, error) {
	record := ImportRecord{Dates: []string{}}
	record.UserID = userID

	if len(row) < columnCount {
		if len(row) > colTitle {
			record.Title = strings.TrimSpace(row[colTitle])
		}
		return record, fmt.Errorf("expected %d columns, got %d", columnCount, len(row))
	}

	record.EventID = strings.TrimSpace(row[colID])
	record.Title = strings.TrimSpace(row[colTitle])
	record.Description = strings.TrimSpace(row[colDescription])
	record.StartTime = strings.TrimSpace(row[colStartTime])
	record.OpeningTime = strings.TrimSpace(row[colOpeningTime])
	record.Location = strings.TrimSpace(row[colLocation])
	record.ImageURL = strings.TrimSpace(row[colImage])

	if categoryID := strings.TrimSpace(row[colCategoryID]); categoryID != "" {
		record.CategoryID = &categoryID
	}

	for _, date := range strings.Split(row[colDates], ";") {
		if date = strings.TrimSpace(date); date != "" {
			record.Dates = append(record.Dates, date)
		}
	}

	if record.Title == "" {
		return record, errors.New("missing required column: title")
	}
	if record.StartTime == "" {
		return record, errors.New("missing required column: startTime")
	}
	if record.Location == "" {
		return record, errors.New("missing required column: location")
	}

	if v := strings.TrimSpace(row[colMinimumAge]); v != "" {
		minimumAge, err := strconv.ParseBool(v)
		if err != nil {
			return record, fmt.Errorf("invalid minimumAge: %w", err)
		}
		record.MinimumAge = minimumAge
	}

	if v := strings.TrimSpace(row[colSpecialZone]); v != "" {
		specialZone, err := strconv.ParseBool(v)
		if err != nil {
			return record, fmt.Errorf("invalid specialZone: %w", err)
		}
		record.SpecialZone = specialZone
	}

	if v := strings.TrimSpace(row[colLatitude]); v != "" {
		latitude, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return record, fmt.Errorf("invalid latitude: %w", err)
		}
		record.Latitude = latitude
	}

	if v := strings.TrimSpace(row[colLongitude]); v != "" {
		longitude, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return record, fmt.Errorf("invalid longitude: %w", err)
		}
		record.Longitude = longitude
	}

	return record, nil
}

// importRecord writes one row. Rows without an id are inserted; rows with an
// id update the event and replace its images and dates. Everything happens
// inside a single transaction.
func (s *importService) importRecord(ctx context.Context, record *ImportRecord) error {
	tx, err := s.eventRepo.BeginTx(ctx)
	if err != nil {
		return err
	}

	isUpdate := record.EventID != ""

	if isUpdate {
		if err := s.eventRepo.UpdateTx(ctx, tx, &record.Event); err != nil {
			tx.Rollback()
			return err
		}
		if err := s.imageRepo.DeleteByEventIDTx(ctx, tx, record.EventID); err != nil {
			tx.Rollback()
			return err
		}
		if err := s.dateRepo.DeleteByEventIDTx(ctx, tx, record.EventID); err != nil {
			tx.Rollback()
			return err
		}
	} else {
		if err := s.eventRepo.CreateTx(ctx, tx, &record.Event); err != nil {
			tx.Rollback()
			return err
		}
	}

	imageURL := record.ImageURL
	if imageURL == "" {
		imageURL = defaultCoverURL
	}

	image := models.Image{URL: imageURL, EventID: record.EventID}
	if err := s.imageRepo.CreateTx(ctx, tx, &image); err != nil {
		tx.Rollback()
		return err
	}
	record.ImageURL = image.URL

	for _, date := range record.Dates {
		eventDate := models.EventDate{Date: date, EventID: record.EventID}
		if err := s.dateRepo.CreateTx(ctx, tx, &eventDate); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import row: %w", err)
	}

	return nil
}
