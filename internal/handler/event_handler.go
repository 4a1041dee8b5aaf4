package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"eventhub/internal/logger"
	"eventhub/internal/middleware"
	"eventhub/internal/models"
	"eventhub/internal/repository"
	"eventhub/internal/service"
)

type EventRequest struct {
	EventID     string  `json:"eventId"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	StartTime   string  `json:"startTime" validate:"required"`
	OpeningTime string  `json:"openingTime"`
	MinimumAge  bool    `json:"minimumAge"`
	SpecialZone bool    `json:"specialZone"`
	Location    string  `json:"location" validate:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CategoryID  *string `json:"categoryId"`
}

func (req *EventRequest) toModel(userID string) *models.Event {
	return &models.Event{
		EventID:     req.EventID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		OpeningTime: req.OpeningTime,
		MinimumAge:  req.MinimumAge,
		SpecialZone: req.SpecialZone,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		UserID:      userID,
		CategoryID:  req.CategoryID,
	}
}

func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.EventService.GetAll(r.Context())
	if err != nil {
		logger.Error("failed to list events", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, events, http.StatusOK)
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	event, err := h.EventService.GetByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "event not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to get event", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, event, http.StatusOK)
}

// GetUserEvents lists events owned by the authenticated user.
func (h *Handlers) GetUserEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	events, err := h.EventService.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		logger.Error("failed to list user events", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, events, http.StatusOK)
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "invalid event data", http.StatusBadRequest)
		return
	}

	req.EventID = ""
	if err := h.EventService.Create(r.Context(), req.toModel(claims.UserID)); err != nil {
		logger.Error("failed to create event", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"inserted": true}, http.StatusCreated)
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.EventID == "" {
		writeError(w, "eventId is required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "invalid event data", http.StatusBadRequest)
		return
	}

	if err := h.EventService.Update(r.Context(), req.toModel(claims.UserID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "event not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to update event", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"updated": true}, http.StatusCreated)
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	if err := h.EventService.Delete(r.Context(), eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "event not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to delete event", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"deleted": true}, http.StatusOK)
}

// UploadImage receives a multipart file and attaches it to the event as its
// cover image.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "file too large or malformed form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	_, err = h.EventService.UploadImage(r.Context(), eventID, header.Filename, file, header.Size)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "event not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to upload image", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"uploaded": true}, http.StatusCreated)
}

// ImportCSV ingests a tabular upload of events and reports a per-row
// success/failure ledger.
func (h *Handlers) ImportCSV(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "file too large or malformed form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.ImportService.ImportCSV(r.Context(), file, claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrTooManyRows) {
			writeError(w, "too many rows", http.StatusBadRequest)
			return
		}
		logger.Error("import failed", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, result, http.StatusOK)
}
