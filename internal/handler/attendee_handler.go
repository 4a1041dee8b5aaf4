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
)

type AttendeeRequest struct {
	AttendeeID string  `json:"attendeeId"`
	Date       string  `json:"date" validate:"required"`
	DateID     *string `json:"dateId"`
	EventID    string  `json:"eventId"`
	UserID     string  `json:"userId"`
}

func (h *Handlers) GetEventAttendees(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	attendees, err := h.AttendeeRepo.GetByEventID(r.Context(), eventID)
	if err != nil {
		logger.Error("failed to list attendees", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, attendees, http.StatusOK)
}

// GetUserAttendees lists the registrations of the authenticated user.
func (h *Handlers) GetUserAttendees(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	attendees, err := h.AttendeeRepo.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		logger.Error("failed to list user attendees", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, attendees, http.StatusOK)
}

func (h *Handlers) CreateAttendee(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req AttendeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil || req.EventID == "" {
		writeError(w, "date and eventId are required", http.StatusBadRequest)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = claims.UserID
	}

	attendee := &models.Attendee{
		Date:    req.Date,
		DateID:  req.DateID,
		EventID: req.EventID,
		UserID:  userID,
	}

	if err := h.AttendeeRepo.Create(r.Context(), attendee); err != nil {
		logger.Error("failed to create attendee", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"inserted": true}, http.StatusCreated)
}

func (h *Handlers) UpdateAttendee(w http.ResponseWriter, r *http.Request) {
	var req AttendeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.AttendeeID == "" || req.Date == "" {
		writeError(w, "attendeeId and date are required", http.StatusBadRequest)
		return
	}

	if err := h.AttendeeRepo.Update(r.Context(), req.AttendeeID, req.Date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "attendee not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to update attendee", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"updated": true}, http.StatusCreated)
}

func (h *Handlers) DeleteAttendee(w http.ResponseWriter, r *http.Request) {
	attendeeID := mux.Vars(r)["id"]

	if err := h.AttendeeRepo.Delete(r.Context(), attendeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "attendee not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to delete attendee", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"deleted": true}, http.StatusOK)
}
