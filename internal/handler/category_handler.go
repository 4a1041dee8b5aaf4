package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"eventhub/internal/logger"
	"eventhub/internal/models"
	"eventhub/internal/repository"
)

type CategoryRequest struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name" validate:"required"`
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryRepo.GetAll(r.Context())
	if err != nil {
		logger.Error("failed to list categories", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if len(categories) == 0 {
		writeSuccess(w, []models.Category{}, http.StatusNotFound)
		return
	}

	writeSuccess(w, categories, http.StatusOK)
}

func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.CategoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "category not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to get category", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, category, http.StatusOK)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "name is required", http.StatusBadRequest)
		return
	}

	category := &models.Category{Name: req.Name}
	if err := h.CategoryRepo.Create(r.Context(), category); err != nil {
		logger.Error("failed to create category", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"inserted": true}, http.StatusCreated)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.CategoryID == "" {
		writeError(w, "categoryId is required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "name is required", http.StatusBadRequest)
		return
	}

	category := &models.Category{CategoryID: req.CategoryID, Name: req.Name}
	if err := h.CategoryRepo.Update(r.Context(), category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "category not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to update category", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"updated": true}, http.StatusCreated)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	if err := h.CategoryRepo.Delete(r.Context(), categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "category not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to delete category", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"deleted": true}, http.StatusOK)
}
