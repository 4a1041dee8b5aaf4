package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"eventhub/internal/logger"
	"eventhub/internal/middleware"
	"eventhub/internal/repository"
	"eventhub/internal/service"
)

const (
	accessCookieName  = "token"
	refreshCookieName = "refresh"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Login bool   `json:"login"`
	Role  string `json:"role"`
}

type RegisterRequest struct {
	Username  string  `json:"username" validate:"required"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone"`
}

func (h *Handlers) setSessionCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessCookieName,
		Value:    accessToken,
		MaxAge:   int(h.Cfg.AccessTokenDuration / time.Second),
		HttpOnly: true,
		Path:     "/",
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		MaxAge:   int(h.Cfg.RefreshTokenDuration / time.Second),
		HttpOnly: true,
		Path:     "/",
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeSuccess(w, LoginResponse{Login: false, Role: ""}, http.StatusNotFound)
			return
		}
		logger.Error("login failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.setSessionCookies(w, accessToken, refreshToken)
	writeSuccess(w, LoginResponse{Login: true, Role: user.Role}, http.StatusCreated)
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Refresh(r.Context(), claims)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeSuccess(w, LoginResponse{Login: false, Role: ""}, http.StatusNotFound)
			return
		}
		logger.Error("refresh failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.setSessionCookies(w, accessToken, refreshToken)
	writeSuccess(w, LoginResponse{Login: true, Role: user.Role}, http.StatusCreated)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, accessCookieName)
	clearCookie(w, refreshCookieName)

	writeSuccess(w, map[string]bool{"loggin": false}, http.StatusOK)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "invalid registration data", http.StatusBadRequest)
		return
	}

	err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23502": // not_null_violation
				writeError(w, "missing required field", http.StatusBadRequest)
				return
			case "23505": // unique_violation
				writeError(w, "username already exists", http.StatusUnprocessableEntity)
				return
			}
		}
		logger.Error("registration failed", zap.Error(err))
		writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]bool{"register": true}, http.StatusCreated)
}
