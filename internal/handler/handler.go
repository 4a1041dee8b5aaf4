package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"eventhub/internal/config"
	"eventhub/internal/repository"
	"eventhub/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	EventService  service.EventService
	ImportService service.ImportService
	CategoryRepo  repository.CategoryRepository
	AttendeeRepo  repository.AttendeeRepository
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		EventService:  service.Event,
		ImportService: service.Import,
		CategoryRepo:  repo.Category,
		AttendeeRepo:  repo.Attendee,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

// HomeHandler answers the service banner.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{
		"api":     "Event Management API Rest",
		"version": "1.0.0",
	}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
