package service

import (
	"eventhub/internal/config"
	"eventhub/internal/repository"
	"eventhub/internal/storage"
	"eventhub/internal/token"
)

type Service struct {
	Auth   AuthService
	Event  EventService
	Import ImportService
}

func NewService(rep *repository.Repository, cfg *config.Config, issuer *token.Issuer, storage storage.Storage) *Service {
	return &Service{
		Auth:   NewAuthService(rep.User, issuer),
		Event:  NewEventService(rep.Event, rep.Image, storage),
		Import: NewImportService(rep.Event, rep.Image, rep.Date, cfg),
	}
}
