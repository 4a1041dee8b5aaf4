package app

import (
	"go.uber.org/zap"

	"eventhub/internal/config"
	"eventhub/internal/database"
	"eventhub/internal/logger"
	"eventhub/internal/repository"
	"eventhub/internal/service"
	"eventhub/internal/storage"
	"eventhub/internal/token"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, *token.Issuer) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logger.Fatal("failed to initialize MinIO", zap.Error(err))
	}

	issuer, err := token.NewIssuerFromFiles(cfg)
	if err != nil {
		logger.Fatal("failed to load signing keys", zap.Error(err))
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, issuer, minioClient)

	return db, repo, services, issuer
}
