package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"eventhub/cmd/app"
	"eventhub/internal/config"
	handlers "eventhub/internal/handler"
	"eventhub/internal/logger"
	"eventhub/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, repo, services, issuer := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	accessGuard := middleware.TokenGuard("token", issuer.VerifyAccess)
	refreshGuard := middleware.TokenGuard("refresh", issuer.VerifyRefresh)

	router := mux.NewRouter()

	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	router.Handle("/refresh", refreshGuard(http.HandlerFunc(handler.Refresh))).Methods(http.MethodPost)
	router.Handle("/logout", accessGuard(http.HandlerFunc(handler.Logout))).Methods(http.MethodPost)

	events := router.PathPrefix("/events").Subrouter()
	events.Use(mux.MiddlewareFunc(accessGuard))
	events.HandleFunc("/user", handler.GetUserEvents).Methods(http.MethodPost)
	events.HandleFunc("/upload/{eventId}", handler.UploadImage).Methods(http.MethodPost)
	events.HandleFunc("/import", handler.ImportCSV).Methods(http.MethodPost)
	events.HandleFunc("/{id}", handler.GetEvent).Methods(http.MethodGet)
	events.HandleFunc("/{id}", handler.DeleteEvent).Methods(http.MethodDelete)
	events.HandleFunc("", handler.GetEvents).Methods(http.MethodGet)
	events.HandleFunc("", handler.CreateEvent).Methods(http.MethodPost)
	events.HandleFunc("", handler.UpdateEvent).Methods(http.MethodPut)

	attendees := router.PathPrefix("/attendees").Subrouter()
	attendees.Use(mux.MiddlewareFunc(accessGuard))
	attendees.HandleFunc("/event/{eventId}", handler.GetEventAttendees).Methods(http.MethodGet)
	attendees.HandleFunc("/user", handler.GetUserAttendees).Methods(http.MethodGet)
	attendees.HandleFunc("/{id}", handler.DeleteAttendee).Methods(http.MethodDelete)
	attendees.HandleFunc("", handler.CreateAttendee).Methods(http.MethodPost)
	attendees.HandleFunc("", handler.UpdateAttendee).Methods(http.MethodPut)

	categories := router.PathPrefix("/categories").Subrouter()
	categories.Use(mux.MiddlewareFunc(accessGuard))
	categories.HandleFunc("/{id}", handler.GetCategory).Methods(http.MethodGet)
	categories.HandleFunc("/{id}", handler.DeleteCategory).Methods(http.MethodDelete)
	categories.HandleFunc("", handler.GetCategories).Methods(http.MethodGet)
	categories.HandleFunc("", handler.CreateCategory).Methods(http.MethodPost)
	categories.HandleFunc("", handler.UpdateCategory).Methods(http.MethodPut)

	handlerChain := middleware.Chain(
		router,
		middleware.TimeoutMiddleware(cfg.RequestTimeout),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("server listening", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
