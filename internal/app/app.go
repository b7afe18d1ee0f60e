package app

import (
	"context"

	"github.com/ikyawthetpaing/webacademy/internal/config"
	"github.com/ikyawthetpaing/webacademy/internal/db"
	"github.com/ikyawthetpaing/webacademy/internal/handlers"
	"github.com/ikyawthetpaing/webacademy/internal/logger"
	"github.com/ikyawthetpaing/webacademy/internal/repository"
	"github.com/ikyawthetpaing/webacademy/internal/routes"
	"github.com/ikyawthetpaing/webacademy/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	// The database backs only views and subscriptions; without it the
	// content API still serves, with those features degraded.
	var viewRepo repository.ViewRepo
	var subscriberRepo repository.SubscriberRepo
	if cfg.DbHost != "" {
		pool, err := db.NewPostgresConnection(cfg)
		if err != nil {
			logger.Log.Warn("database unavailable, views and subscriptions disabled",
				zap.String("dsn", cfg.GetDSNSafe()), zap.Error(err))
		} else {
			if err := db.EnsureSchema(context.Background(), pool); err != nil {
				return nil, err
			}
			viewRepo = repository.NewViewRepo(pool)
			subscriberRepo = repository.NewSubscriberRepo(pool)
		}
	}

	contentRepo := repository.NewContentRepository(cfg.GeneratedDir)

	// Services
	viewService := services.NewViewService(viewRepo)
	contentService := services.NewContentService(contentRepo)
	queryService := services.NewPostQueryService(contentRepo, viewService)
	subscriberService := services.NewSubscriberService(subscriberRepo)
	authService := services.NewAuthService(cfg)

	// Handlers
	postHandler := handlers.NewPostHandler(contentService, queryService, viewService)
	courseHandler := handlers.NewCourseHandler(contentService)
	pageHandler := handlers.NewPageHandler(contentService)
	subscribeHandler := handlers.NewSubscribeHandler(subscriberService)
	adminHandler := handlers.NewAdminHandler(cfg, authService, subscriberService)

	// Routes
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, postHandler, courseHandler, pageHandler, subscribeHandler, adminHandler)

	return router, nil
}
