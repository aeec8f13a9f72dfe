// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/config"
	"github.com/guttosm/box-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired service: the router plus everything that must be closed on shutdown.
type App struct {
	Router   *gin.Engine
	database *DatabaseComponents
	services *ServiceComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := InitializeDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	services := InitializeServices(db.Gateway, db.Backend, cfg.Cache, cfg.Catalog.StockConcurrency)
	routerComponents := InitializeRouter(services, db, cfg)

	log.Info().
		Str("catalog_backend", db.Backend).
		Bool("snapshot_cache", cfg.Cache.Enabled()).
		Bool("request_logs", db.LoggingService != nil).
		Msg("Application initialized")

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		database: db,
		services: services,
		router:   routerComponents,
	}, nil
}

// Close flushes pending audit entries, then releases caches and connections.
func (a *App) Close(ctx context.Context) {
	if a.router != nil && a.router.AuditLogger != nil {
		a.router.AuditLogger.Stop()
	}
	a.services.Stop()
	a.database.Close(ctx)
}
