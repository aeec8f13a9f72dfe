// Package app provides router configuration.
package app

import (
	"github.com/guttosm/box-service/config"
	"github.com/guttosm/box-service/internal/http"
	"github.com/guttosm/box-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	AuditLogger   *middleware.AsyncLogger
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	var auditLogger *middleware.AsyncLogger

	if db != nil {
		if db.LoggingService != nil {
			loggerCfg := middleware.DefaultAsyncLoggerConfig()
			loggerCfg.BufferSize = cfg.Audit.BufferSize
			loggerCfg.NumWorkers = cfg.Audit.Workers
			loggerCfg.BatchSize = cfg.Audit.BatchSize
			loggerCfg.FlushInterval = cfg.Audit.FlushInterval
			auditLogger = middleware.NewAsyncLogger(db.LoggingService, loggerCfg)
		}
		if db.Mongo != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(db.Mongo.HealthCheck))
		}
		if db.Postgres != nil {
			healthHandler.RegisterChecker("postgres", http.HealthCheckerFunc(db.Postgres.Ping))
		}
		if db.CatalogBreaker != nil {
			healthHandler.RegisterCircuitBreaker(db.CatalogBreaker.Name(), db.CatalogBreaker)
		}
		if db.LogsBreaker != nil {
			healthHandler.RegisterCircuitBreaker(db.LogsBreaker.Name(), db.LogsBreaker)
		}
	}

	var opts []http.HandlerOption
	if db != nil && db.LoggingService != nil {
		opts = append(opts, http.WithLogQueries(db.LoggingService))
	}
	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateBurst:         cfg.Server.RateBurst,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}
	// A nil *AsyncLogger must not become a non-nil interface.
	if auditLogger != nil {
		routerCfg.AuditWriter = auditLogger
		opts = append(opts, http.WithAuditWriter(auditLogger))
	}

	return &RouterComponents{
		Handler:       http.NewHandler(services.Recommendations, services.Catalog, opts...),
		HealthHandler: healthHandler,
		Config:        routerCfg,
		AuditLogger:   auditLogger,
	}
}
