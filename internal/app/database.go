// Package app provides database initialization and setup.
package app

import (
	"context"
	"fmt"

	"github.com/guttosm/box-service/config"
	"github.com/guttosm/box-service/internal/circuitbreaker"
	"github.com/guttosm/box-service/internal/metrics"
	"github.com/guttosm/box-service/internal/repository"
	"github.com/guttosm/box-service/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds the catalog gateway and the optional log store.
type DatabaseComponents struct {
	Backend        string
	Gateway        repository.CatalogGateway
	CatalogBreaker *circuitbreaker.CircuitBreaker
	LoggingService service.LoggingService
	LogsBreaker    *circuitbreaker.CircuitBreaker
	Mongo          *repository.MongoDB
	Postgres       *pgxpool.Pool
}

// Close releases the database connections.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil {
		return
	}
	if d.Postgres != nil {
		d.Postgres.Close()
	}
	if d.Mongo != nil {
		if err := d.Mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}

// seedImporter is implemented by persistent catalogs that can be seeded from YAML.
type seedImporter interface {
	Import(ctx context.Context, seed *repository.Seed) error
}

// InitializeDatabase connects the configured catalog backend and, when MongoDB
// is enabled, the log store. MongoDB failures only disable request logging
// unless MongoDB is also the catalog backend.
func InitializeDatabase(ctx context.Context, cfg config.Config) (*DatabaseComponents, error) {
	components := &DatabaseComponents{Backend: cfg.Catalog.Backend}

	seed, err := loadSeed(cfg.Catalog.SeedFile)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Enabled {
		if err := initializeMongo(ctx, cfg, components); err != nil {
			if cfg.Catalog.Backend == config.BackendMongoDB {
				return nil, err
			}
			log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without request logs")
		}
	}

	var gateway repository.CatalogGateway
	switch cfg.Catalog.Backend {
	case config.BackendMemory:
		if seed == nil {
			log.Warn().Msg("No CATALOG_SEED_FILE set - memory catalog is empty")
		}
		components.Gateway = repository.NewMemoryCatalog(seed)
		return components, nil
	case config.BackendMongoDB:
		gateway = repository.NewMongoCatalog(components.Mongo)
	case config.BackendPostgres:
		pool, err := initializePostgres(ctx, cfg.Postgres)
		if err != nil {
			components.Close(ctx)
			return nil, err
		}
		components.Postgres = pool
		gateway = repository.NewPostgresCatalog(pool)
	default:
		components.Close(ctx)
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}

	if seed != nil {
		if importer, ok := gateway.(seedImporter); ok {
			if err := importer.Import(ctx, seed); err != nil {
				components.Close(ctx)
				return nil, fmt.Errorf("import seed into %s: %w", cfg.Catalog.Backend, err)
			}
			log.Info().Int("sites", len(seed.Sites)).Str("backend", cfg.Catalog.Backend).Msg("Catalog seeded")
		}
	}

	components.CatalogBreaker = newBreaker(cfg.CircuitBreaker, "catalog-"+cfg.Catalog.Backend, repository.IsCatalogFailure)
	components.Gateway = repository.NewCatalogGatewayWithCircuitBreaker(gateway, components.CatalogBreaker)
	return components, nil
}

func loadSeed(path string) (*repository.Seed, error) {
	if path == "" {
		return nil, nil
	}
	seed, err := repository.LoadSeed(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog seed: %w", err)
	}
	return seed, nil
}

func initializeMongo(ctx context.Context, cfg config.Config, components *DatabaseComponents) error {
	db, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	log.Info().Str("database", cfg.Database.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(ctx, cfg.Database.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	components.Mongo = db
	components.LogsBreaker = newBreaker(cfg.CircuitBreaker, "mongodb-logs", nil)
	auditLogs := repository.NewAuditLogsWithCircuitBreaker(repository.NewAuditLogStore(db), components.LogsBreaker)
	components.LoggingService = service.NewLoggingService(auditLogs)
	return nil
}

func initializePostgres(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	pool, err := repository.NewPostgresPool(ctx, repository.DefaultPostgresConfig(cfg.URL, cfg.Schema))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if cfg.Migrate {
		if err := repository.Migrate(ctx, pool, cfg.Schema); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
	}
	log.Info().Str("schema", cfg.Schema).Msg("Connected to PostgreSQL")
	return pool, nil
}

// newBreaker builds a breaker that publishes its state as a Prometheus gauge.
func newBreaker(cfg config.CircuitBreakerConfig, name string, isFailure func(error) bool) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.FailureThreshold,
		SuccessThreshold: cfg.SuccessThreshold,
		Timeout:          cfg.Timeout,
		Name:             name,
		IsFailure:        isFailure,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}
