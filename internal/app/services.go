// Package app provides service initialization.
package app

import (
	"github.com/guttosm/box-service/config"
	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/repository"
	"github.com/guttosm/box-service/internal/service"
	"github.com/guttosm/box-service/internal/service/cache"
)

// snapshotCacheShards is the shard count of the catalog snapshot cache.
const snapshotCacheShards = 16

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog         service.CatalogService
	Recommendations service.RecommendationService
	snapshotCache   cache.Cache[model.CatalogSnapshot]
}

// Stop shuts down the snapshot cache cleanup.
func (s *ServiceComponents) Stop() {
	if s != nil && s.snapshotCache != nil {
		s.snapshotCache.Stop()
	}
}

// InitializeServices builds the catalog and recommendation services over gateway.
func InitializeServices(gateway repository.CatalogGateway, backend string, cfg config.CacheConfig, stockConcurrency int) *ServiceComponents {
	opts := []service.CatalogOption{
		service.WithBackendName(backend),
		service.WithStockConcurrency(stockConcurrency),
	}

	var snapshots cache.Cache[model.CatalogSnapshot]
	if cfg.Enabled() {
		snapshots = cache.NewSharded[model.CatalogSnapshot](cfg.Size, cfg.TTL, snapshotCacheShards)
		opts = append(opts, service.WithSnapshotCache(snapshots))
	}

	catalog := service.NewCatalogService(gateway, opts...)
	return &ServiceComponents{
		Catalog:         catalog,
		Recommendations: service.NewRecommendationService(catalog),
		snapshotCache:   snapshots,
	}
}
