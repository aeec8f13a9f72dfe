// Package service wires the catalog gateway, the snapshot cache and the
// packing engine into the operations exposed over HTTP and the CLI.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/logger"
	"github.com/guttosm/box-service/internal/metrics"
	"github.com/guttosm/box-service/internal/repository"
	"github.com/guttosm/box-service/internal/service/cache"
	"golang.org/x/sync/errgroup"
)

// defaultStockConcurrency bounds parallel stock lookups per snapshot.
const defaultStockConcurrency = 8

// CatalogService builds point-in-time catalog snapshots for a site.
type CatalogService interface {
	// Snapshot returns the compatible models of a site and their available stock.
	Snapshot(ctx context.Context, siteID string) (model.CatalogSnapshot, error)
	// Products looks up catalog products by code.
	Products(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error)
	// Invalidate drops any cached snapshot of the site.
	Invalidate(siteID string)
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// CatalogServiceImpl implements CatalogService over a CatalogGateway.
type CatalogServiceImpl struct {
	gateway          repository.CatalogGateway
	cache            cache.Cache[model.CatalogSnapshot]
	backend          string
	stockConcurrency int
	now              func() time.Time
}

// NewCatalogService creates a catalog service reading through gateway.
func NewCatalogService(gateway repository.CatalogGateway, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		gateway:          gateway,
		backend:          "unknown",
		stockConcurrency: defaultStockConcurrency,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSnapshotCache caches snapshots per site. A nil cache disables caching.
func WithSnapshotCache(c cache.Cache[model.CatalogSnapshot]) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.cache = c
	}
}

// WithBackendName labels catalog metrics with the gateway backend.
func WithBackendName(name string) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if name != "" {
			s.backend = name
		}
	}
}

// WithStockConcurrency sets how many stock lookups run at once.
func WithStockConcurrency(n int) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if n > 0 {
			s.stockConcurrency = n
		}
	}
}

// Snapshot returns a cached snapshot when one is live, otherwise fetches the
// models and then the stock of every model.
func (s *CatalogServiceImpl) Snapshot(ctx context.Context, siteID string) (model.CatalogSnapshot, error) {
	if s.cache != nil {
		if snap, ok := s.cache.Get(siteID); ok {
			return cloneSnapshot(snap), nil
		}
	}

	start := time.Now()
	models, err := s.gateway.FetchCompatibleModels(ctx, siteID)
	metrics.RecordCatalogFetch(s.backend, "models", time.Since(start), err)
	if err != nil {
		return model.CatalogSnapshot{}, fmt.Errorf("fetch models for site %s: %w", siteID, err)
	}

	stock, err := s.fetchStock(ctx, siteID, models)
	if err != nil {
		return model.CatalogSnapshot{}, err
	}

	snap := model.CatalogSnapshot{
		SiteID:    siteID,
		Models:    models,
		Stock:     stock,
		FetchedAt: s.now().UTC(),
	}

	log := logger.Ctx(ctx, siteID)
	log.Debug().
		Int("models", len(models)).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog snapshot fetched")

	if s.cache != nil {
		s.cache.Set(siteID, cloneSnapshot(snap))
		s.publishCacheMetrics()
	}
	return snap, nil
}

func (s *CatalogServiceImpl) fetchStock(ctx context.Context, siteID string, models []model.BoxModel) (model.StockLevel, error) {
	counts := make([]int, len(models))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.stockConcurrency)
	for i, m := range models {
		i, m := i, m
		g.Go(func() error {
			start := time.Now()
			n, err := s.gateway.FetchAvailableStock(gctx, siteID, m.ModelID)
			metrics.RecordCatalogFetch(s.backend, "stock", time.Since(start), err)
			if err != nil {
				return fmt.Errorf("fetch stock for %s/%s: %w", siteID, m.ModelID, err)
			}
			counts[i] = max(0, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stock := make(model.StockLevel, len(models))
	for i, m := range models {
		stock[m.ModelID] = counts[i]
	}
	return stock, nil
}

// Products looks up products by code. Empty and repeated codes are ignored.
func (s *CatalogServiceImpl) Products(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error) {
	unique := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		if c != "" && !seen[c] {
			seen[c] = true
			unique = append(unique, c)
		}
	}
	if len(unique) == 0 {
		return map[string]model.Product{}, nil
	}

	start := time.Now()
	products, err := s.gateway.FetchProducts(ctx, siteID, unique)
	metrics.RecordCatalogFetch(s.backend, "products", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("fetch products for site %s: %w", siteID, err)
	}
	return products, nil
}

// Invalidate drops any cached snapshot of the site.
func (s *CatalogServiceImpl) Invalidate(siteID string) {
	if s.cache != nil {
		s.cache.Invalidate(siteID)
		s.publishCacheMetrics()
	}
}

func (s *CatalogServiceImpl) publishCacheMetrics() {
	if mc, ok := s.cache.(cache.CacheWithMetrics[model.CatalogSnapshot]); ok {
		m := mc.Metrics()
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}
}

// cloneSnapshot keeps cached snapshots isolated from callers.
func cloneSnapshot(snap model.CatalogSnapshot) model.CatalogSnapshot {
	out := snap
	out.Models = append([]model.BoxModel(nil), snap.Models...)
	out.Stock = snap.Stock.Clone()
	return out
}
