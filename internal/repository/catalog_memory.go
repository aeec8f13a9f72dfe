package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/guttosm/box-service/internal/domain/model"
)

type memorySite struct {
	models   []SeedModel
	stock    map[string]int
	products map[string]model.Product
}

// MemoryCatalog is a CatalogGateway held entirely in memory, loaded from a Seed.
// It backs local development and the boxctl CLI.
type MemoryCatalog struct {
	mu    sync.RWMutex
	sites map[string]*memorySite
}

// NewMemoryCatalog builds an in-memory catalog from seed. A nil seed yields an empty catalog.
func NewMemoryCatalog(seed *Seed) *MemoryCatalog {
	c := &MemoryCatalog{sites: make(map[string]*memorySite)}
	if seed == nil {
		return c
	}
	for _, s := range seed.Sites {
		site := &memorySite{
			models:   append([]SeedModel(nil), s.Models...),
			stock:    make(map[string]int, len(s.Models)),
			products: make(map[string]model.Product, len(s.Products)),
		}
		sort.SliceStable(site.models, func(i, j int) bool {
			return site.models[i].ModelID < site.models[j].ModelID
		})
		for _, m := range s.Models {
			site.stock[m.ModelID] = m.Stock
		}
		for _, p := range s.Products {
			site.products[p.Code] = p
		}
		c.sites[s.ID] = site
	}
	return c
}

func (c *MemoryCatalog) site(siteID string) (*memorySite, error) {
	site, ok := c.sites[siteID]
	if !ok {
		return nil, ErrSiteNotFound
	}
	return site, nil
}

// FetchCompatibleModels returns the active models with positive dimensions, ordered by id.
func (c *MemoryCatalog) FetchCompatibleModels(ctx context.Context, siteID string) ([]model.BoxModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	site, err := c.site(siteID)
	if err != nil {
		return nil, err
	}
	out := make([]model.BoxModel, 0, len(site.models))
	for _, m := range site.models {
		if m.IsActive() && m.HasPositiveDimensions() {
			out = append(out, m.BoxModel)
		}
	}
	return out, nil
}

// FetchAvailableStock returns the available units of a model; unknown models have none.
func (c *MemoryCatalog) FetchAvailableStock(ctx context.Context, siteID, modelID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	site, err := c.site(siteID)
	if err != nil {
		return 0, err
	}
	return max(0, site.stock[modelID]), nil
}

// FetchProducts returns the products among codes that the site knows.
func (c *MemoryCatalog) FetchProducts(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	site, err := c.site(siteID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.Product, len(codes))
	for _, code := range codes {
		if p, ok := site.products[code]; ok {
			out[code] = p
		}
	}
	return out, nil
}

// SetStock overrides the available count of a model, for example after a reservation elsewhere.
func (c *MemoryCatalog) SetStock(siteID, modelID string, units int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	site, err := c.site(siteID)
	if err != nil {
		return err
	}
	site.stock[modelID] = units
	return nil
}

// Sites lists the site ids held by the catalog in sorted order.
func (c *MemoryCatalog) Sites() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.sites))
	for id := range c.sites {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
