// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/box-service/internal/domain/model"
)

// CatalogGateway supplies box model geometry, live stock and product rows for a site.
type CatalogGateway interface {
	// FetchCompatibleModels returns the active models at a site whose three
	// interior dimensions are all positive, ordered by model id.
	FetchCompatibleModels(ctx context.Context, siteID string) ([]model.BoxModel, error)
	// FetchAvailableStock counts the units of a model in the "available" state.
	FetchAvailableStock(ctx context.Context, siteID, modelID string) (int, error)
	// FetchProducts returns the known products among codes, keyed by code.
	FetchProducts(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error)
}

// AuditLogs persists and queries log entries.
type AuditLogs interface {
	Insert(ctx context.Context, entries ...*model.LogEntry) error
	Find(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
