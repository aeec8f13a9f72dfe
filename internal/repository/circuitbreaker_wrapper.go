package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/box-service/internal/circuitbreaker"
	"github.com/guttosm/box-service/internal/domain/model"
)

// IsCatalogFailure reports whether a gateway error says something about the
// health of the store. Unknown sites and cancelled requests do not.
func IsCatalogFailure(err error) bool {
	return !errors.Is(err, ErrSiteNotFound) && !errors.Is(err, context.Canceled)
}

// CatalogGatewayWithCircuitBreaker wraps a CatalogGateway with circuit breaker protection.
// Store failures come back wrapped in ErrCatalogUnavailable with the driver error kept in the chain.
type CatalogGatewayWithCircuitBreaker struct {
	gateway        CatalogGateway
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogGatewayWithCircuitBreaker creates a new gateway wrapper with circuit breaker.
func NewCatalogGatewayWithCircuitBreaker(gateway CatalogGateway, cb *circuitbreaker.CircuitBreaker) *CatalogGatewayWithCircuitBreaker {
	return &CatalogGatewayWithCircuitBreaker{
		gateway:        gateway,
		circuitBreaker: cb,
	}
}

func (g *CatalogGatewayWithCircuitBreaker) execute(ctx context.Context, fn func() error) error {
	err := g.circuitBreaker.Execute(ctx, fn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	case IsCatalogFailure(err) && !errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	default:
		return err
	}
}

// FetchCompatibleModels returns compatible models with circuit breaker protection.
func (g *CatalogGatewayWithCircuitBreaker) FetchCompatibleModels(ctx context.Context, siteID string) ([]model.BoxModel, error) {
	var result []model.BoxModel
	err := g.execute(ctx, func() error {
		var cbErr error
		result, cbErr = g.gateway.FetchCompatibleModels(ctx, siteID)
		return cbErr
	})
	return result, err
}

// FetchAvailableStock returns available stock with circuit breaker protection.
func (g *CatalogGatewayWithCircuitBreaker) FetchAvailableStock(ctx context.Context, siteID, modelID string) (int, error) {
	var result int
	err := g.execute(ctx, func() error {
		var cbErr error
		result, cbErr = g.gateway.FetchAvailableStock(ctx, siteID, modelID)
		return cbErr
	})
	return result, err
}

// FetchProducts returns products with circuit breaker protection.
func (g *CatalogGatewayWithCircuitBreaker) FetchProducts(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error) {
	var result map[string]model.Product
	err := g.execute(ctx, func() error {
		var cbErr error
		result, cbErr = g.gateway.FetchProducts(ctx, siteID, codes)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (g *CatalogGatewayWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return g.circuitBreaker
}

// AuditLogsWithCircuitBreaker guards an AuditLogs store. Writes are best
// effort: while the circuit is open they are dropped without error, reads fail.
type AuditLogsWithCircuitBreaker struct {
	store          AuditLogs
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditLogsWithCircuitBreaker wraps store with cb.
func NewAuditLogsWithCircuitBreaker(store AuditLogs, cb *circuitbreaker.CircuitBreaker) *AuditLogsWithCircuitBreaker {
	return &AuditLogsWithCircuitBreaker{
		store:          store,
		circuitBreaker: cb,
	}
}

// Insert writes entries unless the circuit is open.
func (a *AuditLogsWithCircuitBreaker) Insert(ctx context.Context, entries ...*model.LogEntry) error {
	err := a.circuitBreaker.Execute(ctx, func() error {
		return a.store.Insert(ctx, entries...)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Find reads entries through the breaker.
func (a *AuditLogsWithCircuitBreaker) Find(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	var entries []model.LogEntry
	err := a.circuitBreaker.Execute(ctx, func() error {
		var err error
		entries, err = a.store.Find(ctx, opts)
		return err
	})
	return entries, err
}

// Count counts entries through the breaker.
func (a *AuditLogsWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var n int64
	err := a.circuitBreaker.Execute(ctx, func() error {
		var err error
		n, err = a.store.Count(ctx, opts)
		return err
	})
	return n, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (a *AuditLogsWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return a.circuitBreaker
}
