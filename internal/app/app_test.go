package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guttosm/box-service/config"
	"github.com/guttosm/box-service/internal/circuitbreaker"
	"github.com/guttosm/box-service/internal/metrics"
	"github.com/guttosm/box-service/internal/repository"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
sites:
  - id: S1
    models:
      - model_id: CUBE-M
        name: Cube medium
        frente_mm: 600
        profundo_mm: 400
        alto_mm: 300
        stock: 5
    products:
      - code: P-1
        length_mm: 300
        width_mm: 200
        height_mm: 150
`

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))
	return path
}

func memoryConfig(t *testing.T) config.Config {
	t.Helper()
	os.Clearenv()
	cfg := config.Load()
	cfg.Catalog.SeedFile = writeSeed(t)
	cfg.Server.RateLimit = 0
	return cfg
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(t *testing.T, cfg *config.Config)
		wantErr bool
	}{
		{
			name:   "memory backend with seed",
			mutate: func(*testing.T, *config.Config) {},
		},
		{
			name: "memory backend without snapshot cache",
			mutate: func(_ *testing.T, cfg *config.Config) {
				cfg.Cache.Size = 0
			},
		},
		{
			name: "unknown backend",
			mutate: func(_ *testing.T, cfg *config.Config) {
				cfg.Catalog.Backend = "redis"
			},
			wantErr: true,
		},
		{
			name: "missing seed file",
			mutate: func(t *testing.T, cfg *config.Config) {
				cfg.Catalog.SeedFile = filepath.Join(t.TempDir(), "absent.yaml")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig(t)
			tt.mutate(t, &cfg)

			application, err := InitializeApp(context.Background(), cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { application.Close(context.Background()) })

			w := httptest.NewRecorder()
			application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sites/S1/box-models", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "CUBE-M")
		})
	}
}

func TestInitializeDatabase_MemoryWithoutSeed(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()

	db, err := InitializeDatabase(context.Background(), cfg)
	require.NoError(t, err)

	assert.IsType(t, &repository.MemoryCatalog{}, db.Gateway)
	assert.Nil(t, db.CatalogBreaker)
	assert.Nil(t, db.LoggingService)

	_, err = db.Gateway.FetchCompatibleModels(context.Background(), "S1")
	assert.ErrorIs(t, err, repository.ErrSiteNotFound)
}

func TestInitializeServices(t *testing.T) {
	gateway := repository.NewMemoryCatalog(nil)

	tests := []struct {
		name      string
		cfg       config.CacheConfig
		wantCache bool
	}{
		{name: "cache enabled", cfg: config.CacheConfig{Size: 16, TTL: time.Second}, wantCache: true},
		{name: "zero size disables", cfg: config.CacheConfig{Size: 0, TTL: time.Second}},
		{name: "zero ttl disables", cfg: config.CacheConfig{Size: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := InitializeServices(gateway, config.BackendMemory, tt.cfg, 4)
			defer s.Stop()

			assert.NotNil(t, s.Catalog)
			assert.NotNil(t, s.Recommendations)
			assert.Equal(t, tt.wantCache, s.snapshotCache != nil)
		})
	}
}

func TestInitializeRouter_WithoutDatabase(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()
	services := InitializeServices(repository.NewMemoryCatalog(nil), config.BackendMemory, cfg.Cache, cfg.Catalog.StockConcurrency)
	defer services.Stop()

	rc := InitializeRouter(services, nil, cfg)

	assert.NotNil(t, rc.Handler)
	assert.NotNil(t, rc.HealthHandler)
	assert.Nil(t, rc.AuditLogger)
	assert.Nil(t, rc.Config.AuditWriter)
	assert.Equal(t, cfg.Server.RequestTimeout, rc.Config.RequestTimeout)
	assert.True(t, rc.Config.EnableIdempotency)
}

func TestNewBreaker_PublishesState(t *testing.T) {
	cfg := config.CircuitBreakerConfig{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute}
	cb := newBreaker(cfg, "catalog-test", repository.IsCatalogFailure)

	gauge := metrics.CircuitBreakerState.WithLabelValues("catalog-test")
	assert.Equal(t, float64(circuitbreaker.StateClosed), promtestutil.ToFloat64(gauge))

	_ = cb.Execute(context.Background(), func() error { return errors.New("connection refused") })

	assert.True(t, cb.IsOpen())
	assert.Equal(t, float64(circuitbreaker.StateOpen), promtestutil.ToFloat64(gauge))
}
