package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/mocks"
	"github.com/guttosm/box-service/internal/repository"
	"github.com/guttosm/box-service/internal/service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testModels = []model.BoxModel{
	{ModelID: "CUBE-M", Name: "Cube medium", FrenteMM: 600, ProfundoMM: 400, AltoMM: 300},
	{ModelID: "CUBE-S", Name: "Cube small", FrenteMM: 300, ProfundoMM: 200, AltoMM: 150},
}

func newGateway(stockM, stockS int) *mocks.MockCatalogGateway {
	gw := new(mocks.MockCatalogGateway)
	gw.On("FetchCompatibleModels", mock.Anything, "S1").Return(testModels, nil)
	gw.On("FetchAvailableStock", mock.Anything, "S1", "CUBE-M").Return(stockM, nil)
	gw.On("FetchAvailableStock", mock.Anything, "S1", "CUBE-S").Return(stockS, nil)
	return gw
}

func TestCatalogService_Snapshot(t *testing.T) {
	gw := newGateway(5, -3)
	svc := NewCatalogService(gw, WithBackendName("memory"), WithStockConcurrency(1))

	snap, err := svc.Snapshot(context.Background(), "S1")
	require.NoError(t, err)

	assert.Equal(t, "S1", snap.SiteID)
	assert.Equal(t, testModels, snap.Models)
	assert.Equal(t, model.StockLevel{"CUBE-M": 5, "CUBE-S": 0}, snap.Stock)
	assert.False(t, snap.FetchedAt.IsZero())
	gw.AssertExpectations(t)
}

func TestCatalogService_SnapshotErrors(t *testing.T) {
	driverErr := errors.New("connection reset")

	tests := []struct {
		name   string
		setup  func(gw *mocks.MockCatalogGateway)
		target error
	}{
		{
			name: "models fetch fails",
			setup: func(gw *mocks.MockCatalogGateway) {
				gw.On("FetchCompatibleModels", mock.Anything, "S1").
					Return(nil, repository.ErrCatalogUnavailable)
			},
			target: repository.ErrCatalogUnavailable,
		},
		{
			name: "unknown site",
			setup: func(gw *mocks.MockCatalogGateway) {
				gw.On("FetchCompatibleModels", mock.Anything, "S1").
					Return(nil, repository.ErrSiteNotFound)
			},
			target: repository.ErrSiteNotFound,
		},
		{
			name: "stock fetch fails",
			setup: func(gw *mocks.MockCatalogGateway) {
				gw.On("FetchCompatibleModels", mock.Anything, "S1").Return(testModels, nil)
				gw.On("FetchAvailableStock", mock.Anything, "S1", mock.Anything).Return(0, driverErr)
			},
			target: driverErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(mocks.MockCatalogGateway)
			tt.setup(gw)
			svc := NewCatalogService(gw)

			_, err := svc.Snapshot(context.Background(), "S1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestCatalogService_SnapshotCache(t *testing.T) {
	gw := newGateway(5, 2)
	c := cache.NewSharded[model.CatalogSnapshot](16, time.Minute, 2)
	defer c.Stop()
	svc := NewCatalogService(gw, WithSnapshotCache(c))
	ctx := context.Background()

	first, err := svc.Snapshot(ctx, "S1")
	require.NoError(t, err)
	first.Stock["CUBE-M"] = 0
	first.Models[0].Name = "mutated"

	second, err := svc.Snapshot(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, 5, second.Stock["CUBE-M"])
	assert.Equal(t, "Cube medium", second.Models[0].Name)
	gw.AssertNumberOfCalls(t, "FetchCompatibleModels", 1)

	svc.Invalidate("S1")
	_, err = svc.Snapshot(ctx, "S1")
	require.NoError(t, err)
	gw.AssertNumberOfCalls(t, "FetchCompatibleModels", 2)
}

func TestCatalogService_Products(t *testing.T) {
	t.Run("deduplicates codes", func(t *testing.T) {
		gw := new(mocks.MockCatalogGateway)
		want := map[string]model.Product{"P-1": {Code: "P-1", LengthMM: 10, WidthMM: 10, HeightMM: 10}}
		gw.On("FetchProducts", mock.Anything, "S1", []string{"P-1", "P-2"}).Return(want, nil)
		svc := NewCatalogService(gw)

		got, err := svc.Products(context.Background(), "S1", []string{"P-1", "", "P-2", "P-1"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("no codes skips the gateway", func(t *testing.T) {
		gw := new(mocks.MockCatalogGateway)
		svc := NewCatalogService(gw)

		got, err := svc.Products(context.Background(), "S1", []string{""})
		require.NoError(t, err)
		assert.Empty(t, got)
		gw.AssertNotCalled(t, "FetchProducts", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("gateway error", func(t *testing.T) {
		gw := new(mocks.MockCatalogGateway)
		gw.On("FetchProducts", mock.Anything, "S1", []string{"P-1"}).Return(nil, repository.ErrCatalogUnavailable)
		svc := NewCatalogService(gw)

		_, err := svc.Products(context.Background(), "S1", []string{"P-1"})
		assert.ErrorIs(t, err, repository.ErrCatalogUnavailable)
	})
}

func TestCatalogService_WithMemoryCatalog(t *testing.T) {
	seed := &repository.Seed{Sites: []repository.SeedSite{{
		ID: "S1",
		Models: []repository.SeedModel{
			{BoxModel: testModels[0], Stock: 4},
			{BoxModel: model.BoxModel{ModelID: "FLAT", FrenteMM: 100, ProfundoMM: 100}, Stock: 9},
		},
	}}}
	svc := NewCatalogService(repository.NewMemoryCatalog(seed))

	snap, err := svc.Snapshot(context.Background(), "S1")
	require.NoError(t, err)
	require.Len(t, snap.Models, 1)
	assert.Equal(t, model.StockLevel{"CUBE-M": 4}, snap.Stock)
}
