package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/mocks"
	"github.com/guttosm/box-service/internal/packing"
	"github.com/guttosm/box-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSnapshot(stock model.StockLevel) model.CatalogSnapshot {
	return model.CatalogSnapshot{
		SiteID:    "S1",
		Models:    []model.BoxModel{{ModelID: "CUBE-M", Name: "Cube medium", FrenteMM: 600, ProfundoMM: 400, AltoMM: 300}},
		Stock:     stock,
		FetchedAt: time.Now(),
	}
}

var kettles = []model.RequestItem{{Code: "P-1", LengthMM: 300, WidthMM: 200, HeightMM: 150, Quantity: 4}}

func TestRecommendationService_Recommend(t *testing.T) {
	tests := []struct {
		name      string
		items     []model.RequestItem
		setup     func(c *mocks.MockCatalogService)
		wantErr   error
		wantBoxes []int
	}{
		{
			name:  "single box holds the order",
			items: kettles,
			setup: func(c *mocks.MockCatalogService) {
				c.On("Snapshot", mock.Anything, "S1").Return(testSnapshot(model.StockLevel{"CUBE-M": 5}), nil)
			},
			wantBoxes: []int{1},
		},
		{
			name:  "no stock means no recommendation",
			items: kettles,
			setup: func(c *mocks.MockCatalogService) {
				c.On("Snapshot", mock.Anything, "S1").Return(testSnapshot(model.StockLevel{"CUBE-M": 0}), nil)
			},
			wantBoxes: []int{},
		},
		{
			name:    "invalid quantity is rejected before the snapshot",
			items:   []model.RequestItem{{LengthMM: 1, WidthMM: 1, HeightMM: 1, Quantity: 0}},
			setup:   func(c *mocks.MockCatalogService) {},
			wantErr: packing.ErrInvalidInput,
		},
		{
			name:  "catalog unavailable",
			items: kettles,
			setup: func(c *mocks.MockCatalogService) {
				c.On("Snapshot", mock.Anything, "S1").Return(model.CatalogSnapshot{}, repository.ErrCatalogUnavailable)
			},
			wantErr: repository.ErrCatalogUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(mocks.MockCatalogService)
			tt.setup(catalog)
			svc := NewRecommendationService(catalog)

			result, err := svc.Recommend(context.Background(), "S1", tt.items)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				catalog.AssertNotCalled(t, "Products", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)

			boxes := make([]int, 0, len(result.Recommendations))
			for _, r := range result.Recommendations {
				boxes = append(boxes, r.BoxesRequired)
			}
			assert.Equal(t, tt.wantBoxes, boxes)
			assert.Equal(t, 4, result.TotalUnits)
			assert.InDelta(t, 0.036, result.TotalVolumeM3, 1e-9)
		})
	}
}

func TestRecommendationService_ResolvesProductCodes(t *testing.T) {
	catalog := new(mocks.MockCatalogService)
	catalog.On("Products", mock.Anything, "S1", []string{"P-1"}).Return(map[string]model.Product{
		"P-1": {Code: "P-1", Name: "Kettle", LengthMM: 300, WidthMM: 200, HeightMM: 150},
	}, nil)
	catalog.On("Snapshot", mock.Anything, "S1").Return(testSnapshot(model.StockLevel{"CUBE-M": 5}), nil)
	svc := NewRecommendationService(catalog)

	items := []model.RequestItem{
		{Code: "P-1", Quantity: 4},
		{Code: "P-9", Name: "Own size", LengthMM: 100, WidthMM: 100, HeightMM: 100, Quantity: 1},
	}
	result, err := svc.Recommend(context.Background(), "S1", items)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "Kettle", result.Items[0].Name)
	assert.Equal(t, 300.0, result.Items[0].LengthMM)
	assert.Equal(t, 100.0, result.Items[1].LengthMM)
	assert.Zero(t, items[0].LengthMM, "caller items are not modified")
	catalog.AssertExpectations(t)
}

func TestRecommendationService_UnknownProduct(t *testing.T) {
	catalog := new(mocks.MockCatalogService)
	catalog.On("Products", mock.Anything, "S1", []string{"P-404"}).Return(map[string]model.Product{}, nil)
	svc := NewRecommendationService(catalog)

	_, err := svc.PackMixed(context.Background(), "S1", []model.RequestItem{{Code: "P-404", Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Contains(t, err.Error(), "P-404")
	catalog.AssertNotCalled(t, "Snapshot", mock.Anything, mock.Anything)
}

func TestRecommendationService_PackMixed(t *testing.T) {
	catalog := new(mocks.MockCatalogService)
	catalog.On("Snapshot", mock.Anything, "S1").Return(testSnapshot(model.StockLevel{"CUBE-M": 1}), nil)
	svc := NewRecommendationService(catalog)

	items := []model.RequestItem{{LengthMM: 300, WidthMM: 200, HeightMM: 150, Quantity: 10}}
	result, err := svc.PackMixed(context.Background(), "S1", items)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Mix.TotalBoxes)
	assert.Equal(t, 2, result.Mix.TotalUnmetUnits)
	require.Len(t, result.Mix.Items, 1)
	assert.Equal(t, 8, result.Mix.Items[0].CoveredUnits)
	assert.Equal(t, 10, result.TotalUnits)
}

func TestRecommendationService_Evaluate(t *testing.T) {
	catalog := new(mocks.MockCatalogService)
	catalog.On("Snapshot", mock.Anything, "S1").Return(testSnapshot(model.StockLevel{}), nil)
	svc := NewRecommendationService(catalog)

	items := []model.RequestItem{
		{LengthMM: 300, WidthMM: 200, HeightMM: 150, Quantity: 1},
		{LengthMM: 900, WidthMM: 10, HeightMM: 10, Quantity: 1},
	}
	result, err := svc.Evaluate(context.Background(), "S1", items)
	require.NoError(t, err)

	require.Len(t, result.Evaluations, 1)
	ev := result.Evaluations[0]
	assert.Equal(t, 0, ev.Stock)
	assert.False(t, ev.CompatibleComplete)
	require.Len(t, ev.Orientations, 2)
	assert.NotNil(t, ev.Orientations[0])
	assert.Nil(t, ev.Orientations[1])
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "validation", err: &packing.ValidationError{Index: 0, Field: "cantidad", Reason: "x"}, want: "validation_error"},
		{name: "unknown product", err: ErrProductNotFound, want: "validation_error"},
		{name: "catalog", err: errors.New("boom"), want: "catalog_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeOf(tt.err))
		})
	}
}
