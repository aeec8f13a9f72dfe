package packing

import (
	"errors"
	"testing"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	items := []model.RequestItem{
		{Code: "A", LengthMM: 300, WidthMM: 200, HeightMM: 150, Quantity: 4},
		{Code: "B", LengthMM: 123, WidthMM: 45.5, HeightMM: 7, Quantity: 3},
	}

	got := Normalize(items)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Code)
	assert.Equal(t, 0.009, got[0].UnitVolumeM3)
	assert.Equal(t, 0.036, got[0].TotalVolumeM3)
	// 123 * 45.5 * 7 = 39175.5 mm3
	assert.Equal(t, "B", got[1].Code)
	assert.Equal(t, 0.000039, got[1].UnitVolumeM3)
	assert.Equal(t, 0.000117, got[1].TotalVolumeM3)
}

func TestNormalize_Idempotent(t *testing.T) {
	items := []model.RequestItem{
		{LengthMM: 333, WidthMM: 111, HeightMM: 77, Quantity: 9},
		{LengthMM: 160, WidthMM: 160, HeightMM: 160, Quantity: 20},
	}

	first := Normalize(items)
	again := make([]model.RequestItem, len(first))
	for i, n := range first {
		again[i] = n.RequestItem
	}
	second := Normalize(again)

	assert.Equal(t, first, second)
}

func TestTotals(t *testing.T) {
	items := Normalize([]model.RequestItem{
		{LengthMM: 300, WidthMM: 200, HeightMM: 150, Quantity: 4},
		{LengthMM: 100, WidthMM: 100, HeightMM: 100, Quantity: 10},
	})

	units, volume := Totals(items)

	assert.Equal(t, 14, units)
	assert.Equal(t, 0.046, volume)
}

func TestValidateItems(t *testing.T) {
	valid := model.RequestItem{LengthMM: 1, WidthMM: 1, HeightMM: 1, Quantity: 1}

	tests := []struct {
		name      string
		items     []model.RequestItem
		wantField string
		wantIndex int
	}{
		{name: "empty order", items: nil, wantField: "items", wantIndex: -1},
		{name: "zero length", items: []model.RequestItem{valid, {WidthMM: 1, HeightMM: 1, Quantity: 1}}, wantField: "largo_mm", wantIndex: 1},
		{name: "negative width", items: []model.RequestItem{{LengthMM: 1, WidthMM: -1, HeightMM: 1, Quantity: 1}}, wantField: "ancho_mm", wantIndex: 0},
		{name: "zero height", items: []model.RequestItem{{LengthMM: 1, WidthMM: 1, Quantity: 1}}, wantField: "alto_mm", wantIndex: 0},
		{name: "zero quantity", items: []model.RequestItem{{LengthMM: 1, WidthMM: 1, HeightMM: 1}}, wantField: "cantidad", wantIndex: 0},
		{name: "valid order"},
	}
	tests[len(tests)-1].items = []model.RequestItem{valid}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItems(tt.items)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantIndex, vErr.Index)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "items: must not be empty", (&ValidationError{Index: -1, Field: "items", Reason: "must not be empty"}).Error())
	assert.Equal(t, "items[2].cantidad: must be a positive integer", (&ValidationError{Index: 2, Field: "cantidad", Reason: "must be a positive integer"}).Error())
}
