package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryCatalog(t *testing.T) *MemoryCatalog {
	t.Helper()
	seed, err := ParseSeed([]byte(testSeedYAML))
	require.NoError(t, err)
	return NewMemoryCatalog(seed)
}

func TestMemoryCatalog_FetchCompatibleModels(t *testing.T) {
	c := newTestMemoryCatalog(t)
	ctx := context.Background()

	models, err := c.FetchCompatibleModels(ctx, "S1")
	require.NoError(t, err)

	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ModelID
	}
	// FLAT has a zero dimension and OLD is inactive.
	assert.Equal(t, []string{"CUBE-L", "CUBE-M"}, ids)

	models, err = c.FetchCompatibleModels(ctx, "S2")
	require.NoError(t, err)
	assert.Empty(t, models)

	_, err = c.FetchCompatibleModels(ctx, "nope")
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestMemoryCatalog_FetchAvailableStock(t *testing.T) {
	c := newTestMemoryCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		site    string
		modelID string
		want    int
		wantErr error
	}{
		{name: "stocked model", site: "S1", modelID: "CUBE-M", want: 5},
		{name: "negative clamps to zero", site: "S1", modelID: "CUBE-L", want: 0},
		{name: "unknown model", site: "S1", modelID: "GHOST", want: 0},
		{name: "unknown site", site: "S9", modelID: "CUBE-M", wantErr: ErrSiteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FetchAvailableStock(ctx, tt.site, tt.modelID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryCatalog_FetchProducts(t *testing.T) {
	c := newTestMemoryCatalog(t)

	products, err := c.FetchProducts(context.Background(), "S1", []string{"P-1", "P-404"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Kettle", products["P-1"].Name)
}

func TestMemoryCatalog_SetStock(t *testing.T) {
	c := newTestMemoryCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.SetStock("S1", "CUBE-M", 1))
	n, err := c.FetchAvailableStock(ctx, "S1", "CUBE-M")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.ErrorIs(t, c.SetStock("S9", "CUBE-M", 1), ErrSiteNotFound)
}

func TestMemoryCatalog_CanceledContext(t *testing.T) {
	c := newTestMemoryCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchCompatibleModels(ctx, "S1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryCatalog_Sites(t *testing.T) {
	assert.Equal(t, []string{"S1", "S2"}, newTestMemoryCatalog(t).Sites())
	assert.Empty(t, NewMemoryCatalog(nil).Sites())
}
