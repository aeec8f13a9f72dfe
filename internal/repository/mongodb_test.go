package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCatalogIndexes(t *testing.T) {
	indexes := catalogIndexes()

	tests := []struct {
		name       string
		collection string
		index      int
		wantName   string
		wantKeys   bson.D
		wantUnique bool
	}{
		{
			name:       "one model per site",
			collection: boxModelsCollection,
			wantName:   "site_model",
			wantKeys:   bson.D{{Key: "site_id", Value: 1}, {Key: "model_id", Value: 1}},
			wantUnique: true,
		},
		{
			name:       "stock counts by state",
			collection: boxStockCollection,
			wantName:   "site_model_state",
			wantKeys:   bson.D{{Key: "site_id", Value: 1}, {Key: "model_id", Value: 1}, {Key: "state", Value: 1}},
		},
		{
			name:       "one product code per site",
			collection: productsCollection,
			wantName:   "site_code",
			wantKeys:   bson.D{{Key: "site_id", Value: 1}, {Key: "code", Value: 1}},
			wantUnique: true,
		},
		{
			name:       "audit query by site and action",
			collection: logsCollection,
			index:      1,
			wantName:   "site_action_time",
			wantKeys:   bson.D{{Key: "site_id", Value: 1}, {Key: "action_type", Value: 1}, {Key: "timestamp", Value: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Greater(t, len(indexes[tt.collection]), tt.index)
			idx := indexes[tt.collection][tt.index]

			assert.Equal(t, tt.wantKeys, idx.Keys)
			require.NotNil(t, idx.Options.Name)
			assert.Equal(t, tt.wantName, *idx.Options.Name)
			if tt.wantUnique {
				require.NotNil(t, idx.Options.Unique)
				assert.True(t, *idx.Options.Unique)
			} else {
				assert.Nil(t, idx.Options.Unique)
			}
		})
	}

	for _, idx := range indexes[logsCollection] {
		assert.Nil(t, idx.Options.ExpireAfterSeconds, "the TTL index belongs to SetLogsTTL")
	}
}

func TestMongoConfig_ClientOptions(t *testing.T) {
	cfg := DefaultMongoConfig()

	opts := cfg.clientOptions("mongodb://localhost:27017")
	require.NotNil(t, opts.MaxPoolSize)
	assert.Equal(t, uint64(50), *opts.MaxPoolSize)
	assert.Equal(t, []string{"zstd", "snappy", "zlib"}, opts.Compressors)
	require.NotNil(t, opts.RetryWrites)
	assert.True(t, *opts.RetryWrites)

	cfg.EnableCompression = false
	assert.Empty(t, cfg.clientOptions("mongodb://localhost:27017").Compressors)
}
