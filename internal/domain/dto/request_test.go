package dto

import (
	"testing"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestItemsRequest_Validate(t *testing.T) {
	line := model.RequestItem{LengthMM: 10, WidthMM: 10, HeightMM: 10, Quantity: 1}

	tests := []struct {
		name    string
		request ItemsRequest
		wantErr error
	}{
		{
			name:    "single line",
			request: ItemsRequest{Items: []model.RequestItem{line}},
		},
		{
			name:    "line limit is inclusive",
			request: ItemsRequest{Items: make([]model.RequestItem, MaxItemsPerRequest)},
		},
		{
			name:    "nil items",
			request: ItemsRequest{},
			wantErr: ErrEmptyItems,
		},
		{
			name:    "too many lines",
			request: ItemsRequest{Items: make([]model.RequestItem, MaxItemsPerRequest+1)},
			wantErr: ErrTooManyItems,
		},
		{
			name:    "per-line values are not checked here",
			request: ItemsRequest{Items: []model.RequestItem{{Code: "SKU-1"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "field and message",
			err:      &ValidationError{Field: "items", Message: "must not be empty"},
			expected: "items: must not be empty",
		},
		{
			name:     "line limit",
			err:      ErrTooManyItems,
			expected: "items: must not contain more than 200 lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAuditLogQuery_Options(t *testing.T) {
	tests := []struct {
		name      string
		query     AuditLogQuery
		wantLimit int
		wantSkip  int
	}{
		{name: "defaults", query: AuditLogQuery{}, wantLimit: DefaultAuditLogLimit},
		{name: "explicit page", query: AuditLogQuery{Limit: 20, Skip: 40}, wantLimit: 20, wantSkip: 40},
		{name: "limit clamped", query: AuditLogQuery{Limit: MaxAuditLogLimit + 1}, wantLimit: MaxAuditLogLimit},
		{name: "negative skip", query: AuditLogQuery{Limit: 5, Skip: -3}, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.query.Options("S1")
			assert.Equal(t, "S1", opts.SiteID)
			assert.Equal(t, tt.wantLimit, opts.Limit)
			assert.Equal(t, tt.wantSkip, opts.Skip)
		})
	}
}
