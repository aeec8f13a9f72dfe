package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.FixedZone("BRT", -3*3600))

func newTestLoggingService(store *mocks.MockAuditLogs) *LoggingServiceImpl {
	svc := NewLoggingService(store).(*LoggingServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestLoggingService_CreateLogs(t *testing.T) {
	existingID := primitive.NewObjectID()
	existingTime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		entries   []*model.LogEntry
		storeErr  error
		wantBatch int
		wantErr   bool
	}{
		{
			name: "stamps and writes the batch",
			entries: []*model.LogEntry{
				{Level: "info", ActionType: model.ActionRecommend, SiteID: "S1"},
				{Level: "error", ActionType: model.ActionPackMixed, SiteID: "S1"},
			},
			wantBatch: 2,
		},
		{
			name:      "nil entries are skipped",
			entries:   []*model.LogEntry{nil, {Level: "info"}, nil},
			wantBatch: 1,
		},
		{
			name:    "nothing to write",
			entries: []*model.LogEntry{nil},
		},
		{
			name:    "empty batch",
			entries: nil,
		},
		{
			name:      "keeps caller id and timestamp",
			entries:   []*model.LogEntry{{ID: existingID, Timestamp: existingTime}},
			wantBatch: 1,
		},
		{
			name:      "store failure",
			entries:   []*model.LogEntry{{Level: "info"}},
			storeErr:  errors.New("write concern timeout"),
			wantBatch: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockAuditLogs)
			if tt.wantBatch > 0 {
				store.On("Insert", mock.Anything, mock.MatchedBy(func(batch []*model.LogEntry) bool {
					return len(batch) == tt.wantBatch
				})).Return(tt.storeErr).Once()
			}
			svc := newTestLoggingService(store)

			err := svc.CreateLogs(context.Background(), tt.entries)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.storeErr)
			} else {
				require.NoError(t, err)
			}
			for _, e := range tt.entries {
				if e == nil {
					continue
				}
				assert.False(t, e.ID.IsZero())
				if e.ID == existingID {
					assert.Equal(t, existingTime, e.Timestamp)
				} else {
					assert.Equal(t, fixedNow.UTC(), e.Timestamp)
				}
			}
			store.AssertExpectations(t)
		})
	}
}

func TestLoggingService_QueryLogs(t *testing.T) {
	stored := []model.LogEntry{{Message: "Mixed plan computed", SiteID: "S1", ActionType: model.ActionPackMixed}}

	tests := []struct {
		name      string
		opts      model.LogQueryOptions
		wantLimit int
		storeErr  error
	}{
		{name: "explicit limit is kept", opts: model.LogQueryOptions{SiteID: "S1", Limit: 25}, wantLimit: 25},
		{name: "missing limit is capped", opts: model.LogQueryOptions{SiteID: "S1"}, wantLimit: maxLogQueryLimit},
		{name: "oversized limit is capped", opts: model.LogQueryOptions{Limit: 50000}, wantLimit: maxLogQueryLimit},
		{name: "store failure", opts: model.LogQueryOptions{Limit: 10}, wantLimit: 10, storeErr: errors.New("cursor killed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockAuditLogs)
			want := tt.opts
			want.Limit = tt.wantLimit
			if tt.storeErr != nil {
				store.On("Find", mock.Anything, want).Return(nil, tt.storeErr)
			} else {
				store.On("Find", mock.Anything, want).Return(stored, nil)
			}
			svc := newTestLoggingService(store)

			entries, err := svc.QueryLogs(context.Background(), tt.opts)

			if tt.storeErr != nil {
				assert.ErrorIs(t, err, tt.storeErr)
				assert.Nil(t, entries)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored, entries)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CountLogs(t *testing.T) {
	opts := model.LogQueryOptions{SiteID: "S1", ActionType: model.ActionRecommend}

	t.Run("passes the filter through", func(t *testing.T) {
		store := new(mocks.MockAuditLogs)
		store.On("Count", mock.Anything, opts).Return(int64(12), nil)

		n, err := newTestLoggingService(store).CountLogs(context.Background(), opts)

		require.NoError(t, err)
		assert.Equal(t, int64(12), n)
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(mocks.MockAuditLogs)
		storeErr := errors.New("no primary")
		store.On("Count", mock.Anything, opts).Return(int64(0), storeErr)

		_, err := newTestLoggingService(store).CountLogs(context.Background(), opts)

		assert.ErrorIs(t, err, storeErr)
	})
}
