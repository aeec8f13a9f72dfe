package repository

import (
	"testing"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogFilter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name string
		opts model.LogQueryOptions
		want bson.M
	}{
		{name: "empty", opts: model.LogQueryOptions{}, want: bson.M{}},
		{
			name: "site and action",
			opts: model.LogQueryOptions{SiteID: "S1", ActionType: model.ActionRecommend},
			want: bson.M{"site_id": "S1", "action_type": "recommend"},
		},
		{
			name: "path is escaped",
			opts: model.LogQueryOptions{Path: "/api/sites/S1.x"},
			want: bson.M{"path": bson.M{"$regex": `/api/sites/S1\.x`, "$options": "i"}},
		},
		{
			name: "open ended window",
			opts: model.LogQueryOptions{StartTime: &start},
			want: bson.M{"timestamp": bson.M{"$gte": start}},
		},
		{
			name: "closed window",
			opts: model.LogQueryOptions{RequestID: "r", StartTime: &start, EndTime: &end},
			want: bson.M{"request_id": "r", "timestamp": bson.M{"$gte": start, "$lte": end}},
		},
		{
			name: "paging does not filter",
			opts: model.LogQueryOptions{Level: "error", Limit: 10, Skip: 5},
			want: bson.M{"level": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logFilter(tt.opts))
		})
	}
}
