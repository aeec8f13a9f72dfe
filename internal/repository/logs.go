package repository

import (
	"context"
	"regexp"

	"github.com/guttosm/box-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditLogStore keeps request logs and recommendation audit entries in the
// MongoDB logs collection. model.LogEntry carries the bson layout.
type AuditLogStore struct {
	collection *mongo.Collection
}

// NewAuditLogStore creates a store over the logs collection of db.
func NewAuditLogStore(db *MongoDB) *AuditLogStore {
	return &AuditLogStore{collection: db.Logs}
}

// Insert writes entries unordered so one bad document does not block the batch.
// Entries must already carry their id and timestamp.
func (s *AuditLogStore) Insert(ctx context.Context, entries ...*model.LogEntry) error {
	switch len(entries) {
	case 0:
		return nil
	case 1:
		_, err := s.collection.InsertOne(ctx, entries[0])
		return err
	}

	docs := make([]interface{}, len(entries))
	for i, e := range entries {
		docs[i] = e
	}
	_, err := s.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Find returns the matching entries, newest first, paged by opts.Limit and opts.Skip.
func (s *AuditLogStore) Find(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	find := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		find.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		find.SetSkip(int64(opts.Skip))
	}

	cursor, err := s.collection.Find(ctx, logFilter(opts), find)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := []model.LogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count ignores paging.
func (s *AuditLogStore) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.collection.CountDocuments(ctx, logFilter(opts))
}

func logFilter(o model.LogQueryOptions) bson.M {
	filter := bson.M{}
	for field, value := range map[string]string{
		"request_id":  o.RequestID,
		"site_id":     o.SiteID,
		"action_type": o.ActionType,
		"level":       o.Level,
		"method":      o.Method,
	} {
		if value != "" {
			filter[field] = value
		}
	}
	if o.Path != "" {
		filter["path"] = bson.M{"$regex": regexp.QuoteMeta(o.Path), "$options": "i"}
	}

	window := bson.M{}
	if o.StartTime != nil {
		window["$gte"] = *o.StartTime
	}
	if o.EndTime != nil {
		window["$lte"] = *o.EndTime
	}
	if len(window) > 0 {
		filter["timestamp"] = window
	}
	return filter
}
