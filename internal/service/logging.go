package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxLogQueryLimit caps a single read so an unbounded query cannot pull the
// whole collection.
const maxLogQueryLimit = 1000

// LoggingService persists request logs and recommendation audit entries.
type LoggingService interface {
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl stamps entries and hands them to an AuditLogs store.
type LoggingServiceImpl struct {
	store repository.AuditLogs
	now   func() time.Time
}

// NewLoggingService creates a logging service over store.
func NewLoggingService(store repository.AuditLogs) LoggingService {
	return &LoggingServiceImpl{
		store: store,
		now:   time.Now,
	}
}

// CreateLogs stores entries in one write. Nil entries are skipped; a missing
// id or timestamp is filled in on the caller's entry.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		s.stamp(e)
		batch = append(batch, e)
	}
	if len(batch) == 0 {
		return nil
	}
	if err := s.store.Insert(ctx, batch...); err != nil {
		return fmt.Errorf("store %d log entries: %w", len(batch), err)
	}
	return nil
}

// QueryLogs returns entries newest first. A missing or oversized limit is
// replaced by maxLogQueryLimit.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	if opts.Limit <= 0 || opts.Limit > maxLogQueryLimit {
		opts.Limit = maxLogQueryLimit
	}
	entries, err := s.store.Find(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("query log entries: %w", err)
	}
	return entries, nil
}

// CountLogs counts entries matching opts, ignoring paging.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	n, err := s.store.Count(ctx, opts)
	if err != nil {
		return 0, fmt.Errorf("count log entries: %w", err)
	}
	return n, nil
}

func (s *LoggingServiceImpl) stamp(e *model.LogEntry) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now().UTC()
	}
}
