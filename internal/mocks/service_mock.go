// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Snapshot(ctx context.Context, siteID string) (model.CatalogSnapshot, error) {
	args := m.Called(ctx, siteID)
	return args.Get(0).(model.CatalogSnapshot), args.Error(1)
}

func (m *MockCatalogService) Products(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error) {
	args := m.Called(ctx, siteID, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Product), args.Error(1)
}

func (m *MockCatalogService) Invalidate(siteID string) {
	m.Called(siteID)
}

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, siteID string, items []model.RequestItem) (model.RecommendationResult, error) {
	args := m.Called(ctx, siteID, items)
	return args.Get(0).(model.RecommendationResult), args.Error(1)
}

func (m *MockRecommendationService) PackMixed(ctx context.Context, siteID string, items []model.RequestItem) (model.MixedResult, error) {
	args := m.Called(ctx, siteID, items)
	return args.Get(0).(model.MixedResult), args.Error(1)
}

func (m *MockRecommendationService) Evaluate(ctx context.Context, siteID string, items []model.RequestItem) (model.EvaluationResult, error) {
	args := m.Called(ctx, siteID, items)
	return args.Get(0).(model.EvaluationResult), args.Error(1)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
