// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCatalogGateway struct {
	mock.Mock
}

func (m *MockCatalogGateway) FetchCompatibleModels(ctx context.Context, siteID string) ([]model.BoxModel, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BoxModel), args.Error(1)
}

func (m *MockCatalogGateway) FetchAvailableStock(ctx context.Context, siteID, modelID string) (int, error) {
	args := m.Called(ctx, siteID, modelID)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogGateway) FetchProducts(ctx context.Context, siteID string, codes []string) (map[string]model.Product, error) {
	args := m.Called(ctx, siteID, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Product), args.Error(1)
}

type MockAuditLogs struct {
	mock.Mock
}

func (m *MockAuditLogs) Insert(ctx context.Context, entries ...*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditLogs) Find(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockAuditLogs) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
