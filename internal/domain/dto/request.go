// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model; per-line item checks
// belong to the packing package and run after product codes are resolved.
package dto

import (
	"fmt"
	"time"

	"github.com/guttosm/box-service/internal/domain/model"
)

// MaxItemsPerRequest bounds the number of order lines accepted in one request.
// Real shipping orders stay around 25 lines; the margin covers orders that
// list every component of a kit as its own line.
const MaxItemsPerRequest = 200

// ItemsRequest is the JSON body of every recommendation endpoint.
//
// @Description Order lines to pack. Lines carrying only codigo are resolved against the site's product catalog.
// @Example {"items": [{"codigo": "SKU-001", "largo_mm": 300, "ancho_mm": 200, "alto_mm": 150, "cantidad": 4}]}
type ItemsRequest struct {
	Items []model.RequestItem `json:"items" binding:"required"`
} // @name ItemsRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrEmptyItems is returned when the request has no order lines.
	ErrEmptyItems = &ValidationError{
		Field:   "items",
		Message: "must not be empty",
	}
	// ErrTooManyItems is returned when the request exceeds MaxItemsPerRequest lines.
	ErrTooManyItems = &ValidationError{
		Field:   "items",
		Message: fmt.Sprintf("must not contain more than %d lines", MaxItemsPerRequest),
	}
)

// Validate checks the envelope only: non-empty and within the line limit.
func (r *ItemsRequest) Validate() error {
	switch {
	case len(r.Items) == 0:
		return ErrEmptyItems
	case len(r.Items) > MaxItemsPerRequest:
		return ErrTooManyItems
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Audit log page bounds.
const (
	DefaultAuditLogLimit = 50
	MaxAuditLogLimit     = 500
)

// AuditLogQuery is the query string of the audit log listing.
type AuditLogQuery struct {
	Action    string     `form:"action"`
	Level     string     `form:"level"`
	RequestID string     `form:"request_id"`
	From      *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit"`
	Skip      int        `form:"skip"`
}

// Options turns the query into store filters for siteID, clamping the page size.
func (q *AuditLogQuery) Options(siteID string) model.LogQueryOptions {
	limit := q.Limit
	switch {
	case limit <= 0:
		limit = DefaultAuditLogLimit
	case limit > MaxAuditLogLimit:
		limit = MaxAuditLogLimit
	}
	skip := q.Skip
	if skip < 0 {
		skip = 0
	}
	return model.LogQueryOptions{
		SiteID:     siteID,
		ActionType: q.Action,
		Level:      q.Level,
		RequestID:  q.RequestID,
		StartTime:  q.From,
		EndTime:    q.To,
		Limit:      limit,
		Skip:       skip,
	}
}
