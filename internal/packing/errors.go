package packing

import (
	"errors"
	"fmt"

	"github.com/guttosm/box-service/internal/domain/model"
)

// ErrInvalidInput is matched by every validation failure raised before normalization.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes the first offending field of an order.
// Index is -1 when the error concerns the order as a whole.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return e.Field + ": " + e.Reason
	}
	return fmt.Sprintf("items[%d].%s: %s", e.Index, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ValidateItems rejects empty orders and any line with a non-positive dimension or quantity.
func ValidateItems(items []model.RequestItem) error {
	if len(items) == 0 {
		return &ValidationError{Index: -1, Field: "items", Reason: "must not be empty"}
	}
	for i, item := range items {
		switch {
		case item.LengthMM <= 0:
			return &ValidationError{Index: i, Field: "largo_mm", Reason: "must be greater than 0"}
		case item.WidthMM <= 0:
			return &ValidationError{Index: i, Field: "ancho_mm", Reason: "must be greater than 0"}
		case item.HeightMM <= 0:
			return &ValidationError{Index: i, Field: "alto_mm", Reason: "must be greater than 0"}
		case item.Quantity <= 0:
			return &ValidationError{Index: i, Field: "cantidad", Reason: "must be a positive integer"}
		}
	}
	return nil
}
