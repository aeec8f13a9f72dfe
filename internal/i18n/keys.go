// Package i18n provides internationalization support for the box service.
package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyInvalidItems covers every per-line validation failure; the
	// offending field is reported in the response details.
	ErrKeyInvalidItems = "error.validation.items"
	// ErrKeyTooManyItems is returned when an order exceeds the line limit.
	ErrKeyTooManyItems        = "error.validation.too_many_items"
	ErrKeyProductNotFound     = "error.product_not_found"
	ErrKeySiteNotFound        = "error.site_not_found"
	ErrKeyCatalogUnavailable  = "error.catalog_unavailable"
	ErrKeyServiceNotAvailable = "error.service_unavailable"
)

// Success message translation keys.
const (
	SuccessKeyCacheInvalidated = "success.cache_invalidated"
)
