package repository

import "errors"

var (
	// ErrCatalogUnavailable is returned when the catalog store cannot be reached
	// or its circuit breaker is open.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrSiteNotFound is returned by gateways that know the full set of sites
	// when asked about one they do not hold.
	ErrSiteNotFound = errors.New("site not found")
)
