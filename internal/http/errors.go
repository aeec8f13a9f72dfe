package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/guttosm/box-service/internal/circuitbreaker"
	"github.com/guttosm/box-service/internal/i18n"
	"github.com/guttosm/box-service/internal/packing"
	"github.com/guttosm/box-service/internal/repository"
	"github.com/guttosm/box-service/internal/service"
)

// errorMapping is the HTTP shape of a domain error.
type errorMapping struct {
	status  int
	key     string
	details map[string]string
}

// mapError translates service and repository errors into a status, an i18n key and details.
func mapError(err error) errorMapping {
	var verr *packing.ValidationError
	switch {
	case errors.As(err, &verr):
		field := verr.Field
		if verr.Index >= 0 {
			field = fmt.Sprintf("items[%d].%s", verr.Index, verr.Field)
		}
		return errorMapping{
			status:  http.StatusBadRequest,
			key:     i18n.ErrKeyInvalidItems,
			details: map[string]string{"field": field, "reason": verr.Reason},
		}
	case errors.Is(err, packing.ErrInvalidInput):
		return errorMapping{status: http.StatusBadRequest, key: i18n.ErrKeyInvalidItems}
	case errors.Is(err, service.ErrProductNotFound):
		return errorMapping{
			status:  http.StatusNotFound,
			key:     i18n.ErrKeyProductNotFound,
			details: map[string]string{"reason": err.Error()},
		}
	case errors.Is(err, repository.ErrSiteNotFound):
		return errorMapping{status: http.StatusNotFound, key: i18n.ErrKeySiteNotFound}
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return errorMapping{status: http.StatusServiceUnavailable, key: i18n.ErrKeyServiceNotAvailable}
	case errors.Is(err, repository.ErrCatalogUnavailable):
		return errorMapping{status: http.StatusServiceUnavailable, key: i18n.ErrKeyCatalogUnavailable}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errorMapping{status: http.StatusGatewayTimeout, key: i18n.ErrKeyTimeout}
	default:
		return errorMapping{status: http.StatusInternalServerError, key: i18n.ErrKeyInternalError}
	}
}

func respondError(builder *ResponseBuilder, err error) {
	m := mapError(err)
	builder.ErrorWithDetails(m.status, m.key, err, m.details)
}
