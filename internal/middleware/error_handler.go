package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/internal/domain/dto"
	"github.com/guttosm/box-service/internal/i18n"
	"github.com/guttosm/box-service/internal/logger"
	"github.com/rs/zerolog"
)

// ErrorHandler logs the errors handlers attached to the context. Client
// errors (4xx) log at warn, everything else at error. A handler that
// attached an error but wrote nothing gets a 500 envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		written := c.Writer.Written()
		status := http.StatusInternalServerError
		if written {
			status = c.Writer.Status()
		}

		level := zerolog.ErrorLevel
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}

		requestID := GetRequestID(c)
		log := logger.ForSite(c.Param(SiteIDParam))
		log.WithLevel(level).
			Str("request_id", requestID).
			Str("route", c.FullPath()).
			Str("method", c.Request.Method).
			Int("status_code", status).
			Str("error", c.Errors.Last().Error()).
			Strs("errors", c.Errors.Errors()).
			Msg("Request failed")

		if !written {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(status, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
