package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/logger"
	"github.com/rs/zerolog"
)

// probePaths are logged at debug and never persisted.
var probePaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
}

// RequestLogger writes one zerolog line per request and, when w is not nil,
// queues a persisted entry for every non-probe request.
func RequestLogger(w AuditWriter) gin.HandlerFunc {
	persist := !isNilWriter(w)

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		probe := probePaths[path]

		level := levelForStatus(status)
		if probe && level < zerolog.WarnLevel {
			level = zerolog.DebugLevel
		}

		log := logger.Ctx(c.Request.Context(), c.Param(SiteIDParam))
		log.WithLevel(level).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status_code", status).
			Dur("elapsed", elapsed).
			Str("ip", c.ClientIP()).
			Msg("HTTP request")

		if !persist || probe {
			return
		}
		w.Log(&model.LogEntry{
			Timestamp:  start.UTC(),
			Level:      levelForStatus(status).String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			SiteID:     c.Param(SiteIDParam),
			Method:     c.Request.Method,
			Path:       path,
			StatusCode: status,
			Duration:   elapsed.Milliseconds(),
			IP:         c.ClientIP(),
		})
	}
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
