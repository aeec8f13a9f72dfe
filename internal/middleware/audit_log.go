package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/internal/domain/model"
)

// SiteIDParam is the route parameter carrying the site id.
const SiteIDParam = "site_id"

// AuditWriter accepts log entries for persistence without blocking the caller.
// *AsyncLogger implements it.
type AuditWriter interface {
	Log(entry *model.LogEntry) bool
}

// AuditLog records a successful recommendation action for the current request.
// A nil writer disables auditing.
func AuditLog(w AuditWriter, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if isNilWriter(w) {
		return
	}
	w.Log(newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed recommendation action for the current request.
func AuditLogError(w AuditWriter, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if isNilWriter(w) {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	w.Log(entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		SiteID:     c.Param(SiteIDParam),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		ActionType: actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}

func isNilWriter(w AuditWriter) bool {
	if w == nil {
		return true
	}
	al, ok := w.(*AsyncLogger)
	return ok && al == nil
}
