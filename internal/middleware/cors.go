package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// defaultCORSOrigins are always allowed so the local dashboard keeps working.
var defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// CORS returns a gin-contrib/cors middleware allowing the default local
// origins plus extraOrigins. Empty entries are ignored.
func CORS(extraOrigins ...string) gin.HandlerFunc {
	return cors.New(CORSConfig(extraOrigins...))
}

// CORSConfig builds the cors.Config used by CORS.
func CORSConfig(extraOrigins ...string) cors.Config {
	origins := append([]string(nil), defaultCORSOrigins...)
	seen := make(map[string]bool, len(origins)+len(extraOrigins))
	for _, o := range origins {
		seen[o] = true
	}
	for _, o := range extraOrigins {
		if o != "" && !seen[o] {
			seen[o] = true
			origins = append(origins, o)
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Accept-Encoding", IdempotencyKeyHeader, RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-Idempotency-Replayed"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
}
