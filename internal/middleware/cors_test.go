package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		origin         string
		extra          []string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "preflight from local dashboard",
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "configured extra origin",
			method:         http.MethodPost,
			origin:         "https://ops.example.com",
			extra:          []string{"https://ops.example.com"},
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://ops.example.com",
		},
		{
			name:           "unknown origin is rejected",
			method:         http.MethodPost,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "same-origin request without Origin header",
			method:         http.MethodPost,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(CORS(tt.extra...))
			router.POST("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSConfig_DeduplicatesOrigins(t *testing.T) {
	cfg := CORSConfig("http://localhost:3000", "", "https://a.example.com", "https://a.example.com")

	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://a.example.com"}, cfg.AllowOrigins)
	assert.Contains(t, cfg.AllowHeaders, IdempotencyKeyHeader)
}
