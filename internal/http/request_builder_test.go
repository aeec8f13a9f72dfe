package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/internal/domain/dto"
	"github.com/guttosm/box-service/internal/i18n"
	"github.com/guttosm/box-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseBuilder(t *testing.T) {
	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		verify         func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success envelope",
			handler: func(c *gin.Context) {
				NewResponseBuilder(c).SuccessOK(gin.H{"ok": true})
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.True(t, decodeData[map[string]bool](t, w)["ok"])
			},
		},
		{
			name: "error envelope with details and locale",
			handler: func(c *gin.Context) {
				NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidItems, errors.New("bad"),
					map[string]string{"field": "items[0].cantidad"})
			},
			expectedStatus: http.StatusBadRequest,
			verify: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Equal(t, "items[0].cantidad", resp.Details["field"])
				assert.Equal(t, i18n.GetTranslator().Translate(i18n.ErrKeyInvalidItems, "es"), resp.Message)
				assert.Equal(t, "req-1", resp.RequestID)
			},
		},
		{
			name: "pooled envelope does not leak details",
			handler: func(c *gin.Context) {
				b := NewResponseBuilder(c)
				b.ErrorWithDetails(http.StatusConflict, i18n.ErrKeyConflict, nil, map[string]string{"x": "y"})
			},
			expectedStatus: http.StatusConflict,
			verify: func(t *testing.T, _ *httptest.ResponseRecorder) {
				resp := errorEnvelopes.get()
				defer errorEnvelopes.put(resp)
				assert.Nil(t, resp.Details)
				assert.Empty(t, resp.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.RequestID())
			router.GET("/", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-1")
			req.Header.Set("Accept-Language", "es")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			tt.verify(t, w)
		})
	}
}
