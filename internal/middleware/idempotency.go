package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/internal/domain/dto"
	"github.com/guttosm/box-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a response stays replayable.
	IdempotencyKeyTTL = 5 * time.Minute
	// idempotencyReplayedHeader marks replayed responses.
	idempotencyReplayedHeader = "X-Idempotency-Replayed"
)

type cachedResponse struct {
	BodyHash    string
	StatusCode  int
	ContentType string
	Body        []byte
	Timestamp   time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	Enabled bool
}

// DefaultIdempotencyConfig returns an enabled config with a five minute replay window.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL, defaultIdempotencyEntries),
		Enabled: true,
	}
}

// Idempotency replays the stored 2xx response of a POST carrying the same
// Idempotency-Key and path within the replay window. Recommendations depend
// on live stock, so a replay returns the plan computed the first time. Reusing
// a key on the same path with a different body is rejected with 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		slot, bodyHash, err := requestFingerprint(key, c.Request)
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}

		if cached, ok := cfg.Cache.Get(slot); ok {
			if cached.BodyHash != bodyHash {
				message := i18n.GetTranslator().Translate(i18n.ErrKeyConflict, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusConflict, dto.NewError(dto.ErrCodeConflict, message).
					WithRequestID(GetRequestID(c)).
					WithDetail("header", IdempotencyKeyHeader))
				return
			}
			c.Header(idempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &capturingWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			cfg.Cache.Set(slot, &cachedResponse{
				BodyHash:    bodyHash,
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			})
		}
	}
}

// requestFingerprint returns the replay slot, a hash of key, method and path,
// and a hash of the body. The body is restored so handlers can still bind it.
func requestFingerprint(idempotencyKey string, req *http.Request) (slot, bodyHash string, err error) {
	slotHash := sha256.New()
	for _, part := range []string{idempotencyKey, req.Method, req.URL.Path} {
		slotHash.Write([]byte(part))
		slotHash.Write([]byte{0})
	}

	var body []byte
	if req.Body != nil {
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return "", "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	sum := sha256.Sum256(body)

	return hex.EncodeToString(slotHash.Sum(nil)), hex.EncodeToString(sum[:]), nil
}

// capturingWriter tees the response body for replay.
type capturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
