package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/staynest/staynest-api/internal/config"
)

// cacheEntry is the JSON payload stored in Redis for a cached response.
type cacheEntry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter buffers the response body while forwarding it to the
// client, so a successful response can be written to the cache after the
// handler returns.  Bodies beyond limit are forwarded but not buffered.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int
	limit  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.size+len(b) <= cw.limit {
		cw.buf.Write(b)
	}
	cw.size += len(b)
	return cw.ResponseWriter.Write(b)
}

// cacheKey builds a stable key from the route and raw query.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// Cache returns a middleware serving GET responses from Redis for the
// configured TTL.  Only 200 responses within the size limit are stored.
// Entries expire on their own; an owner edit can therefore be served
// stale from the public routes for at most one TTL.  A nil client or a
// disabled config turns the middleware into a passthrough.
func Cache(rdb *redis.Client, cfg config.CacheConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if rdb == nil || !cfg.Enabled {
			return next
		}
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				var ent cacheEntry
				if json.Unmarshal(raw, &ent) == nil && ent.Status != 0 {
					return c.Blob(ent.Status, ent.ContentType, ent.Body)
				}
			}

			cw := &captureWriter{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          cfg.MaxBodyBytes,
			}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && cw.size <= cfg.MaxBodyBytes {
				ent := cacheEntry{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				}
				if raw, err := json.Marshal(ent); err == nil {
					// Best effort; a failed SET just means no cache hit next time.
					rdb.Set(c.Request().Context(), key, raw, cfg.TTL)
				}
			}
			return nil
		}
	}
}
