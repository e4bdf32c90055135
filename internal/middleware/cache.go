package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/HotaroAce/CineXerve/internal/config"
)

// captureWriter buffers the response body while forwarding it to the
// client, so a successful response can be stored after the handler
// ran. Bodies over the limit are forwarded but not buffered.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.buf.Len()+len(b) <= cw.limit {
		cw.buf.Write(b)
	} else {
		cw.buf.Reset()
		cw.limit = 0
	}
	return cw.ResponseWriter.Write(b)
}

// Cache returns an Echo middleware that serves GET responses from
// Redis. Only 200 JSON responses are stored, for cfg.TTL, keyed by
// route and query. With a nil client or caching disabled it is a
// pass-through, and Redis errors fall back to the handler.
//
// Seat maps served from this cache can briefly lag the seat store,
// like the in-process seat-status index; neither is authoritative for
// committing a booking.
func Cache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			r := c.Request()
			key := cfg.Prefix + ":" + r.URL.Path
			if q := r.URL.RawQuery; q != "" {
				key += "?" + q
			}
			ctx := r.Context()
			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				// Best effort; an unreachable Redis only disables reuse.
				rdb.Set(ctx, key, cw.buf.Bytes(), cfg.TTL)
			}
			return nil
		}
	}
}
