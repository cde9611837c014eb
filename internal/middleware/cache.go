package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/labtrack/labtrack/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	TTL time.Duration

	// Paths restricts caching to an exact-path allowlist. Empty means
	// every GET is cacheable, which is only safe when no GET response
	// depends on the caller's identity.
	Paths []string
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{TTL: 30 * time.Second}
}

// cacheRecorder buffers a response so it can be stored after serving
type cacheRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (rec *cacheRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *cacheRecorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

// Cache caches successful GET responses in Redis. A nil client disables
// caching entirely; read-side failures fall through to the handler so a
// missing Redis never fails a request.
func Cache(client *redis.Client, config CacheConfig) mux.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(config.Paths))
	for _, p := range config.Paths {
		allowed[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}
			if len(allowed) > 0 {
				if _, ok := allowed[r.URL.Path]; !ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			key := cacheKey(r)
			ctx := r.Context()

			if cached, err := client.Get(ctx, key).Bytes(); err == nil && len(cached) > 0 {
				logger.Logger.Debug().
					Str("path", r.URL.Path).
					Str("cache_key", key).
					Msg("Cache hit")

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(cached)
				return
			}

			rec := &cacheRecorder{ResponseWriter: w, status: http.StatusOK}
			rec.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK {
				if err := client.Set(context.WithoutCancel(ctx), key, rec.body.Bytes(), config.TTL).Err(); err != nil {
					logger.Logger.Warn().
						Err(err).
						Str("cache_key", key).
						Msg("Failed to cache response")
				}
			}
		})
	}
}

func cacheKey(r *http.Request) string {
	components := fmt.Sprintf("%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
	)

	hash := sha256.Sum256([]byte(components))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}
