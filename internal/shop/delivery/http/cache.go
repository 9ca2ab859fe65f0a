package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fixhub/repairshop/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	DefaultTTL      time.Duration
	CacheableStatus []int
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      5 * time.Minute,
		CacheableStatus: []int{200, 404},
	}
}

// cachingWriter buffers the response so a cacheable body can be stored
// after the handler runs.
type cachingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *cachingWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cachingWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}

// CacheMiddleware caches GET responses in Redis. With a nil client it is a
// pass-through, so caching stays optional. Only the unauthenticated catalog
// reads go through it; entity mutations under /customers never do.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if redisClient == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			cacheKey := generateCacheKey(r)
			ctx := r.Context()

			cached, err := redisClient.Get(ctx, cacheKey).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Logger.Debug().
					Str("path", r.URL.Path).
					Str("cache_key", cacheKey).
					Msg("Cache hit")

				w.Header().Set("X-Cache", "HIT")
				w.Header().Set("Content-Type", "application/json")
				w.Write(cached)
				return
			}

			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Msg("Cache miss")

			cw := &cachingWriter{ResponseWriter: w, statusCode: http.StatusOK}
			cw.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(cw, r)

			if !isStatusCacheable(cw.statusCode, config.CacheableStatus) {
				return
			}

			if err := redisClient.Set(ctx, cacheKey, cw.body.Bytes(), config.DefaultTTL).Err(); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
				return
			}

			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Dur("ttl", config.DefaultTTL).
				Int("size", cw.body.Len()).
				Msg("Response cached")
		}
	}
}

// generateCacheKey generates a unique cache key for the request
func generateCacheKey(r *http.Request) string {
	keyComponents := fmt.Sprintf("%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

// isStatusCacheable checks if status code is cacheable
func isStatusCacheable(status int, cacheableStatus []int) bool {
	for _, s := range cacheableStatus {
		if s == status {
			return true
		}
	}
	return false
}
