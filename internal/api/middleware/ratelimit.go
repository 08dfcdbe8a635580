package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
)

const (
	defaultRateLimit  = 30
	defaultRateWindow = time.Minute
	defaultRatePrefix = "rl"
)

// fixedWindowScript INCR с выставлением TTL окна на первом обращении
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter ограничитель запросов с фиксированным окном в Redis,
// общий для всех экземпляров сервиса
type RateLimiter struct {
	rdb    redis.Scripter
	limit  int64
	window time.Duration
	prefix string
	logger Logger
}

// NewRateLimiter создает ограничитель; некорректные параметры заменяются значениями по умолчанию
func NewRateLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string, logger Logger) *RateLimiter {
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if window <= 0 {
		window = defaultRateWindow
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultRatePrefix
	}

	return &RateLimiter{
		rdb:    rdb,
		limit:  int64(limit),
		window: window,
		prefix: prefix,
		logger: logger,
	}
}

// Middleware отклоняет запросы сверх лимита с 429.
// Если Redis недоступен, запрос пропускается.
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rl.prefix + ":" + clientKey(r)

			count, err := rl.incr(r.Context(), key)
			if err != nil {
				rl.logger.Warn("RateLimiter: redis unavailable, request allowed: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > rl.limit {
				rl.logger.Warn("RateLimiter: limit exceeded for %s (%d/%d)", key, count, rl.limit)
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
				handlers.RespondTooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	return fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Int64()
}

// clientKey первый адрес из X-Forwarded-For или адрес соединения
func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
