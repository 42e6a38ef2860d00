package middleware

import (
	"fmt"
	"net/http"
	"time"

	"campsite-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit applies a fixed-window per-user limit backed by Redis. Booking
// submissions are the only write-contention point, so only that route group
// carries it. When Redis is unavailable the limiter is a pass-through; the
// committer's atomic check-and-insert stays correct either way.
func RateLimit(rdb *redis.Client, perMinute int, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil || perMinute <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				// Identity middleware runs first; fall back to remote addr.
				userID = r.RemoteAddr
			}

			key := fmt.Sprintf("ratelimit:booking:%s:%s", userID, time.Now().Format("200601021504"))

			count, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(r.Context(), key, time.Minute)
			}

			if count > int64(perMinute) {
				logger.Warn("Rate limit exceeded",
					zap.String("user_id", userID),
					zap.Int64("count", count),
				)
				utils.ResponseTooManyRequests(w, "Too many booking attempts, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
