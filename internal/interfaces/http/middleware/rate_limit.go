package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"aurum-pay.backend/pkg/logger"
	"aurum-pay.backend/pkg/redis"
)

var (
	redisIncr   = redis.Incr
	redisExpire = redis.Expire
)

// RateLimitMiddleware applies a fixed-window per-client limit backed by
// Redis. When Redis is unreachable the request is let through.
func RateLimitMiddleware(window time.Duration, maxRequests int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().Unix()/int64(window.Seconds()))

		count, err := redisIncr(ctx, key)
		if err != nil {
			logger.Warn(ctx, fmt.Sprintf("rate limiter unavailable: %v", err))
			c.Next()
			return
		}
		if count == 1 {
			if err := redisExpire(ctx, key, window); err != nil {
				logger.Warn(ctx, fmt.Sprintf("rate limiter expire failed: %v", err))
			}
		}

		if count > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  "error",
				"message": "too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
