package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subwatch-inc/subwatch/internal/infrastructure/ratelimit"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
	"github.com/subwatch-inc/subwatch/internal/shared/utils"
)

// RateLimit enforces the per-client request budget keyed by client IP.
// A rate limiter backend failure lets the request through; blocking all
// traffic because redis is down is worse than briefly not limiting.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
