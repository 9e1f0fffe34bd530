package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/pkg/redis"
	"orbit-hrms/backend/pkg/response"
)

// RateLimit throttles a route per client IP using a Redis counter window.
// Applied to login to slow down credential guessing. A nil rdb or a Redis
// error fails open, same policy as the blacklist check in Auth.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "Too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
