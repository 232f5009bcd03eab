package middleware

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"meshguard_api/internal/infrastructure/metrics"
	"meshguard_api/internal/infrastructure/ratelimit"
	"meshguard_api/pkg"

	"github.com/gin-gonic/gin"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Too many requests, try again later", http.StatusTooManyRequests)

// RateLimit limits requests per client IP and route. A failing store lets the
// request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		route := c.FullPath()
		key := route + "|" + c.ClientIP()

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Printf("[ratelimit][middleware] store error, allowing route=%s err=%v", route, err)
			c.Next()
			return
		}
		if !allowed {
			metrics.RateLimited.WithLabelValues(route).Inc()
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
