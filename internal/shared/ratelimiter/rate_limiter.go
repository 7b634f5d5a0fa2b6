// Package ratelimiter provides the request rate limiting middleware.
package ratelimiter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Middleware rejects requests with 429 once the shared token bucket is
// exhausted. The limiter never blocks: a server must answer, not sleep.
func Middleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
