package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ventia/ventia/internal/config"
)

const (
	requestsPerSecond = 20
	burstSize         = 40
)

// Limiter throttles by remote address, preferring the shared redis bucket
// and falling back to the in-process one.
type Limiter struct {
	bucket *TokenBucket
	local  *Local
	log    *zap.Logger
}

func NewLimiter(cfg config.Config, log *zap.Logger) *Limiter {
	l := &Limiter{
		local: NewLocal(requestsPerSecond, burstSize),
		log:   log.Named("ratelimit"),
	}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		l.bucket = NewTokenBucket(client)
	}
	return l
}

func (l *Limiter) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		if l.bucket != nil {
			result, err := l.bucket.Allow(c.Request.Context(), key, requestsPerSecond, burstSize)
			if err == nil {
				if !result.Allowed {
					c.Header("Retry-After", fmt.Sprintf("%.0f", result.RetryAfter.Seconds()))
					c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "too many requests"})
					return
				}
				c.Next()
				return
			}
			l.log.Warn("redis rate limit unavailable, using local bucket", zap.Error(err))
		}

		if !l.local.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "too many requests"})
			return
		}
		c.Next()
	}
}

var Module = fx.Module("ratelimit", fx.Provide(NewLimiter))
