package ratelimit

import (
	"context"
	"fmt"
	"math"

	"refspring/internal/apierrors"
	fraudprocessor "refspring/internal/fraud/processor"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/gin-gonic/gin"
)

// Reporter hashes client identities and records throttled ones
type Reporter interface {
	HashIdentity(rawIP string) string
	LogSuspiciousActivity(ctx context.Context, activity fraudprocessor.Activity)
}

// Middleware throttles requests per hashed client identity. A throttled
// request gets 429 and is recorded as a rate_limit suspicious activity.
func Middleware(l *Limiter, reporter Reporter, logger *observability.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ipHash := reporter.HashIdentity(observability.GetRealClientIP(c))

		if l.Allow(ipHash) {
			c.Next()
			return
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "ip_hash", Value: ipHash},
			observability.Field{Key: "path", Value: c.FullPath()},
		)
		logger.Warn(ctx, "rate limit exceeded")

		reporter.LogSuspiciousActivity(ctx, fraudprocessor.Activity{
			Type:      store.ActivityTypeRateLimit,
			Severity:  store.SeverityMedium,
			IPHash:    ipHash,
			UserAgent: observability.GetRealUserAgent(c),
			Metadata:  store.JSONB{"path": c.FullPath()},
		})

		c.Header("Retry-After", fmt.Sprintf("%d", int(math.Ceil(l.RetryAfter().Seconds()))))
		apierrors.TooManyRequests(c, "Too many requests, slow down")
	}
}
