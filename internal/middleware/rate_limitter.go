package middleware

import (
	"GlamoraBackend/pkg/response"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var (
	ErrTooManyRequests = response.NewError(http.StatusTooManyRequests, "too many requests")
)

const limiterIdleTTL = 10 * time.Minute

// rateLimiter keeps one token bucket per client IP. Buckets of clients that
// stay quiet for limiterIdleTTL are evicted.
type rateLimiter struct {
	bucket    *cache.Cache
	rate      rate.Limit
	burstSize int
}

func newRateLimiter(reqRate rate.Limit, burstSize int) *rateLimiter {
	return &rateLimiter{
		bucket:    cache.New(limiterIdleTTL, limiterIdleTTL),
		rate:      reqRate,
		burstSize: burstSize,
	}
}

func (r *rateLimiter) GetLimiterFrom(ip string) *rate.Limiter {
	if l, ok := r.bucket.Get(ip); ok {
		r.bucket.SetDefault(ip, l)
		return l.(*rate.Limiter)
	}

	l := rate.NewLimiter(r.rate, r.burstSize)
	if err := r.bucket.Add(ip, l, cache.DefaultExpiration); err != nil {
		// another request for this ip won the race
		if existing, ok := r.bucket.Get(ip); ok {
			return existing.(*rate.Limiter)
		}
	}
	return l
}

func (m *middleware) NewRateLimiter(ctx *fiber.Ctx) error {
	clientIP := ctx.IP()
	limiter := m.rateLimitter.GetLimiterFrom(clientIP)

	if !limiter.Allow() {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"ip":         clientIP,
			"path":       ctx.Path(),
		}).Warn("Too many requests")
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": ErrTooManyRequests.Error(),
		})
	}

	return ctx.Next()
}
