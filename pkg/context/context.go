package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const (
	RequestIDKey = "request_id"

	// fiberRequestIDKey is where the request id middleware stores the id.
	fiberRequestIDKey = "X-Request-ID"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx derives a service context from the request: the fiber user
// context as parent plus the request id.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(fiberRequestIDKey).(string)
	if !ok || requestID == "" {
		requestID = c.Get(fiberRequestIDKey)
	}
	if requestID == "" {
		requestID = "unknown"
	}

	return WithRequestID(c.UserContext(), requestID)
}
