package middleware

import (
	jwtPkg "GlamoraBackend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const unauthorizedMessage = "Unauthorized, access token invalid or expired"

// NewTokenMiddleware guards operator endpoints with an HS256 bearer token and
// stores the caller in ctx.Locals("user").
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	fields := logrus.Fields{
		"request_id": m.GetRequestID(ctx),
		"path":       ctx.Path(),
		"method":     ctx.Method(),
		"client_ip":  ctx.IP(),
	}

	userToken, err := jwtPkg.VerifyTokenHeader(ctx, jwtPkg.AccessTokenSecret)
	if err != nil {
		fields["error"] = err.Error()
		m.log.WithFields(fields).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": unauthorizedMessage,
		})
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		m.log.WithFields(fields).Warn("Invalid token claims")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": unauthorizedMessage,
		})
	}

	user, err := jwtPkg.UserFromClaims(claims)
	if err != nil {
		fields["error"] = err.Error()
		m.log.WithFields(fields).Warn("Token claims check")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": unauthorizedMessage,
		})
	}

	ctx.Locals(jwtPkg.UserLocalsKey, user)

	fields["user_id"] = user.ID
	m.log.WithFields(fields).Debug("Authentication successful")
	return ctx.Next()
}
