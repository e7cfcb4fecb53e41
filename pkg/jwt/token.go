package jwtPkg

import (
	"GlamoraBackend/internal/entity"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
	UserLocalsKey     = "user"
)

var (
	ErrEmptyHeader      = errors.New("empty Authorization header")
	ErrInvalidFormat    = errors.New("invalid Authorization format")
	ErrSecretNotSet     = errors.New("JWT secret not configured")
	ErrMissingClaims    = errors.New("token claims are missing required fields")
	ErrUnexpectedMethod = errors.New("unexpected signing method")
)

// Sign issues an HS256 token carrying data. It exists for operators and tests;
// the service itself only verifies tokens.
func Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	secret := os.Getenv(AccessTokenSecret)
	if secret == "" {
		return "", 0, ErrSecretNotSet
	}

	expiredAt := time.Now().Add(expiresIn).Unix()

	claims := jwt.MapClaims{}
	for k, v := range data {
		claims[k] = v
	}
	claims["exp"] = expiredAt

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}

	return token, expiredAt, nil
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	log := logrus.WithField("func", "VerifyTokenHeader")

	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil, ErrEmptyHeader
	}

	accessToken, ok := strings.CutPrefix(header, "Bearer ")
	accessToken = strings.TrimSpace(accessToken)
	if !ok || accessToken == "" {
		return nil, ErrInvalidFormat
	}

	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		log.Errorf("%s environment variable not set", secretEnvKey)
		return nil, ErrSecretNotSet
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedMethod, token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		log.WithError(err).Debug("Failed to parse JWT token")
		return nil, err
	}

	return token, nil
}

// UserFromClaims reads the operator identity carried by an access token.
func UserFromClaims(claims jwt.MapClaims) (entity.UserLoginData, error) {
	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)

	if id == "" || email == "" {
		return entity.UserLoginData{}, ErrMissingClaims
	}

	return entity.UserLoginData{
		ID:       id,
		Email:    email,
		Username: username,
	}, nil
}

func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	user, ok := c.Locals(UserLocalsKey).(entity.UserLoginData)
	if !ok {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
