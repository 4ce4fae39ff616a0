package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"go.ntppool.org/common/logger"
)

const (
	apiAudience  = "aira-api"
	claimsKey    = "jwt_claims"
	minSecretLen = 16
)

// JWTClaims represents the expected JWT claims structure
type JWTClaims struct {
	jwt.RegisteredClaims
}

// JWTAuthenticator validates HS256 bearer tokens signed with a shared secret
type JWTAuthenticator struct {
	key []byte
}

// NewJWTAuthenticator returns an authenticator for secret
func NewJWTAuthenticator(secret string) (*JWTAuthenticator, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLen)
	}
	return &JWTAuthenticator{key: []byte(secret)}, nil
}

// NewToken signs a token for subject that expires after ttl
func (j *JWTAuthenticator) NewToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{apiAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-30 * time.Second)),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.key)
}

// ValidateToken validates a JWT token and returns the claims
func (j *JWTAuthenticator) ValidateToken(ctx context.Context, tokenString string) (*JWTClaims, error) {
	log := logger.FromContext(ctx)

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{},
		func(*jwt.Token) (any, error) { return j.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(apiAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		log.DebugContext(ctx, "JWT token parsing failed", "error", err.Error())
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// Middleware rejects requests without a valid bearer token
func (j *JWTAuthenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token required")
			}

			claims, err := j.ValidateToken(ctx, tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}
