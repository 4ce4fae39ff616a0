package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.aira.dev/staffing/config"
)

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestNewJWTAuthenticator(t *testing.T) {
	_, err := NewJWTAuthenticator("short")
	assert.Error(t, err)

	_, err = NewJWTAuthenticator(testSecret)
	assert.NoError(t, err)
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	auth, err := NewJWTAuthenticator(testSecret)
	require.NoError(t, err)

	token, err := auth.NewToken("ops", time.Hour)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)

	expired, err := auth.NewToken("ops", -time.Hour)
	require.NoError(t, err)
	_, err = auth.ValidateToken(ctx, expired)
	assert.Error(t, err)

	other, err := NewJWTAuthenticator("another-secret-entirely")
	require.NoError(t, err)
	foreign, err := other.NewToken("ops", time.Hour)
	require.NoError(t, err)
	_, err = auth.ValidateToken(ctx, foreign)
	assert.Error(t, err, "signed with another secret")

	noAud := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := noAud.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = auth.ValidateToken(ctx, s)
	assert.Error(t, err, "missing audience")

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "ops",
		Audience: jwt.ClaimStrings{apiAudience},
	})
	s, err = noExp.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = auth.ValidateToken(ctx, s)
	assert.Error(t, err, "missing expiration")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{apiAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = auth.ValidateToken(ctx, none)
	assert.Error(t, err, "unsigned token")
}

func TestAuthMiddleware(t *testing.T) {
	srv := testServer(t, config.ServerConfig{JWTSecret: testSecret}, &fakeSource{}, nil)

	rec := do(srv, http.MethodGet, "/api/v1/roster/pool?month=5", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/roster/pool?month=5", "", bearer("not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/roster/pool?month=5", "",
		http.Header{"Authorization": []string{"Basic dXNlcjpwYXNz"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := srv.auth.NewToken("ops", time.Hour)
	require.NoError(t, err)

	rec = do(srv, http.MethodGet, "/api/v1/roster/pool?month=5", "", bearer(token))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(srv, http.MethodPost, "/api/v1/proposals", `{"scale":1,"month":5}`, bearer(token))
	assert.Equal(t, http.StatusOK, rec.Code)

	// health checks stay open
	rec = do(srv, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServerRejectsShortSecret(t *testing.T) {
	_, err := NewServer(context.Background(), nil, config.ServerConfig{JWTSecret: "short"}, nil, nil, nil)
	assert.Error(t, err)
}
