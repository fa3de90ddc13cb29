//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"newsletter-delivery/internal/domain/user"
	"newsletter-delivery/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-newsletter-delivery"

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)
	ownerID := uuid.New()

	token, err := svc.GenerateToken(ownerID, user.RoleOperator)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	got, err := claims.OwnerID()
	require.NoError(t, err)
	assert.Equal(t, ownerID, got)
	assert.Equal(t, "operator", claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	ownerID := uuid.New()

	t.Run("期限切れ", func(t *testing.T) {
		svc := jwt.NewService(secret, -time.Minute)
		token, err := svc.GenerateToken(ownerID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("別の鍵で署名", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Hour)
		token, err := other.GenerateToken(ownerID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("issuer不一致", func(t *testing.T) {
		claims := jwt.Claims{
			Role: "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				Subject:   ownerID.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("壊れたトークン", func(t *testing.T) {
		_, err := jwt.NewService(secret, time.Hour).ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestClaims_OwnerID(t *testing.T) {
	claims := jwt.Claims{RegisteredClaims: gojwt.RegisteredClaims{Subject: "not-a-uuid"}}
	_, err := claims.OwnerID()
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
