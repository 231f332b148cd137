package api

import (
	"testing"
	"time"

	"vaultcraft/internal/domain"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func Test_statusCodeFor(t *testing.T) {
	require.Equal(t, 400, statusCodeFor(domain.ErrInvalidAmount))
	require.Equal(t, 400, statusCodeFor(domain.ErrStrategyDivestShortfall))
	require.Equal(t, 403, statusCodeFor(domain.ErrNotEligible))
	require.Equal(t, 404, statusCodeFor(domain.ErrUnknownVault))
	require.Equal(t, 409, statusCodeFor(domain.ErrDuplicateVault))
	require.Equal(t, 409, statusCodeFor(domain.ErrVaultBusy))
	require.Equal(t, 402, statusCodeFor(domain.ErrInsufficientBalance))
}

func Test_parseAccountJWT(t *testing.T) {
	const secret = "test-secret"

	t.Run("happy path", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "alice",
			"iat": time.Now().UTC().Unix(),
			"exp": time.Now().UTC().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		claims, err := parseAccountJWT(signed, secret)
		require.NoError(t, err)
		require.Equal(t, "alice", claims.Subject)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "alice",
			"exp": time.Now().UTC().Add(-time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = parseAccountJWT(signed, secret)
		require.Error(t, err)
	})

	t.Run("rejects the wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "alice",
			"exp": time.Now().UTC().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = parseAccountJWT(signed, secret)
		require.Error(t, err)
	})
}
