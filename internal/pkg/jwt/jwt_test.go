//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	id := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(id, user.RoleOperator)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.UserID)
		assert.Equal(t, "operator", claims.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(id, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken(id, user.RoleViewer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
