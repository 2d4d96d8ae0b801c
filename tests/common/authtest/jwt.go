//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/pkg/config"
	"room-reservation-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// NewActorToken mints a token for a fresh actor and returns both.
func (h *JWTHelper) NewActorToken(t *testing.T, role user.Role) (user.Actor, string) {
	t.Helper()
	actor, err := user.NewActor(uuid.New(), role)
	require.NoError(t, err)
	return actor, h.GenerateToken(t, actor.ID, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}
