//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"newsletter-delivery/internal/domain/user"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, ownerID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(ownerID, role)
	require.NoError(t, err)
	return token
}

// returns a new owner id and an operator token for it
func (h *JWTHelper) NewOperator(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	ownerID := uuid.New()
	return ownerID, h.GenerateToken(t, ownerID, user.RoleOperator)
}
