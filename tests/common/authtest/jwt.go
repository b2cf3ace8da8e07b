//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/pkg/config"
	"points-rewards/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, accountID uuid.UUID, userID int64, email string, role account.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, jwt.WithIssuer(h.cfg.Issuer))
	token, err := service.GenerateToken(accountID, userID, email, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, accountID uuid.UUID, userID int64, email string, role account.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond, jwt.WithIssuer(h.cfg.Issuer))
	token, err := service.GenerateToken(accountID, userID, email, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
