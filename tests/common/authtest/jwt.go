//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lounge-engine/internal/pkg/config"
	"lounge-engine/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID, role, branchID string) string {
	t.Helper()
	token, err := jwt.Sign(h.cfg.Secret, staffID, role, branchID, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID, role, branchID string) string {
	t.Helper()
	token, err := jwt.Sign(h.cfg.Secret, staffID, role, branchID, -time.Minute)
	require.NoError(t, err)
	return token
}
