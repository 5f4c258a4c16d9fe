//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"commerce-ledger/internal/domain/user"
	"commerce-ledger/internal/pkg/config"
	"commerce-ledger/internal/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens with the same secret as the app under test.
type JWTHelper struct {
	secret  []byte
	service *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	access, err := time.ParseDuration(cfg.AccessTokenDuration)
	require.NoError(t, err)
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return &JWTHelper{
		secret:  []byte(cfg.Secret),
		service: jwt.NewService(cfg.Secret, access, refresh),
	}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs an access token that expired a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issued := time.Now().Add(-time.Hour)
	claims := jwt.Claims{
		UserID:    userID,
		Role:      role.String(),
		TokenType: jwt.TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwtlib.NewNumericDate(issued),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(h.secret)
	require.NoError(t, err)
	return token
}
