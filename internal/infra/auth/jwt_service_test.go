package auth

import (
	"testing"

	"pairup/config"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	pair, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := svc.ValidateToken(pair.AccessToken, "access")
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.TokenType)
	assert.False(t, accessClaims.ExpiresAt.IsZero())

	refreshClaims, err := svc.ValidateToken(pair.RefreshToken, "refresh")
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc := newTestJWTService(t)

	pair, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Each token is signed with its own secret, so presenting one as the
	// other fails signature verification before the type check.
	_, err = svc.ValidateToken(pair.AccessToken, "refresh")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = svc.ValidateToken(pair.RefreshToken, "access")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	pair, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	tampered := pair.AccessToken + "x"
	_, err = svc.ValidateToken(tampered, "access")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = svc.ValidateToken("not-a-jwt", "access")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "another-access-secret"
	otherCfg.SecretKey.Refresh = "another-refresh-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	pair, err := other.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, "access")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Greater(t, int64(svc.GetRefreshTokenDuration()), int64(0))
}
