package auth

import (
	"testing"
	"time"

	"pairup/config"
	domainerrors "pairup/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgeTokenService(t *testing.T) *ageTokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-age-secret"
	cfg.AgeGate = &config.AgeGateConfig{
		MinimumAge: 21,
		TokenTTL:   time.Hour,
	}

	svc, err := NewAgeTokenService(cfg)
	require.NoError(t, err)

	concrete, ok := svc.(*ageTokenService)
	require.True(t, ok)

	return concrete
}

func TestAgeTokenService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewAgeTokenService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestAgeTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestAgeTokenService(t)

	dob := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	token, err := svc.Issue(dob)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	verified, err := svc.Verify(token)
	require.NoError(t, err)
	assert.True(t, dob.Equal(verified))
}

func TestAgeTokenService_IssueUnderage(t *testing.T) {
	svc := newTestAgeTokenService(t)

	dob := time.Now().AddDate(-18, 0, 0)
	token, err := svc.Issue(dob)

	assert.True(t, errors.Is(err, domainerrors.ErrUnderage))
	assert.Empty(t, token)
}

func TestAgeTokenService_BirthdayBoundary(t *testing.T) {
	svc := newTestAgeTokenService(t)

	fixed := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	// 21st birthday is today: passes.
	_, err := svc.Issue(time.Date(2005, time.March, 10, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	// 21st birthday is tomorrow: rejected.
	_, err = svc.Issue(time.Date(2005, time.March, 11, 0, 0, 0, 0, time.UTC))
	assert.True(t, errors.Is(err, domainerrors.ErrUnderage))
}

func TestAgeTokenService_VerifyTampered(t *testing.T) {
	svc := newTestAgeTokenService(t)

	token, err := svc.Issue(time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	assert.True(t, errors.Is(err, domainerrors.ErrAgeTokenInvalid))

	_, err = svc.Verify("not-a-token")
	assert.True(t, errors.Is(err, domainerrors.ErrAgeTokenInvalid))
}

func TestAgeTokenService_VerifyExpired(t *testing.T) {
	svc := newTestAgeTokenService(t)

	past := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return past }
	token, err := svc.Issue(time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Verification happens at real time, one TTL after issuance.
	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrAgeTokenInvalid))
}

func TestAgeTokenService_VerifyRejectsOtherTokenTypes(t *testing.T) {
	svc := newTestAgeTokenService(t)

	// A session token signed with the same secret must not pass the age gate.
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-age-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	jwtSvc, err := NewJWTService(cfg)
	require.NoError(t, err)

	pair, err := jwtSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrAgeTokenInvalid))
}
