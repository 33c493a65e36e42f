package auth

import (
	"testing"

	"pairup/config"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() service.PasswordHasher {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost} // Low cost for faster testing

	return NewBcryptHasher(cfg)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123",
		"MySecurePass1",
		"ComplexSecret9",
		"ValidPhrase2024",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "too short"},
		{"PASSWORD123", "lowercase"},
		{"password123", "uppercase"},
		{"PasswordABC", "number"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
		assert.Contains(t, err.Error(), tc.expectedErr, "Error message should contain: %s", tc.expectedErr)
	}
}

func TestBcryptHasher_CustomStrengthPolicy(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength: 12,
		MaxLength: 64,
	}
	hasher := NewBcryptHasher(cfg)

	// Character classes are not required under this policy.
	assert.NoError(t, hasher.ValidatePasswordStrength("alllowercasephrase"))

	// Length bounds still apply.
	err := hasher.ValidatePasswordStrength("tooshort")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	err = hasher.ValidatePasswordStrength(string(long))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 6}
	hasher := NewBcryptHasher(cfg)

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 99}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
