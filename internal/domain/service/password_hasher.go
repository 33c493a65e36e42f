// Package service defines domain-level contracts whose implementations live
// in the infra layer.
package service

// PasswordHasher hashes and checks account passwords and enforces the
// configured strength policy.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext matches the stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that do not meet the
	// configured length and character-class requirements.
	ValidatePasswordStrength(password string) error
}
