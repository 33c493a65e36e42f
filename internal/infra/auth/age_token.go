package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pairup/config"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/service"
)

// ageTokenService issues signed age-verification tokens. The token embeds the
// verified date of birth so the minimum age is re-checked on every
// verification rather than trusted from a client-side flag.
type ageTokenService struct {
	secret     string
	minimumAge int
	tokenTTL   time.Duration
	now        func() time.Time
}

// NewAgeTokenService is the constructor for ageTokenService.
func NewAgeTokenService(cfg *config.Config) (service.AgeTokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("age token secret must be provided")
	}

	minimumAge := 21
	tokenTTL := 30 * 24 * time.Hour
	if cfg.AgeGate != nil {
		if cfg.AgeGate.MinimumAge > 0 {
			minimumAge = cfg.AgeGate.MinimumAge
		}
		if cfg.AgeGate.TokenTTL > 0 {
			tokenTTL = cfg.AgeGate.TokenTTL
		}
	}

	return &ageTokenService{
		secret:     cfg.SecretKey.Access,
		minimumAge: minimumAge,
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}, nil
}

// Issue signs a token for a date of birth that satisfies the minimum age.
func (s *ageTokenService) Issue(dateOfBirth time.Time) (string, error) {
	if !s.meetsMinimumAge(dateOfBirth) {
		return "", domainerrors.ErrUnderage
	}

	now := s.now()
	claims := jwt.MapClaims{
		"dob":  dateOfBirth.Format(time.DateOnly),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
		"type": "age",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the signature and expiry and re-checks the minimum age
// against the embedded date of birth.
func (s *ageTokenService) Verify(tokenString string) (time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return time.Time{}, domainerrors.ErrAgeTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, domainerrors.ErrAgeTokenInvalid
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != "age" {
		return time.Time{}, domainerrors.ErrAgeTokenInvalid
	}

	dobString, _ := claims["dob"].(string)
	dateOfBirth, err := time.Parse(time.DateOnly, dobString)
	if err != nil {
		return time.Time{}, domainerrors.ErrAgeTokenInvalid
	}

	if !s.meetsMinimumAge(dateOfBirth) {
		return time.Time{}, domainerrors.ErrUnderage
	}

	return dateOfBirth, nil
}

// meetsMinimumAge applies the calendar rule: the birthday must have occurred
// at least minimumAge years ago.
func (s *ageTokenService) meetsMinimumAge(dateOfBirth time.Time) bool {
	cutoff := s.now().AddDate(-s.minimumAge, 0, 0)

	return !dateOfBirth.After(cutoff)
}
