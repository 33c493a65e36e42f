// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It holds only the identity facts shared by
// every authentication provider; everything social lives on Profile.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email     string    // Primary contact email, also the email-provider login identifier.
	Name      string    // Name reported by the auth provider, if any.
	Profile   *Profile  // The social profile. Nil until onboarding completes.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// AlcoholToggle controls which pairings a profile owner wants surfaced.
type AlcoholToggle string

const (
	AlcoholShowAll          AlcoholToggle = "Show All"
	AlcoholNonAlcoholicOnly AlcoholToggle = "Non-Alcoholic Only"
	AlcoholAlcoholicOnly    AlcoholToggle = "Alcoholic Only"
)

// Valid reports whether the toggle is one of the known settings.
func (a AlcoholToggle) Valid() bool {
	switch a {
	case AlcoholShowAll, AlcoholNonAlcoholicOnly, AlcoholAlcoholicOnly:
		return true
	}

	return false
}

/// Profile is the public-facing identity built during onboarding. It is 1:1
// with User (same ID).
type Profile struct {
	UserID              uuid.UUID     // FK to the owning User; also the profile's identity.
	Username            *string       // Globally unique handle. Nil until onboarding completes.
	DisplayName         string        // Free-form display name.
	Bio                 string        // Short free-form bio.
	AvatarURL           *string       // Public URL of the uploaded avatar, if any.
	BeveragePreferences []string      // Beverage tags the owner drinks.
	AlcoholToggle       AlcoholToggle // Feed visibility preference for alcoholic pairings.
	InstagramHandle     *string
	TikTokHandle        *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
