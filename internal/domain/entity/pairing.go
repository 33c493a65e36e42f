package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating is the author's thumbs verdict given at submission time.
type Rating string

const (
	RatingUp   Rating = "up"
	RatingDown Rating = "down"
)

// Valid reports whether the rating is one of the two allowed values.
func (r Rating) Valid() bool {
	return r == RatingUp || r == RatingDown
}

// FlavorPrinciple is one of the seven fixed tags describing why a pairing works.
// The literals are stored verbatim and must round-trip exactly.
type FlavorPrinciple string

const (
	PrincipleAcidUmami          FlavorPrinciple = "Acid + Umami"
	PrincipleSweetSpicy         FlavorPrinciple = "Sweet + Spicy"
	PrincipleFatTannin          FlavorPrinciple = "Fat + Tannin"
	PrincipleBitterSweet        FlavorPrinciple = "Bitter + Sweet"
	PrincipleEffervescenceFried FlavorPrinciple = "Effervescence + Fried"
	PrincipleComplement         FlavorPrinciple = "Complement"
	PrincipleContrast           FlavorPrinciple = "Contrast"
)

// FlavorPrinciples lists every known principle, in display order.
func FlavorPrinciples() []FlavorPrinciple {
	return []FlavorPrinciple{
		PrincipleAcidUmami,
		PrincipleSweetSpicy,
		PrincipleFatTannin,
		PrincipleBitterSweet,
		PrincipleEffervescenceFried,
		PrincipleComplement,
		PrincipleContrast,
	}
}

// Valid reports whether the principle is one of the seven known literals.
func (p FlavorPrinciple) Valid() bool {
	for _, known := range FlavorPrinciples() {
		if p == known {
			return true
		}
	}

	return false
}

// BeverageTagNone is the sentinel stored when a pairing has no beverage.
const BeverageTagNone = "none"

// BeverageTags lists the selectable beverage tags.
func BeverageTags() []string {
	return []string{
		"wine", "beer", "spirits", "cocktails", "cider",
		"na-wine", "na-beer", "na-spirits", "mocktails",
	}
}

// NonAlcoholicTags lists the tags grouped under the "non-alcoholic" feed filter.
func NonAlcoholicTags() []string {
	return []string{"na-wine", "na-beer", "na-spirits", "mocktails"}
}

// Pairing is a published food/beverage post. Immutable after creation except
// for RealityScore, which the author may overwrite after tasting.
type Pairing struct {
	ID              uuid.UUID
	UserID          uuid.UUID // The authoring account.
	ImageURL        string    // Public URL of the stored photo.
	FoodName        string
	BeverageTag     string           // Free-form tag; BeverageTagNone when omitted.
	FlavorPrinciple *FlavorPrinciple // One of the seven literals when set.
	ReviewText      *string
	BeverageBrand   *string
	FoodBrand       *string
	Rating          Rating
	RealityScore    *int // 1-5 self-rating set by the author after tasting.
	CreatedAt       time.Time

	// Read-side expansions. Populated on fetch, never persisted directly.
	Author        *Profile
	LikeCount     int64
	CommentCount  int64
	LikedByViewer bool
}

// Annotation is the structured result of the AI image analysis. It pre-fills
// the submission form and is never a precondition for publishing.
type Annotation struct {
	FoodName        string  `json:"food_name"`
	BeverageType    string  `json:"beverage_type"`
	FlavorPrinciple string  `json:"flavor_principle"`
	ReviewText      string  `json:"review_text"`
	BeverageBrand   *string `json:"beverage_brand"`
	FoodBrand       *string `json:"food_brand"`
}
