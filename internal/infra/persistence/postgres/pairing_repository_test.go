package postgres

import (
	"testing"
	"time"

	"pairup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairingMappers_RoundTrip(t *testing.T) {
	principle := entity.PrincipleFatTannin
	review := "The tannins cut straight through the marbling."
	beverageBrand := "Chateau Example"
	foodBrand := "Butcher & Co"
	score := 4

	pairing := &entity.Pairing{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		ImageURL:        "https://media.example.com/p/1.jpg",
		FoodName:        "Ribeye Steak",
		BeverageTag:     "wine",
		FlavorPrinciple: &principle,
		ReviewText:      &review,
		BeverageBrand:   &beverageBrand,
		FoodBrand:       &foodBrand,
		Rating:          entity.RatingUp,
		RealityScore:    &score,
	}

	restored := toPairingDomain(fromPairingDomain(pairing))

	require.NotNil(t, restored)
	assert.Equal(t, pairing.ID, restored.ID)
	assert.Equal(t, pairing.UserID, restored.UserID)
	assert.Equal(t, pairing.ImageURL, restored.ImageURL)
	assert.Equal(t, pairing.FoodName, restored.FoodName)
	assert.Equal(t, pairing.BeverageTag, restored.BeverageTag)
	require.NotNil(t, restored.FlavorPrinciple)
	assert.Equal(t, entity.PrincipleFatTannin, *restored.FlavorPrinciple)
	assert.Equal(t, review, *restored.ReviewText)
	assert.Equal(t, beverageBrand, *restored.BeverageBrand)
	assert.Equal(t, foodBrand, *restored.FoodBrand)
	assert.Equal(t, entity.RatingUp, restored.Rating)
	assert.Equal(t, score, *restored.RealityScore)
}

func TestPairingMappers_EveryPrincipleLiteralSurvives(t *testing.T) {
	for _, principle := range entity.FlavorPrinciples() {
		p := principle
		pairing := &entity.Pairing{
			ID:              uuid.New(),
			FoodName:        "Test Dish",
			BeverageTag:     "beer",
			FlavorPrinciple: &p,
			Rating:          entity.RatingDown,
		}

		restored := toPairingDomain(fromPairingDomain(pairing))

		require.NotNil(t, restored.FlavorPrinciple)
		assert.Equal(t, principle, *restored.FlavorPrinciple)
	}
}

func TestPairingMappers_NilPrincipleAndOptionals(t *testing.T) {
	pairing := &entity.Pairing{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		FoodName:    "Plain Toast",
		BeverageTag: entity.BeverageTagNone,
		Rating:      entity.RatingUp,
		CreatedAt:   time.Now(),
	}

	restored := toPairingDomain(fromPairingDomain(pairing))

	require.NotNil(t, restored)
	assert.Nil(t, restored.FlavorPrinciple)
	assert.Nil(t, restored.ReviewText)
	assert.Nil(t, restored.BeverageBrand)
	assert.Nil(t, restored.FoodBrand)
	assert.Nil(t, restored.RealityScore)
	assert.Nil(t, restored.Author)
}

func TestPairingMappers_NilPassthrough(t *testing.T) {
	assert.Nil(t, fromPairingDomain(nil))
	assert.Nil(t, toPairingDomain(nil))
}
