package annotation

import (
	"context"
	"testing"

	"pairup/config"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiAnnotator_MissingKey(t *testing.T) {
	annotator := NewGeminiAnnotator(&config.Config{})

	_, err := annotator.Annotate(context.Background(), service.ImageInput{
		Data:     []byte("image-bytes"),
		MIMEType: "image/jpeg",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAnnotationNotConfigured))
}

func TestParseAnnotation_PlainJSON(t *testing.T) {
	raw := `{"food_name":"Grilled Salmon","beverage_type":"Wine","flavor_principle":"Acid + Umami","review_text":"A classic match.","beverage_brand":null,"food_brand":null}`

	annotation, err := parseAnnotation(raw)

	require.NoError(t, err)
	assert.Equal(t, "Grilled Salmon", annotation.FoodName)
	assert.Equal(t, "Wine", annotation.BeverageType)
	assert.Equal(t, "Acid + Umami", annotation.FlavorPrinciple)
	assert.Nil(t, annotation.BeverageBrand)
}

func TestParseAnnotation_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n" +
		`{"food_name":"Tacos","beverage_type":"Beer","flavor_principle":"Sweet + Spicy","review_text":"Crisp lager cools the heat.","beverage_brand":"Modelo","food_brand":null}` +
		"\n```"

	annotation, err := parseAnnotation(raw)

	require.NoError(t, err)
	assert.Equal(t, "Tacos", annotation.FoodName)
	require.NotNil(t, annotation.BeverageBrand)
	assert.Equal(t, "Modelo", *annotation.BeverageBrand)
}

func TestParseAnnotation_NotJSON(t *testing.T) {
	annotation, err := parseAnnotation("I'm sorry, I cannot analyze this image.")

	assert.True(t, errors.Is(err, domainerrors.ErrAnnotationMalformed))
	assert.Contains(t, err.Error(), "not valid JSON")
	assert.Nil(t, annotation)
}

func TestParseAnnotation_MissingRequiredFields(t *testing.T) {
	raw := `{"food_name":"Pizza","beverage_type":"","flavor_principle":"Complement","review_text":""}`

	annotation, err := parseAnnotation(raw)

	assert.True(t, errors.Is(err, domainerrors.ErrAnnotationMalformed))
	assert.Contains(t, err.Error(), "missing required fields")
	assert.Nil(t, annotation)
}

func TestSnippet_TruncatesLongReplies(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}

	short := snippet("short reply")
	assert.Equal(t, "short reply", short)

	truncated := snippet(string(long))
	assert.Len(t, truncated, 103)
	assert.Contains(t, truncated, "...")
}
