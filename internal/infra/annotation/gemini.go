// Package annotation implements the pairing photo analysis on the Gemini API.
package annotation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"pairup/config"
	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/service"
)

const defaultModel = "gemini-2.5-flash"

// sommelierPrompt instructs the model to inventory the photo honestly and
// return one JSON object. The field names and allowed values are load-bearing:
// the parser validates against them.
const sommelierPrompt = `You are a friendly but knowledgeable sommelier and food pairing expert.

IMPORTANT - STRICT INVENTORY CHECK:
First, carefully examine the image to determine what is ACTUALLY visible:
- Is there FOOD in the image? (meals, snacks, dishes, ingredients)
- Is there a BEVERAGE in the image? (drinks, bottles, cans, glasses with liquid)

DO NOT hallucinate or assume items exist if they are not clearly visible in the photo.

Analyze the image and return a JSON object with exactly these fields:

1. food_name:
   - If food IS visible: A short, descriptive name (e.g., "Grilled Salmon", "Margherita Pizza")
   - If NO food is visible: Return "None detected"

2. beverage_type:
   - If a beverage IS visible, identify it as EXACTLY one of: "Wine", "Beer", "Spirits", "Cocktails", "Non-Alcoholic"
   - If NO beverage is visible: Return "None detected"
   - If only food is visible (no beverage), suggest the best pairing type from the list above

3. flavor_principle: Must be EXACTLY one of these values:
   - "Acid + Umami"
   - "Sweet + Spicy"
   - "Fat + Tannin"
   - "Bitter + Sweet"
   - "Effervescence + Fried"
   - "Complement"
   - "Contrast"
   Choose the flavor principle that best describes the pairing (actual or suggested).

4. review_text: A 3-4 sentence grounded analysis in a friendly sommelier tone.
   - If BOTH food and beverage are visible: Explain how their flavors interact.
   - If ONLY FOOD is visible: Describe the food's flavor profile and suggest what beverage would pair well with it.
   - If ONLY BEVERAGE is visible: Describe the beverage's characteristics and suggest what foods would complement it (e.g., "This hoppy IPA would pair beautifully with spicy wings or a sharp cheddar...").
   - NEVER pretend a pairing exists in the photo if it doesn't. Be honest about what you see.

5. beverage_brand: If a beverage brand/logo is visible (e.g., "Duvel", "Heineken"), return it. Otherwise return null.

6. food_brand: If a food brand/logo is visible (e.g., "Doritos", "Lay's"), return it. Otherwise return null.

Return ONLY valid JSON, no markdown, no explanation.

Example with both items:
{"food_name":"Grilled Ribeye Steak","beverage_type":"Wine","flavor_principle":"Fat + Tannin","review_text":"This beautifully marbled ribeye is calling for a bold red wine. The rich fat content and savory char will be perfectly balanced by the tannins in a Cabernet Sauvignon or Malbec.","beverage_brand":null,"food_brand":null}

Example with only beverage:
{"food_name":"None detected","beverage_type":"Beer","flavor_principle":"Bitter + Sweet","review_text":"This golden Belgian ale has complex fruity esters and a dry finish. It would pair wonderfully with creamy cheeses, mussels, or crispy frites. The carbonation cuts through rich, fatty foods beautifully.","beverage_brand":"Duvel","food_brand":null}`

// geminiAnnotator is a concrete implementation of the ImageAnnotator
// interface on the Gemini API. The client is created per call so a missing
// key only fails the annotation request, never startup.
type geminiAnnotator struct {
	apiKey string
	model  string
}

// NewGeminiAnnotator is the constructor for geminiAnnotator.
func NewGeminiAnnotator(cfg *config.Config) service.ImageAnnotator {
	annotator := &geminiAnnotator{model: defaultModel}
	if cfg.Gemini != nil {
		annotator.apiKey = cfg.Gemini.APIKey
		if cfg.Gemini.Model != "" {
			annotator.model = cfg.Gemini.Model
		}
	}

	return annotator
}

// Annotate sends the photo with the sommelier prompt and parses the JSON
// reply. It makes exactly one model call; there is no retry.
func (a *geminiAnnotator) Annotate(ctx context.Context, image service.ImageInput) (*entity.Annotation, error) {
	if a.apiKey == "" {
		return nil, domainerrors.ErrAnnotationNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}
	defer client.Close()

	model := client.GenerativeModel(a.model)
	resp, err := model.GenerateContent(ctx,
		genai.Text(sommelierPrompt),
		genai.Blob{MIMEType: image.MIMEType, Data: image.Data},
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, domainerrors.ErrAnnotationTimeout
		}

		return nil, errors.Wrap(err, "Gemini content generation failed")
	}

	return parseAnnotation(extractText(resp))
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String()
}

// parseAnnotation strips markdown fences, parses the JSON object, and checks
// the required fields. Malformed output carries a snippet of the raw reply so
// the failure is diagnosable from the error alone.
func parseAnnotation(raw string) (*entity.Annotation, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var annotation entity.Annotation
	if err := json.Unmarshal([]byte(cleaned), &annotation); err != nil {
		return nil, domainerrors.ErrAnnotationMalformed.WrapMessage("not valid JSON: " + snippet(raw))
	}

	if annotation.FoodName == "" || annotation.BeverageType == "" ||
		annotation.FlavorPrinciple == "" || annotation.ReviewText == "" {
		return nil, domainerrors.ErrAnnotationMalformed.WrapMessage("missing required fields: " + snippet(cleaned))
	}

	return &annotation, nil
}

func snippet(s string) string {
	const maxSnippet = 100
	if len(s) > maxSnippet {
		return s[:maxSnippet] + "..."
	}

	return s
}
