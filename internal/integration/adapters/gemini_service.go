// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/financeflow/backend/internal/application/adapter"
)

// GeminiService implements the adapter.SuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance. An empty model
// name falls back to the default.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks Gemini to pick the best matching category type for a
// record description. Candidates are the only data shared with the provider.
func (s *GeminiService) SuggestCategory(ctx context.Context, description string, types []*adapter.CategoryTypeForSuggestion) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(description, types)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	suggestion, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestion, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(description string, types []*adapter.CategoryTypeForSuggestion) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing personal finance records. Pick the single best matching category from the list below for the given record description.

RULES:
- You MUST pick one of the listed categories; never invent a new one.
- If no category is a clear match, pick the closest one and lower the confidence accordingly.

AVAILABLE CATEGORIES:
`)

	for _, t := range types {
		sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s\n", t.ID, t.Name))
	}

	sb.WriteString(fmt.Sprintf(`
RECORD DESCRIPTION: %q

Respond with a single JSON object:
{
  "category_id": "uuid of the chosen category",
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`, description))

	return sb.String()
}

// geminiPick represents the raw response from Gemini.
type geminiPick struct {
	CategoryID string  `json:"category_id"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse parses the Gemini response into a CategorySuggestion.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.CategorySuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present.
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var pick geminiPick
	if err := json.Unmarshal([]byte(textContent), &pick); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	typeID, err := uuid.Parse(pick.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID in response: %w", err)
	}

	if pick.Confidence < 0 {
		pick.Confidence = 0
	}
	if pick.Confidence > 1 {
		pick.Confidence = 1
	}

	return &adapter.CategorySuggestion{
		TypeID:     typeID,
		Confidence: pick.Confidence,
		Reasoning:  pick.Reasoning,
	}, nil
}
