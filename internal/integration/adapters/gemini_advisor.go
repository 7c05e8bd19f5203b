// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GeminiAdvisor implements the CategoryAdvisor interface using Google Gemini.
type GeminiAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
func NewGeminiAdvisor(apiKey string) *GeminiAdvisor {
	return &GeminiAdvisor{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini advisor is properly configured.
func (s *GeminiAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks the model to pick one category from the suggested list
// for the given type that best matches the description.
func (s *GeminiAdvisor) SuggestCategory(ctx context.Context, description string, transactionType entity.TransactionType) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini advisor is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(description, transactionType)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	category, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return category, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiAdvisor) buildPrompt(description string, transactionType entity.TransactionType) string {
	var sb strings.Builder

	sb.WriteString("You are an assistant that classifies personal finance transactions.\n")
	sb.WriteString("Pick exactly one category from the list below that best matches the transaction description.\n\n")

	sb.WriteString("CATEGORIES:\n")
	for _, category := range entity.SuggestedCategories(transactionType) {
		sb.WriteString("- " + category + "\n")
	}

	sb.WriteString("\nTRANSACTION:\n")
	sb.WriteString(fmt.Sprintf("- Type: %s\n- Description: %q\n", transactionType, description))

	sb.WriteString("\nRespond with a JSON object: {\"category\": \"<one category from the list>\"}\n")
	sb.WriteString("Use \"Other\" when nothing fits. Return only the JSON object, no extra text.\n")

	return sb.String()
}

// geminiCategoryResponse represents the raw response from Gemini.
type geminiCategoryResponse struct {
	Category string `json:"category"`
}

// parseResponse extracts the category from the Gemini response.
func (s *GeminiAdvisor) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var parsed geminiCategoryResponse
	if err := json.Unmarshal([]byte(textContent), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if parsed.Category == "" {
		return "", fmt.Errorf("response contained no category")
	}

	return parsed.Category, nil
}
