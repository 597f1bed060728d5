package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
	"google.golang.org/genai"
)

// geminiClient implements the Client interface on the Gemini API.
type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

// newGeminiClient creates a Gemini client bound to cfg.APIKey.
func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required: %w", ErrNoCredential)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:      client,
		model:       modelName,
		temperature: float32(temperature),
		maxTokens:   int32(maxTokens),
	}, nil
}

func (c *geminiClient) Provider() string { return "gemini" }

// Recommend asks Gemini for a recommendation constrained by recommendationSchema.
func (c *geminiClient) Recommend(ctx context.Context, r Request) (model.Recommendation, error) {
	temperature := c.temperature
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  c.maxTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   recommendationSchema(),
	}
	if r.System != "" {
		config.SystemInstruction = genai.NewContentFromText(r.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(r.Prompt, genai.RoleUser)}, config)
	if err != nil {
		return model.Recommendation{}, classifyGeminiError(err)
	}

	return parseRecommendation(resp.Text())
}

// recommendationSchema requires all three recommendation fields.
func recommendationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"productId": {
				Type:        genai.TypeString,
				Description: "The id of the recommended product, copied exactly from the catalog.",
			},
			"reasoning": {
				Type:        genai.TypeString,
				Description: "Why this product suits the customer's preferences.",
			},
			"occasionSuggestion": {
				Type:        genai.TypeString,
				Description: "A specific occasion to wear or use the product.",
			},
		},
		Required: []string{"productId", "reasoning", "occasionSuggestion"},
	}
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return common.Retryable(fmt.Errorf("gemini API error (status %d): %w", apiErr.Code, common.ErrRateLimit))
		case apiErr.Code >= http.StatusInternalServerError:
			return common.Retryable(fmt.Errorf("gemini API error (status %d): %s", apiErr.Code, apiErr.Message))
		default:
			return fmt.Errorf("gemini API error (status %d): %s", apiErr.Code, apiErr.Message)
		}
	}
	return fmt.Errorf("gemini request failed: %w", err)
}
