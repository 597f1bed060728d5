package llm

import (
	"context"
	"errors"

	"github.com/Veraticus/oud-emporium/internal/model"
)

// Default model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

var (
	// ErrNoCredential means no API key was configured for the provider.
	ErrNoCredential = errors.New("no model credential configured")
	// ErrMalformedResponse means the model reply was not a usable recommendation.
	ErrMalformedResponse = errors.New("malformed model response")
)

// Client defines the interface for LLM providers.
type Client interface {
	Recommend(ctx context.Context, req Request) (model.Recommendation, error)
	Provider() string
}

// Request is one recommendation prompt.
type Request struct {
	System string // persona and output rules
	Prompt string // preferences and catalog projection
}
