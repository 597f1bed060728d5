package llm

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(t *testing.T, text string) string {
	t.Helper()
	return mustJSON(t, map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]string{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	})
}

func TestNewGeminiClient(t *testing.T) {
	_, err := newGeminiClient(context.Background(), Config{})
	require.ErrorIs(t, err, ErrNoCredential)

	client, err := newGeminiClient(context.Background(), Config{APIKey: "g-key"})
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiModel, client.(*geminiClient).model)
	assert.Equal(t, "gemini", client.Provider())
}

func TestGeminiClient_Recommend(t *testing.T) {
	server, seen := newProviderServer(t, http.StatusOK, geminiReply(t, validReply))

	client, err := newGeminiClient(context.Background(), Config{APIKey: "g-key", BaseURL: server.URL})
	require.NoError(t, err)

	rec, err := client.Recommend(context.Background(), Request{System: "persona", Prompt: "pick"})
	require.NoError(t, err)

	assert.Equal(t, "oud-001", rec.ProductID)
	assert.Equal(t, "Deep woody oud for a confident evening.", rec.Reasoning)
	assert.True(t, strings.HasSuffix(seen.path, "/models/"+DefaultGeminiModel+":generateContent"), seen.path)
	assert.Equal(t, "g-key", seen.header.Get("x-goog-api-key"))

	generation, ok := seen.body["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from request")
	assert.Equal(t, "application/json", generation["responseMimeType"])
	assert.NotNil(t, generation["responseSchema"])
}

func TestGeminiClient_Errors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantRetryable bool
		wantMalformed bool
	}{
		{
			name:          "quota exhausted",
			status:        http.StatusTooManyRequests,
			body:          `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`,
			wantRetryable: true,
		},
		{
			name:          "unavailable",
			status:        http.StatusServiceUnavailable,
			body:          `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`,
			wantRetryable: true,
		},
		{
			name:   "bad key",
			status: http.StatusBadRequest,
			body:   `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`,
		},
		{
			name:          "prose instead of json",
			status:        http.StatusOK,
			body:          geminiReply(t, "The rose elixir would suit you."),
			wantMalformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newProviderServer(t, tt.status, tt.body)
			client, err := newGeminiClient(context.Background(), Config{APIKey: "g-key", BaseURL: server.URL})
			require.NoError(t, err)

			_, err = client.Recommend(context.Background(), Request{Prompt: "pick"})
			require.Error(t, err)
			assert.Equal(t, tt.wantRetryable, common.IsRetryable(err))
			assert.Equal(t, tt.wantMalformed, errorIsMalformed(err))
		})
	}
}

func TestRecommendationSchema(t *testing.T) {
	schema := recommendationSchema()
	assert.ElementsMatch(t, []string{"productId", "reasoning", "occasionSuggestion"}, schema.Required)
	assert.Len(t, schema.Properties, 3)
}
