package llm

import (
	"testing"

	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendation(t *testing.T) {
	want := model.Recommendation{
		ProductID:          "oud-003",
		Reasoning:          "Rose and oud for a formal evening.",
		OccasionSuggestion: "A winter gala",
	}

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"productId":"oud-003","reasoning":"Rose and oud for a formal evening.","occasionSuggestion":"A winter gala"}`,
		},
		{
			name:    "markdown fenced",
			content: "```json\n{\"productId\":\"oud-003\",\"reasoning\":\"Rose and oud for a formal evening.\",\"occasionSuggestion\":\"A winter gala\"}\n```",
		},
		{
			name:    "surrounding chatter",
			content: "Here you go: {\"productId\": \" oud-003 \", \"reasoning\": \"Rose and oud for a formal evening.\", \"occasionSuggestion\": \"A winter gala\"} Enjoy!",
		},
		{
			name:    "missing occasion",
			content: `{"productId":"oud-003","reasoning":"x"}`,
			wantErr: true,
		},
		{
			name:    "blank product id",
			content: `{"productId":"  ","reasoning":"x","occasionSuggestion":"y"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			content: "I recommend the rose elixir.",
			wantErr: true,
		},
		{
			name:    "empty",
			content: "",
			wantErr: true,
		},
		{
			name:    "wrong types",
			content: `{"productId":3,"reasoning":"x","occasionSuggestion":"y"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRecommendation(tt.content)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{}", "{}"},
		{"```json\n{}\n```", "{}"},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json{}```  ", "{}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.in), tt.in)
	}
}
