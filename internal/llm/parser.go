package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/oud-emporium/internal/model"
)

// parseRecommendation decodes a model reply into a Recommendation. All three
// fields must be present and non-empty.
func parseRecommendation(content string) (model.Recommendation, error) {
	content = extractJSONObject(cleanMarkdownWrapper(content))
	if content == "" {
		return model.Recommendation{}, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}

	var jsonResp struct {
		ProductID          *string `json:"productId"`
		Reasoning          *string `json:"reasoning"`
		OccasionSuggestion *string `json:"occasionSuggestion"`
	}
	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return model.Recommendation{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	missing := make([]string, 0, 3)
	if jsonResp.ProductID == nil || strings.TrimSpace(*jsonResp.ProductID) == "" {
		missing = append(missing, "productId")
	}
	if jsonResp.Reasoning == nil || strings.TrimSpace(*jsonResp.Reasoning) == "" {
		missing = append(missing, "reasoning")
	}
	if jsonResp.OccasionSuggestion == nil || strings.TrimSpace(*jsonResp.OccasionSuggestion) == "" {
		missing = append(missing, "occasionSuggestion")
	}
	if len(missing) > 0 {
		return model.Recommendation{}, fmt.Errorf("%w: missing %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}

	return model.Recommendation{
		ProductID:          strings.TrimSpace(*jsonResp.ProductID),
		Reasoning:          strings.TrimSpace(*jsonResp.Reasoning),
		OccasionSuggestion: strings.TrimSpace(*jsonResp.OccasionSuggestion),
	}, nil
}

// cleanMarkdownWrapper strips a ```json fence around a reply.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		content = content[nl+1:]
	} else {
		content = strings.TrimPrefix(content, "json")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// extractJSONObject trims chatter before the first '{' and after the last '}'.
func extractJSONObject(content string) string {
	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end < start {
		return strings.TrimSpace(content)
	}
	return content[start : end+1]
}
