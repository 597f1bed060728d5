package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Veraticus/oud-emporium/internal/common"
)

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// postJSON sends requestBody to url and returns the raw response body.
// Rate limiting and server errors are marked retryable.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, requestBody any, provider string) ([]byte, error) {
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, common.Retryable(fmt.Errorf("%s API error (status %d): %w", provider, resp.StatusCode, common.ErrRateLimit))
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, common.Retryable(fmt.Errorf("%s API error (status %d): %s", provider, resp.StatusCode, string(body)))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s API error (status %d): %s", provider, resp.StatusCode, string(body))
	}

	return body, nil
}
