package llm

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const validReply = `{"productId":"oud-001","reasoning":"Deep woody oud for a confident evening.","occasionSuggestion":"A black-tie dinner"}`

// captured holds what a fake provider saw in its last request.
type captured struct {
	header http.Header
	path   string
	body   map[string]any
}

// newProviderServer starts a server that records each request and replies
// with status and body.
func newProviderServer(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	seen := &captured{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		seen.header = r.Header.Clone()
		seen.path = r.URL.Path
		seen.body = map[string]any{}
		_ = json.Unmarshal(raw, &seen.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, seen
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
