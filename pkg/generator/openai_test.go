package generator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/usernamer/pkg/models"
)

var novaRequest = Request{
	SeedWord:     "Nova",
	Category:     models.CategoryGaming,
	WordPosition: models.PositionBefore,
}

// completion wraps content in a minimal chat completion response body
func completion(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message": map[string]any{
				"role":    "assistant",
				"content": content,
			},
		}},
	})
	return string(body)
}

type fakeEndpoint struct {
	server   *httptest.Server
	calls    atomic.Int32
	lastBody atomic.Value
}

func newFakeEndpoint(t *testing.T, status int, body string) *fakeEndpoint {
	t.Helper()
	f := &fakeEndpoint{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		data, _ := io.ReadAll(r.Body)
		f.lastBody.Store(string(data))
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeEndpoint) generator(t *testing.T, logger hclog.Logger) *OpenAIGenerator {
	t.Helper()
	g, err := NewOpenAIGenerator(OpenAIOptions{
		APIKey:     "test-key",
		Model:      "test-model",
		BaseURL:    f.server.URL + "/",
		HTTPClient: f.server.Client(),
		Logger:     logger,
	})
	require.NoError(t, err)
	return g
}

func TestOpenAIGenerator_Success(t *testing.T) {
	names := make([]string, NameCount)
	for i := range names {
		names[i] = "NovaGamer" + strings.Repeat("_", i)
	}
	content, _ := json.Marshal(map[string]any{"usernames": names})
	endpoint := newFakeEndpoint(t, http.StatusOK, completion(string(content)))

	got, err := endpoint.generator(t, nil).Generate(context.Background(), novaRequest)
	require.NoError(t, err)
	assert.Equal(t, names, got)
	assert.Equal(t, int32(1), endpoint.calls.Load())

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(endpoint.lastBody.Load().(string)), &sent))
	assert.Equal(t, "test-model", sent["model"])

	format, ok := sent["response_format"].(map[string]any)
	require.True(t, ok, "response_format should be sent")
	assert.Equal(t, "json_schema", format["type"])
	jsonSchema := format["json_schema"].(map[string]any)
	assert.Equal(t, SchemaName, jsonSchema["name"])
	assert.Equal(t, true, jsonSchema["strict"])

	messages := sent["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].(map[string]any)["content"], "seed word 'Nova'")
}

func TestOpenAIGenerator_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error": {"message": "boom"}}`},
		{"unauthorized", http.StatusUnauthorized, `{"error": {"message": "bad key"}}`},
		{"content not json", http.StatusOK, completion("here are some names: a, b")},
		{"missing usernames", http.StatusOK, completion(`{"names": ["a"]}`)},
		{"usernames not array", http.StatusOK, completion(`{"usernames": "a"}`)},
		{"no choices", http.StatusOK, `{"id": "x", "object": "chat.completion", "choices": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs strings.Builder
			logger := hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Debug})
			endpoint := newFakeEndpoint(t, tt.status, tt.body)

			got, err := endpoint.generator(t, logger).Generate(context.Background(), novaRequest)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrGenerationFailed))
			assert.Equal(t, "Failed to generate usernames. Please try again.", err.Error())
			assert.Equal(t, int32(1), endpoint.calls.Load(), "exactly one attempt, no retries")
			assert.Contains(t, logs.String(), "error generating usernames")
		})
	}
}

func TestOpenAIGenerator_TransportFailure(t *testing.T) {
	endpoint := newFakeEndpoint(t, http.StatusOK, completion(`{"usernames": ["a"]}`))
	g := endpoint.generator(t, nil)
	endpoint.server.Close()

	_, err := g.Generate(context.Background(), novaRequest)
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestOpenAIGenerator_MissingAPIKey(t *testing.T) {
	var logs strings.Builder
	logger := hclog.New(&hclog.LoggerOptions{Output: &logs})
	endpoint := newFakeEndpoint(t, http.StatusOK, completion(`{"usernames": ["a"]}`))

	g, err := NewOpenAIGenerator(OpenAIOptions{
		Model:      "test-model",
		BaseURL:    endpoint.server.URL + "/",
		HTTPClient: endpoint.server.Client(),
		Logger:     logger,
	})
	require.NoError(t, err, "a missing key must not block construction")
	assert.Contains(t, logs.String(), "API key not set")

	_, err = g.Generate(context.Background(), novaRequest)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Contains(t, logs.String(), ErrMissingAPIKey.Error())
}

func TestNewOpenAIGenerator_RequiresModel(t *testing.T) {
	_, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "k"})
	assert.Error(t, err)
}

func TestFuncAdapter(t *testing.T) {
	var g Generator = Func(func(_ context.Context, req Request) ([]string, error) {
		return []string{req.SeedWord + "_1"}, nil
	})
	got, err := g.Generate(context.Background(), novaRequest)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nova_1"}, got)
}
