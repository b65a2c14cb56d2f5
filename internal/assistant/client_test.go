package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moneyflow/pkg/config"

	"go.uber.org/zap"
)

func testConfig(endpoint string) *config.AssistantConfig {
	return &config.AssistantConfig{
		Token:       "test-token",
		Endpoint:    endpoint,
		Model:       "gpt-4o-mini",
		Temperature: 1.0,
		TopP:        1.0,
		MaxTokens:   1000,
		Timeout:     5 * time.Second,
	}
}

func TestClient_Complete(t *testing.T) {
	var gotPath, gotAuth, gotRequestID string
	var gotBody completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "The balance is $100."}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	turns := []Turn{
		{Role: RoleSystem, Content: "You are a financial expert."},
		{Role: RoleUser, Content: "What is my balance?"},
	}

	reply, err := client.Complete(context.Background(), turns)
	if err != nil {
		t.Fatalf("Complete() error = %v, want nil", err)
	}
	if reply != "The balance is $100." {
		t.Errorf("Complete() = %q, want generated text", reply)
	}

	if gotPath != "/chat/completions" {
		t.Errorf("path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header not set")
	}
	if gotBody.Model != "gpt-4o-mini" || gotBody.MaxTokens != 1000 {
		t.Errorf("request body = %+v, want configured model parameters", gotBody)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != RoleSystem {
		t.Errorf("messages = %+v, want the turn sequence unchanged", gotBody.Messages)
	}
}

func TestClient_CompleteRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	if _, err := client.Complete(context.Background(), []Turn{{Role: RoleUser, Content: "hi"}}); err == nil {
		t.Error("Complete() error = nil, want failure on non-200 status")
	}
}

func TestClient_CompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	if _, err := client.Complete(context.Background(), []Turn{{Role: RoleUser, Content: "hi"}}); err == nil {
		t.Error("Complete() error = nil, want failure on empty choices")
	}
}
