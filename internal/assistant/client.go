// Package assistant adapts the remote text-completion capability behind a
// small client. The API is the OpenAI-compatible chat-completions surface:
// an ordered sequence of role-tagged turns in, generated text out. The
// client does no retrying and no fallback of its own; failure policy
// belongs to the caller.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"moneyflow/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message in the sequence sent to the model.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client struct {
	httpClient *http.Client
	cfg        *config.AssistantConfig
	logger     *zap.Logger
}

func NewClient(cfg *config.AssistantConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

type completionRequest struct {
	Messages    []Turn  `json:"messages"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
	Model       string  `json:"model"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the turn sequence to the chat-completions endpoint and
// returns the generated text.
func (c *Client) Complete(ctx context.Context, turns []Turn) (string, error) {
	body, err := json.Marshal(completionRequest{
		Messages:    turns,
		Temperature: c.cfg.Temperature,
		TopP:        c.cfg.TopP,
		MaxTokens:   c.cfg.MaxTokens,
		Model:       c.cfg.Model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.cfg.Endpoint, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("Completion request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(bodyBytes)),
			zap.String("request_id", requestID),
		)
		return "", fmt.Errorf("completion failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return completion.Choices[0].Message.Content, nil
}
