package service

import (
	"context"
	"fmt"
	"strings"

	"moneyflow/internal/assistant"
	"moneyflow/internal/dto"
	"moneyflow/internal/models"

	"go.uber.org/zap"
)

// FallbackMessage is returned and persisted as the assistant's reply when
// the remote capability fails. The remote model is treated as unreliable;
// its failure must never abort the request or leave a user message in the
// transcript without a paired reply.
const FallbackMessage = "An error occurred when interacting with the AI model. Try again after some time."

// ChatHistoryStore is the transcript contract: append and read back in
// ascending timestamp order. There is deliberately no way to mutate or
// remove a message.
type ChatHistoryStore interface {
	Append(ctx context.Context, m *models.ChatMessage) error
	List(ctx context.Context) ([]*models.ChatMessage, error)
}

// AssistantClient is the opaque remote text-completion capability.
type AssistantClient interface {
	Complete(ctx context.Context, turns []assistant.Turn) (string, error)
}

// ChatService runs one query through the fixed pipeline: validate the
// query, snapshot ledger and transcript, assemble the prompt, invoke the
// model, and append both sides of the turn to the transcript.
type ChatService struct {
	entries EntryStore
	history ChatHistoryStore
	client  AssistantClient
	logger  *zap.Logger
}

func NewChatService(entries EntryStore, history ChatHistoryStore, client AssistantClient, logger *zap.Logger) *ChatService {
	return &ChatService{
		entries: entries,
		history: history,
		client:  client,
		logger:  logger,
	}
}

// History returns the full transcript, oldest first.
func (s *ChatService) History(ctx context.Context) ([]*models.ChatMessage, error) {
	return s.history.List(ctx)
}

// Ask answers one user query. An empty query is rejected before anything
// is read or written. A failed model call is swallowed: the fallback text
// is returned and persisted as the reply, so every user message in the
// transcript always has a paired assistant message.
func (s *ChatService) Ask(ctx context.Context, query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", dto.ValidationErrors{
			dto.NewFieldError("query", query, "Query must not be empty."),
		}
	}

	entries, err := s.entries.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read entries: %w", err)
	}

	history, err := s.history.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read chat history: %w", err)
	}

	turns := BuildTurns(entries, history, trimmed)

	if err := s.history.Append(ctx, &models.ChatMessage{Message: trimmed, IsUser: true}); err != nil {
		return "", fmt.Errorf("failed to append user message: %w", err)
	}

	reply, err := s.client.Complete(ctx, turns)
	if err != nil {
		s.logger.Error("Assistant call failed, substituting fallback reply", zap.Error(err))
		reply = FallbackMessage
	}

	if err := s.history.Append(ctx, &models.ChatMessage{Message: reply, IsUser: false}); err != nil {
		return "", fmt.Errorf("failed to append assistant message: %w", err)
	}

	return reply, nil
}
