package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"moneyflow/internal/assistant"
	"moneyflow/internal/dto"
	"moneyflow/internal/models"

	"go.uber.org/zap"
)

type fakeHistoryStore struct {
	messages []*models.ChatMessage
	nextID   int64
}

func (s *fakeHistoryStore) Append(ctx context.Context, m *models.ChatMessage) error {
	s.nextID++
	m.ID = s.nextID
	m.Timestamp = time.Now().UTC()
	s.messages = append(s.messages, m)
	return nil
}

func (s *fakeHistoryStore) List(ctx context.Context) ([]*models.ChatMessage, error) {
	out := make([]*models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

type fakeAssistantClient struct {
	reply string
	err   error
	turns [][]assistant.Turn
}

func (c *fakeAssistantClient) Complete(ctx context.Context, turns []assistant.Turn) (string, error) {
	c.turns = append(c.turns, turns)
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func newChatService(entries *fakeEntryStore, history *fakeHistoryStore, client *fakeAssistantClient) *ChatService {
	return NewChatService(entries, history, client, zap.NewNop())
}

func TestChatService_EmptyQueryRejected(t *testing.T) {
	for _, query := range []string{"", "   ", "\n\t"} {
		history := &fakeHistoryStore{}
		client := &fakeAssistantClient{reply: "hi"}
		svc := newChatService(&fakeEntryStore{}, history, client)

		_, err := svc.Ask(context.Background(), query)
		var verrs dto.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("Ask(%q) error = %v, want ValidationErrors", query, err)
		}
		if verrs[0].Msg != "Query must not be empty." {
			t.Errorf("Msg = %q, want query message", verrs[0].Msg)
		}
		if len(history.messages) != 0 {
			t.Errorf("Ask(%q) appended %d messages, want 0", query, len(history.messages))
		}
		if len(client.turns) != 0 {
			t.Errorf("Ask(%q) invoked the assistant, want no invocation", query)
		}
	}
}

func TestChatService_SuccessAppendsBalancedTurn(t *testing.T) {
	history := &fakeHistoryStore{}
	client := &fakeAssistantClient{reply: "Your balance is $100."}
	svc := newChatService(&fakeEntryStore{entries: []*models.Entry{salaryEntry()}}, history, client)

	reply, err := svc.Ask(context.Background(), "  What is my balance?  ")
	if err != nil {
		t.Fatalf("Ask() error = %v, want nil", err)
	}
	if reply != "Your balance is $100." {
		t.Errorf("Ask() = %q, want assistant reply", reply)
	}

	if len(history.messages) != 2 {
		t.Fatalf("appended %d messages, want 2", len(history.messages))
	}
	if !history.messages[0].IsUser || history.messages[0].Message != "What is my balance?" {
		t.Errorf("first message = %+v, want trimmed user question", history.messages[0])
	}
	if history.messages[1].IsUser || history.messages[1].Message != "Your balance is $100." {
		t.Errorf("second message = %+v, want assistant reply", history.messages[1])
	}
}

func TestChatService_AssistantFailureSubstitutesFallback(t *testing.T) {
	history := &fakeHistoryStore{}
	client := &fakeAssistantClient{err: errors.New("upstream unavailable")}
	svc := newChatService(&fakeEntryStore{}, history, client)

	reply, err := svc.Ask(context.Background(), "What is my balance?")
	if err != nil {
		t.Fatalf("Ask() error = %v, want nil: model failure must not abort the request", err)
	}
	if reply != FallbackMessage {
		t.Errorf("Ask() = %q, want fallback message", reply)
	}

	if len(history.messages) != 2 {
		t.Fatalf("appended %d messages, want 2", len(history.messages))
	}
	if history.messages[1].Message != FallbackMessage || history.messages[1].IsUser {
		t.Errorf("second message = %+v, want persisted fallback reply", history.messages[1])
	}
	if len(client.turns) != 1 {
		t.Errorf("assistant invoked %d times, want exactly 1 (no retry)", len(client.turns))
	}
}

func TestChatService_AssembledTurnsForSingleEntryNoHistory(t *testing.T) {
	history := &fakeHistoryStore{}
	client := &fakeAssistantClient{reply: "ok"}
	svc := newChatService(&fakeEntryStore{entries: []*models.Entry{salaryEntry()}}, history, client)

	if _, err := svc.Ask(context.Background(), "What is my balance?"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if len(client.turns) != 1 {
		t.Fatalf("assistant invoked %d times, want 1", len(client.turns))
	}
	turns := client.turns[0]
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want system + user", len(turns))
	}
	if turns[0].Role != assistant.RoleSystem {
		t.Errorf("turns[0].Role = %q, want system", turns[0].Role)
	}
	wantLine := "INCOME: 100 (Salary) - Notes: undefined - Date: 2024-01-01T00:00:00.000Z"
	if !strings.Contains(turns[0].Content, wantLine) {
		t.Errorf("system turn %q does not contain ledger line %q", turns[0].Content, wantLine)
	}
	if turns[1].Role != assistant.RoleUser || turns[1].Content != "What is my balance?" {
		t.Errorf("turns[1] = %+v, want user question", turns[1])
	}
}

func TestChatService_HistoryExcludesCurrentQuestionFromPrompt(t *testing.T) {
	history := &fakeHistoryStore{}
	client := &fakeAssistantClient{reply: "first answer"}
	svc := newChatService(&fakeEntryStore{entries: []*models.Entry{salaryEntry()}}, history, client)

	if _, err := svc.Ask(context.Background(), "first question"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if _, err := svc.Ask(context.Background(), "second question"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	second := client.turns[1]
	// system + two persisted turns + the new question
	if len(second) != 4 {
		t.Fatalf("got %d turns, want 4", len(second))
	}
	if second[1].Content != "first question" || second[1].Role != assistant.RoleUser {
		t.Errorf("second[1] = %+v, want prior user turn", second[1])
	}
	if second[2].Content != "first answer" || second[2].Role != assistant.RoleAssistant {
		t.Errorf("second[2] = %+v, want prior assistant turn", second[2])
	}
	if second[3].Content != "second question" {
		t.Errorf("second[3] = %+v, want the new question last", second[3])
	}
}

func TestChatService_HistoryReadsAscending(t *testing.T) {
	history := &fakeHistoryStore{}
	_ = history.Append(context.Background(), &models.ChatMessage{Message: "Hello", IsUser: true})
	svc := newChatService(&fakeEntryStore{}, history, &fakeAssistantClient{reply: "ok"})

	messages, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(messages) != 1 || messages[0].Message != "Hello" {
		t.Errorf("History() = %+v, want the appended message", messages)
	}
}
