package dto

import "moneyflow/internal/models"

type ChatRequest struct {
	Query string `json:"query"`
}

type ChatResponse struct {
	Message string `json:"message"`
}

type ChatMessageResponse struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	IsUser    bool   `json:"isUser"`
	Timestamp string `json:"timestamp"`
}

func NewChatMessageResponses(messages []*models.ChatMessage) []ChatMessageResponse {
	responses := make([]ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, ChatMessageResponse{
			ID:        m.ID,
			Message:   m.Message,
			IsUser:    m.IsUser,
			Timestamp: m.Timestamp.UTC().Format(models.TimeLayout),
		})
	}
	return responses
}
