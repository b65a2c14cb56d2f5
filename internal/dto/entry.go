package dto

import (
	"encoding/json"

	"moneyflow/internal/models"
)

// EntryRequest is the create/update payload. Amount is a json.Number so
// both `"amount": 100` and `"amount": "100"` are accepted; validation of
// the raw value happens in the service layer.
type EntryRequest struct {
	Type     string      `json:"type"`
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
	Notes    *string     `json:"notes"`
	Date     string      `json:"date"`
}

type EntryResponse struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Notes     *string `json:"notes"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func NewEntryResponse(e *models.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Type:      string(e.Type),
		Amount:    e.Amount,
		Category:  e.Category,
		Notes:     e.Notes,
		Date:      e.Date.UTC().Format(models.TimeLayout),
		CreatedAt: e.CreatedAt.UTC().Format(models.TimeLayout),
		UpdatedAt: e.UpdatedAt.UTC().Format(models.TimeLayout),
	}
}

func NewEntryResponses(entries []*models.Entry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, NewEntryResponse(e))
	}
	return responses
}
