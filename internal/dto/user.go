package dto

import "moneyflow/internal/models"

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt.UTC().Format(models.TimeLayout),
			UpdatedAt: u.UpdatedAt.UTC().Format(models.TimeLayout),
		})
	}
	return responses
}
