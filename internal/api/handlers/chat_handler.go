package handlers

import (
	"errors"

	"moneyflow/internal/dto"
	"moneyflow/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// History godoc
// @Summary List the conversation transcript
// @Produce json
// @Success 200 {array} dto.ChatMessageResponse
// @Router /chats [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	messages, err := h.chatService.History(c.Context())
	if err != nil {
		h.logger.Error("Failed to list chat history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list chat history",
		})
	}

	return c.JSON(dto.NewChatMessageResponses(messages))
}

// Ask godoc
// @Summary Ask the financial assistant a question
// @Accept json
// @Produce json
// @Param query body dto.ChatRequest true "User query"
// @Success 200 {object} dto.ChatResponse
// @Failure 401 {array} dto.ValidationError
// @Router /chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reply, err := h.chatService.Ask(c.Context(), req.Query)
	if err != nil {
		var verrs dto.ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusUnauthorized).JSON(verrs)
		}
		h.logger.Error("Failed to answer query", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to answer query",
		})
	}

	return c.JSON(dto.ChatResponse{Message: reply})
}
