package handlers

import (
	"errors"
	"strconv"

	"moneyflow/internal/dto"
	"moneyflow/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EntryHandler struct {
	entryService *service.EntryService
	logger       *zap.Logger
}

func NewEntryHandler(entryService *service.EntryService, logger *zap.Logger) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
		logger:       logger,
	}
}

// List godoc
// @Summary List all ledger entries
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Router /entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	entries, err := h.entryService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list entries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list entries",
		})
	}

	return c.JSON(dto.NewEntryResponses(entries))
}

// Get godoc
// @Summary Get a single entry
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string
// @Router /entries/{id} [get]
func (h *EntryHandler) Get(c *fiber.Ctx) error {
	id, err := parseEntryID(c)
	if err != nil {
		return entryNotFound(c)
	}

	entry, err := h.entryService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			return entryNotFound(c)
		}
		h.logger.Error("Failed to get entry", zap.Error(err), zap.Int64("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get entry",
		})
	}

	return c.JSON(dto.NewEntryResponse(entry))
}

// Create godoc
// @Summary Create a ledger entry
// @Accept json
// @Produce json
// @Param entry body dto.EntryRequest true "Entry payload"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {array} dto.ValidationError
// @Router /entries [post]
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var req dto.EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := h.entryService.Create(c.Context(), entryInputFromRequest(req))
	if err != nil {
		var verrs dto.ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusUnauthorized).JSON(verrs)
		}
		h.logger.Error("Failed to create entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create entry",
		})
	}

	return c.JSON(dto.NewEntryResponse(entry))
}

// Update godoc
// @Summary Update a ledger entry
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.EntryRequest true "Entry payload"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {array} dto.ValidationError
// @Failure 404 {object} map[string]string
// @Router /entries/{id} [put]
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	id, err := parseEntryID(c)
	if err != nil {
		return entryNotFound(c)
	}

	var req dto.EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := h.entryService.Update(c.Context(), id, entryInputFromRequest(req))
	if err != nil {
		var verrs dto.ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusUnauthorized).JSON(verrs)
		}
		if errors.Is(err, service.ErrEntryNotFound) {
			return entryNotFound(c)
		}
		h.logger.Error("Failed to update entry", zap.Error(err), zap.Int64("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update entry",
		})
	}

	return c.JSON(dto.NewEntryResponse(entry))
}

// Delete godoc
// @Summary Delete a ledger entry
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /entries/{id} [delete]
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseEntryID(c)
	if err != nil {
		return entryNotFound(c)
	}

	if err := h.entryService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			return entryNotFound(c)
		}
		h.logger.Error("Failed to delete entry", zap.Error(err), zap.Int64("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete entry",
		})
	}

	return c.JSON(fiber.Map{"message": "Entry deleted."})
}

func parseEntryID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func entryNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Entry not found."})
}

func entryInputFromRequest(req dto.EntryRequest) service.EntryInput {
	return service.EntryInput{
		Type:     req.Type,
		Amount:   req.Amount.String(),
		Category: req.Category,
		Notes:    req.Notes,
		Date:     req.Date,
	}
}
