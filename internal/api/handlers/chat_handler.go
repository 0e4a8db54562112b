package handlers

import (
	"errors"

	"staffmatch/internal/dto"
	"staffmatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService    *service.ChatService
	summaryService *service.SummaryService
	indexService   *service.IndexService
	logger         *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, summaryService *service.SummaryService, indexService *service.IndexService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		summaryService: summaryService,
		indexService:   indexService,
		logger:         logger,
	}
}

// Chat godoc
// @Summary Run one conversation turn with the staffing assistant
// @Description Dispatches to plain or retrieval-augmented mode based on the caller's role tag
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.chatService.Chat(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedModel):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": service.ErrUnsupportedModel.Error(),
			})
		case errors.Is(err, service.ErrUnknownUserRole):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "user_role must be one of: manager, consultant",
			})
		default:
			h.logger.Error("Chat failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Chat failed",
			})
		}
	}

	return c.JSON(resp)
}

// Summarize godoc
// @Summary Summarize a conversation into a stored opportunity
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.SummarizeRequest true "Summarize request"
// @Success 200 {object} dto.SummarizeResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /summarize [post]
func (h *ChatHandler) Summarize(c *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.summaryService.Summarize(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedModel) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": service.ErrUnsupportedModel.Error(),
			})
		}
		h.logger.Error("Summarization failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Summarization failed",
		})
	}

	return c.JSON(resp)
}

// RebuildIndex godoc
// @Summary Rebuild the opportunity vector index from all stored opportunities
// @Description Always answers 200; failures are reported in the success flag
// @Tags chat
// @Produce json
// @Success 200 {object} dto.IndexResponse
// @Router /index-opportunity [get]
func (h *ChatHandler) RebuildIndex(c *fiber.Ctx) error {
	return c.JSON(h.indexService.Rebuild(c.Context()))
}
