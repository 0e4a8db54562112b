package handlers

import (
	"staffmatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type OpportunityHandler struct {
	oppService *service.OpportunityService
	logger     *zap.Logger
}

func NewOpportunityHandler(oppService *service.OpportunityService, logger *zap.Logger) *OpportunityHandler {
	return &OpportunityHandler{
		oppService: oppService,
		logger:     logger,
	}
}

// List godoc
// @Summary List all stored opportunities
// @Tags opportunities
// @Produce json
// @Success 200 {array} dto.OpportunityResponse
// @Router /opportunities [get]
func (h *OpportunityHandler) List(c *fiber.Ctx) error {
	opportunities, err := h.oppService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list opportunities", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load opportunities",
		})
	}
	return c.JSON(opportunities)
}
