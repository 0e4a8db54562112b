package handlers

import (
	"strconv"

	"staffmatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReferenceHandler struct {
	refService *service.ReferenceService
	logger     *zap.Logger
}

func NewReferenceHandler(refService *service.ReferenceService, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		refService: refService,
		logger:     logger,
	}
}

// ListOptions godoc
// @Summary List onboarding options
// @Tags reference
// @Produce json
// @Success 200 {array} dto.OptionResponse
// @Router /options [get]
func (h *ReferenceHandler) ListOptions(c *fiber.Ctx) error {
	options, err := h.refService.ListOptions(c.Context())
	if err != nil {
		h.logger.Error("Failed to list options", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load options",
		})
	}
	return c.JSON(options)
}

// ListQueries godoc
// @Summary List questionnaire entries for an option, ordered by order_num
// @Tags reference
// @Produce json
// @Param option_id path int true "Option ID"
// @Success 200 {array} dto.QueryResponse
// @Failure 422 {object} map[string]string
// @Router /query/{option_id} [get]
func (h *ReferenceHandler) ListQueries(c *fiber.Ctx) error {
	optionID, err := strconv.ParseInt(c.Params("option_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "option_id must be an integer",
		})
	}

	queries, err := h.refService.ListQueries(c.Context(), optionID)
	if err != nil {
		h.logger.Error("Failed to list queries", zap.Error(err), zap.Int64("option_id", optionID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load queries",
		})
	}
	return c.JSON(queries)
}

// ListDepartments godoc
// @Summary List departments
// @Tags reference
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Router /department [get]
func (h *ReferenceHandler) ListDepartments(c *fiber.Ctx) error {
	departments, err := h.refService.ListDepartments(c.Context())
	if err != nil {
		h.logger.Error("Failed to list departments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load departments",
		})
	}
	return c.JSON(departments)
}

// ListDesignations godoc
// @Summary List designations for a department
// @Tags reference
// @Produce json
// @Param department_id path int true "Department ID"
// @Success 200 {array} dto.DesignationResponse
// @Failure 422 {object} map[string]string
// @Router /designation/{department_id} [get]
func (h *ReferenceHandler) ListDesignations(c *fiber.Ctx) error {
	departmentID, err := strconv.ParseInt(c.Params("department_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "department_id must be an integer",
		})
	}

	designations, err := h.refService.ListDesignations(c.Context(), departmentID)
	if err != nil {
		h.logger.Error("Failed to list designations", zap.Error(err), zap.Int64("department_id", departmentID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load designations",
		})
	}
	return c.JSON(designations)
}
