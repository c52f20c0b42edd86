package handlers

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/internal/api/presenters"
	"Homestock-Backend/pkg/report"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		AddConsumption(c *fiber.Ctx) error
		AddExpense(c *fiber.Ctx) error
		AddWastage(c *fiber.Ctx) error

		GetDashboard(c *fiber.Ctx) error
		GetConsumptionReport(c *fiber.Ctx) error
		GetExpenseReport(c *fiber.Ctx) error
		GetWastageReport(c *fiber.Ctx) error

		GetConsumptionTrends(c *fiber.Ctx) error
		GetExpenseTrends(c *fiber.Ctx) error
		GetWastageTrends(c *fiber.Ctx) error

		ExportReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func recordErrorStatus(err error) int {
	if errors.Is(err, domain.ErrUserNotAllowed) {
		return fiber.StatusForbidden
	}
	return fiber.StatusBadRequest
}

func (h *reportHandler) AddConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddConsumptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddConsumption, err)
	}

	res, err := h.reportService.AddConsumption(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, recordErrorStatus(err), domain.MessageFailedAddConsumption, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddConsumption)
}

func (h *reportHandler) AddExpense(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddExpenseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddExpense, err)
	}

	res, err := h.reportService.AddExpense(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, recordErrorStatus(err), domain.MessageFailedAddExpense, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddExpense)
}

func (h *reportHandler) AddWastage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddWastageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWastage, err)
	}

	res, err := h.reportService.AddWastage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, recordErrorStatus(err), domain.MessageFailedAddWastage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddWastage)
}

func (h *reportHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reportService.GetDashboard(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *reportHandler) GetConsumptionReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	filter := report.ParseFilter(func(key string) string { return c.Query(key) }, "min_quantity", "max_quantity")

	res, err := h.reportService.GetConsumptionReport(c.Context(), userID, filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) GetExpenseReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	filter := report.ParseFilter(func(key string) string { return c.Query(key) }, "min_amount", "max_amount")

	res, err := h.reportService.GetExpenseReport(c.Context(), userID, filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) GetWastageReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	filter := report.ParseFilter(func(key string) string { return c.Query(key) }, "min_quantity", "max_quantity")

	res, err := h.reportService.GetWastageReport(c.Context(), userID, filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}

// The trend endpoints answer the chart contract directly, without the
// success envelope.
func (h *reportHandler) trends(c *fiber.Ctx, kind string) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reportService.GetTrends(c.Context(), userID, kind)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *reportHandler) GetConsumptionTrends(c *fiber.Ctx) error {
	return h.trends(c, report.KindConsumption)
}

func (h *reportHandler) GetExpenseTrends(c *fiber.Ctx) error {
	return h.trends(c, report.KindExpense)
}

func (h *reportHandler) GetWastageTrends(c *fiber.Ctx) error {
	return h.trends(c, report.KindWastage)
}

func (h *reportHandler) ExportReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	kind := c.Params("kind")
	format := c.Params("format")

	minKey, maxKey := "min_quantity", "max_quantity"
	if kind == report.KindExpense {
		minKey, maxKey = "min_amount", "max_amount"
	}
	filter := report.ParseFilter(func(key string) string { return c.Query(key) }, minKey, maxKey)

	res, err := h.reportService.Export(c.Context(), userID, kind, format, filter)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).SendString("Unsupported format")
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportReport, err)
	}

	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.FileName+`"`)
	return c.Status(fiber.StatusOK).Send(res.Content)
}
