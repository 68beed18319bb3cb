package handlers

import (
	"github.com/adpilot/dashboard/internal/http/dto"
	"github.com/adpilot/dashboard/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reports *services.ReportService
	log     *zap.Logger
}

func NewReportHandler(reports *services.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log}
}

func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.reports.Performance(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: report})
}

func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.reports.ExportCSV(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="campaign-report.csv"`)
	return c.Send(data)
}

func (h *ReportHandler) GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: h.reports.DashboardStats()})
}
