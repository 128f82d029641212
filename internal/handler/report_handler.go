package handler

import (
	"github.com/rajifPy/kantin-stok/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetStats returns dashboard statistics.
// Query params: period (today|week|month|year, default today)
func (h *ReportHandler) GetStats(c *fiber.Ctx) error {
	period := c.Query("period", "today")

	stats, err := h.service.GetStats(period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// Export mengunduh riwayat transaksi periode tersebut sebagai .xlsx.
// GET /reports/export?period=
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	period := c.Query("period", "today")

	content, filename, err := h.service.ExportTransactions(period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export report"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}
