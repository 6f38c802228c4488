package Controllers

import (
	"strconv"
	"time"

	"Garage/Models"
	"Garage/Reports"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportController serves downloadable Excel reports
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// WageSheet handles GET /api/reports/wages?period=YYYY-MM
func (c *ReportController) WageSheet(ctx *fiber.Ctx) error {
	period := ctx.Query("period", Models.PayPeriodOf(time.Now()))
	if _, err := time.Parse("2006-01", period); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "period must be YYYY-MM"})
	}

	filename, err := Reports.WageSheet(c.DB, period)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build wage sheet"})
	}

	return ctx.SendFile(filename, true)
}

// LowStockSheet handles GET /api/reports/low-stock
func (c *ReportController) LowStockSheet(ctx *fiber.Ctx) error {
	filename, err := Reports.LowStockSheet(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build low stock sheet"})
	}

	return ctx.SendFile(filename, true)
}

// Invoice handles GET /api/reports/invoice/:id
func (c *ReportController) Invoice(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	filename, err := Reports.OrderInvoice(c.DB, uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	return ctx.SendFile(filename, true)
}
