package Controllers

import (
	"time"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AnalyticsController serves shop-level aggregates for the admin
// dashboard and reporting endpoints.
type AnalyticsController struct {
	DB *gorm.DB
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

type statusCount struct {
	Status Models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type monthlyRevenue struct {
	Month   string  `json:"month"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Summary handles GET /api/analytics/summary
func (c *AnalyticsController) Summary(ctx *fiber.Ctx) error {
	var byStatus []statusCount
	if err := c.DB.Model(&Models.RepairOrder{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute summary"})
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var monthRevenue float64
	c.DB.Model(&Models.RepairOrder{}).
		Where("status = ? AND actual_completion_time >= ?", Models.OrderCompleted, monthStart).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&monthRevenue)

	var lowStock int64
	c.DB.Model(&Models.Material{}).
		Where("stock_quantity <= min_stock_level").
		Count(&lowStock)

	var activeWorkers int64
	c.DB.Model(&Models.Worker{}).
		Where("status = ?", Models.WorkerActive).
		Count(&activeWorkers)

	return ctx.JSON(fiber.Map{
		"orders_by_status":    byStatus,
		"revenue_this_month":  monthRevenue,
		"low_stock_materials": lowStock,
		"active_workers":      activeWorkers,
	})
}

// RevenueByMonth handles GET /api/analytics/revenue. Revenue counts at
// completion time, not creation time.
func (c *AnalyticsController) RevenueByMonth(ctx *fiber.Ctx) error {
	months := 12
	if raw := ctx.Query("months"); raw != "" {
		if start, err := time.Parse("2006-01", raw); err == nil {
			// Accept ?months=YYYY-MM as a single-month filter
			end := start.AddDate(0, 1, 0)
			var row monthlyRevenue
			row.Month = raw
			c.DB.Model(&Models.RepairOrder{}).
				Where("status = ? AND actual_completion_time >= ? AND actual_completion_time < ?",
					Models.OrderCompleted, start, end).
				Select("COUNT(*) as orders, COALESCE(SUM(total_cost), 0) as revenue").
				Scan(&row)
			return ctx.JSON([]monthlyRevenue{row})
		}
	}

	since := time.Now().AddDate(0, -months, 0)

	var orders []Models.RepairOrder
	err := c.DB.Where("status = ? AND actual_completion_time >= ?", Models.OrderCompleted, since).
		Find(&orders).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute revenue"})
	}

	buckets := make(map[string]*monthlyRevenue)
	for _, order := range orders {
		if order.ActualCompletionTime == nil {
			continue
		}
		key := order.ActualCompletionTime.Format("2006-01")
		bucket, ok := buckets[key]
		if !ok {
			bucket = &monthlyRevenue{Month: key}
			buckets[key] = bucket
		}
		bucket.Orders++
		bucket.Revenue += order.TotalCost
	}

	result := make([]monthlyRevenue, 0, len(buckets))
	cursor := time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(time.Now()) {
		key := cursor.Format("2006-01")
		if bucket, ok := buckets[key]; ok {
			result = append(result, *bucket)
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	return ctx.JSON(result)
}

// WorkerUtilization handles GET /api/analytics/workers: per-worker
// completed order counts and earned labor for a pay period.
func (c *AnalyticsController) WorkerUtilization(ctx *fiber.Ctx) error {
	period := ctx.Query("period", Models.PayPeriodOf(time.Now()))
	start, err := time.Parse("2006-01", period)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Period must be YYYY-MM"})
	}
	end := start.AddDate(0, 1, 0)

	type workerRow struct {
		WorkerID  uint    `json:"worker_id"`
		Name      string  `json:"name"`
		Completed int64   `json:"completed_orders"`
		Hours     float64 `json:"hours"`
		Earned    float64 `json:"earned"`
	}

	var rows []workerRow
	err = c.DB.Model(&Models.OrderAssignment{}).
		Select("order_assignments.worker_id, workers.name, COUNT(*) as completed, SUM(order_assignments.work_hours) as hours, SUM(order_assignments.total_payment) as earned").
		Joins("JOIN workers ON workers.id = order_assignments.worker_id").
		Where("order_assignments.status = ? AND order_assignments.end_time >= ? AND order_assignments.end_time < ?",
			Models.AssignmentCompleted, start, end).
		Group("order_assignments.worker_id, workers.name").
		Order("earned DESC").
		Scan(&rows).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute utilization"})
	}

	return ctx.JSON(fiber.Map{
		"period": period,
		"data":   rows,
	})
}

// Dashboard renders the admin HTML dashboard view.
func (c *AnalyticsController) Dashboard(ctx *fiber.Ctx) error {
	var pending, inProgress, completed int64
	c.DB.Model(&Models.RepairOrder{}).Where("status = ?", Models.OrderPending).Count(&pending)
	c.DB.Model(&Models.RepairOrder{}).Where("status = ?", Models.OrderInProgress).Count(&inProgress)
	c.DB.Model(&Models.RepairOrder{}).Where("status = ?", Models.OrderCompleted).Count(&completed)

	var lowStock []Models.Material
	c.DB.Where("stock_quantity <= min_stock_level").Order("stock_quantity ASC").Limit(10).Find(&lowStock)

	return ctx.Render("dashboard", fiber.Map{
		"ShopName":   Models.AppSettings.ShopName,
		"Pending":    pending,
		"InProgress": inProgress,
		"Completed":  completed,
		"LowStock":   lowStock,
	})
}
