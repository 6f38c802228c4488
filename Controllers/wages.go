package Controllers

import (
	"strconv"
	"time"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WageController handles payroll API endpoints
type WageController struct {
	DB *gorm.DB
}

// NewWageController creates a new WageController
func NewWageController(db *gorm.DB) *WageController {
	return &WageController{DB: db}
}

// accrueWage folds one completed order's labor into the worker's wage
// row for the period, creating the row on first accrual. Regular pay
// lands in Commission and overtime in OvertimePay so the two never
// overlap in TotalAmount. Must run inside the completion transaction;
// the row lock serializes concurrent completions for the same worker.
func accrueWage(tx *gorm.DB, workerID uint, period string, regularPay, overtimeHours, overtimePay float64) error {
	var wage Models.Wage
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("worker_id = ? AND pay_period = ?", workerID, period).
		First(&wage).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		wage = Models.Wage{
			WorkerID:  workerID,
			PayPeriod: period,
			Status:    Models.WagePending,
		}
	}

	wage.Commission += regularPay
	wage.OvertimeHours += overtimeHours
	wage.OvertimePay += overtimePay
	wage.Recalculate()

	return tx.Save(&wage).Error
}

// GetWages lists wage records, filterable by period and worker (admin)
func (c *WageController) GetWages(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Worker")
	if period := ctx.Query("period"); period != "" {
		query = query.Where("pay_period = ?", period)
	}
	if workerID := ctx.Query("worker_id"); workerID != "" {
		query = query.Where("worker_id = ?", workerID)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var wages []Models.Wage
	if err := query.Order("pay_period DESC, worker_id ASC").Find(&wages).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve wages"})
	}

	return ctx.JSON(wages)
}

// GetWage retrieves a single wage record by ID
func (c *WageController) GetWage(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wage ID"})
	}

	var wage Models.Wage
	if err := c.DB.Preload("Worker").First(&wage, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wage record not found"})
	}

	return ctx.JSON(wage)
}

// MarkPaid transitions a pending wage record to paid and stamps the
// pay date. Paying twice is a state error, not a second payment.
func (c *WageController) MarkPaid(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wage ID"})
	}

	var wage Models.Wage
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&wage, id).Error; err != nil {
			return Models.ErrNotFound
		}

		if wage.Status != Models.WagePending {
			return &Models.StateTransitionError{
				Entity:   "wage",
				Current:  string(wage.Status),
				Required: string(Models.WagePending),
			}
		}

		today := datatypes.Date(time.Now())
		wage.Status = Models.WagePaid
		wage.PayDate = &today
		return tx.Save(&wage).Error
	})
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Wage marked as paid",
		"data":    wage,
	})
}

// Adjust edits the manual wage components (base salary, bonus,
// deductions) and recomputes the total. Accrued commission and overtime
// only ever change through order completion.
func (c *WageController) Adjust(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wage ID"})
	}

	var req Models.AdjustWageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	var wage Models.Wage
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&wage, id).Error; err != nil {
			return Models.ErrNotFound
		}

		if wage.Status == Models.WagePaid {
			return &Models.StateTransitionError{
				Entity:   "wage",
				Current:  string(wage.Status),
				Required: string(Models.WagePending),
			}
		}

		if req.BaseSalary != nil {
			wage.BaseSalary = *req.BaseSalary
		}
		if req.Bonus != nil {
			wage.Bonus = *req.Bonus
		}
		if req.Deductions != nil {
			wage.Deductions = *req.Deductions
		}
		wage.Recalculate()
		return tx.Save(&wage).Error
	})
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Wage adjusted",
		"data":    wage,
	})
}
