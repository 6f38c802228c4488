package Controllers

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkerController handles repair worker API endpoints
type WorkerController struct {
	DB *gorm.DB
}

// NewWorkerController creates a new WorkerController
func NewWorkerController(db *gorm.DB) *WorkerController {
	return &WorkerController{DB: db}
}

// resolveWorker maps the logged-in user to their worker record.
func resolveWorker(db *gorm.DB, ctx *fiber.Ctx) (*Models.Worker, error) {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return nil, Models.ErrNotFound
	}

	var worker Models.Worker
	if err := db.Where("user_id = ?", user.ID).First(&worker).Error; err != nil {
		return nil, Models.ErrNotFound
	}
	return &worker, nil
}

// GetWorkers retrieves all workers
func (c *WorkerController) GetWorkers(ctx *fiber.Ctx) error {
	query := c.DB
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if skillType := ctx.Query("skill_type"); skillType != "" {
		query = query.Where("skill_type = ?", skillType)
	}

	var workers []Models.Worker
	if err := query.Find(&workers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve workers"})
	}

	return ctx.JSON(workers)
}

// GetWorker retrieves a single worker by ID
func (c *WorkerController) GetWorker(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid worker ID"})
	}

	var worker Models.Worker
	if err := c.DB.First(&worker, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
	}

	return ctx.JSON(worker)
}

// CreateWorker registers a new repair worker
func (c *WorkerController) CreateWorker(ctx *fiber.Ctx) error {
	var req Models.WorkerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid date format",
			"message": "hire_date must be in YYYY-MM-DD format",
		})
	}

	certifications, _ := json.Marshal(req.Certifications)

	worker := Models.Worker{
		UserID:         req.UserID,
		EmployeeID:     req.EmployeeID,
		Name:           req.Name,
		Phone:          req.Phone,
		SkillType:      req.SkillType,
		SkillLevel:     req.SkillLevel,
		HourlyRate:     req.HourlyRate,
		Status:         Models.WorkerActive,
		HireDate:       datatypes.Date(hireDate),
		Certifications: certifications,
	}

	if err := c.DB.Create(&worker).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A worker with this employee ID already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create worker",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(worker)
}

// UpdateWorker updates an existing worker. The hourly rate change only
// affects future assignments; existing assignments keep their snapshot.
func (c *WorkerController) UpdateWorker(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid worker ID"})
	}

	var worker Models.Worker
	if err := c.DB.First(&worker, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
	}

	var req Models.UpdateWorkerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.Phone != nil {
		worker.Phone = *req.Phone
	}
	if req.SkillType != nil {
		worker.SkillType = *req.SkillType
	}
	if req.SkillLevel != nil {
		worker.SkillLevel = *req.SkillLevel
	}
	if req.HourlyRate != nil {
		worker.HourlyRate = *req.HourlyRate
	}
	if req.Status != nil {
		worker.Status = Models.WorkerStatus(*req.Status)
	}
	if req.Certifications != nil {
		certifications, _ := json.Marshal(*req.Certifications)
		worker.Certifications = certifications
	}

	if err := c.DB.Save(&worker).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update worker"})
	}

	return ctx.JSON(worker)
}

// DeleteWorker soft deletes a worker
func (c *WorkerController) DeleteWorker(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid worker ID"})
	}

	var worker Models.Worker
	if err := c.DB.First(&worker, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
	}

	c.DB.Delete(&worker)

	return ctx.JSON(fiber.Map{"message": "Worker deleted successfully"})
}

// GetMyWages lists the logged-in worker's wage records, optionally
// bounded by start/end pay periods (YYYY-MM).
func (c *WorkerController) GetMyWages(ctx *fiber.Ctx) error {
	worker, err := resolveWorker(c.DB, ctx)
	if err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No worker profile for this account"})
	}

	query := c.DB.Where("worker_id = ?", worker.ID)
	if start := ctx.Query("start"); start != "" {
		query = query.Where("pay_period >= ?", start)
	}
	if end := ctx.Query("end"); end != "" {
		query = query.Where("pay_period <= ?", end)
	}

	var wages []Models.Wage
	if err := query.Order("pay_period DESC").Find(&wages).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve wages"})
	}

	return ctx.JSON(wages)
}
