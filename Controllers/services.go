package Controllers

import (
	"strconv"
	"strings"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceController manages the standard service catalog
type ServiceController struct {
	DB *gorm.DB
}

// NewServiceController creates a new ServiceController
func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// GetServices retrieves the service catalog
func (c *ServiceController) GetServices(ctx *fiber.Ctx) error {
	query := c.DB
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var services []Models.Service
	if err := query.Order("service_code ASC").Find(&services).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve services"})
	}

	return ctx.JSON(services)
}

// GetService retrieves a single catalog service
func (c *ServiceController) GetService(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var service Models.Service
	if err := c.DB.First(&service, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	return ctx.JSON(service)
}

// CreateService adds a catalog entry
func (c *ServiceController) CreateService(ctx *fiber.Ctx) error {
	var req Models.ServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	service := Models.Service{
		ServiceCode:   req.ServiceCode,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		StandardPrice: req.StandardPrice,
		EstimatedTime: req.EstimatedTime,
	}

	if err := c.DB.Create(&service).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A service with this code already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService edits a catalog entry. Price changes only affect future
// attachments; already attached services keep their snapshot.
func (c *ServiceController) UpdateService(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var service Models.Service
	if err := c.DB.First(&service, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var req Models.ServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	service.ServiceCode = req.ServiceCode
	service.Name = req.Name
	service.Description = req.Description
	service.Category = req.Category
	service.StandardPrice = req.StandardPrice
	service.EstimatedTime = req.EstimatedTime

	if err := c.DB.Save(&service).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	return ctx.JSON(service)
}

// DeleteService soft deletes a catalog entry
func (c *ServiceController) DeleteService(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var service Models.Service
	if err := c.DB.First(&service, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	c.DB.Delete(&service)

	return ctx.JSON(fiber.Map{"message": "Service deleted successfully"})
}
