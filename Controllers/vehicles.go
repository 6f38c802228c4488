package Controllers

import (
	"strconv"
	"strings"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VehicleController handles vehicle-related API endpoints
type VehicleController struct {
	DB *gorm.DB
}

// NewVehicleController creates a new VehicleController
func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

// GetMyVehicles retrieves the logged-in customer's vehicles
func (c *VehicleController) GetMyVehicles(ctx *fiber.Ctx) error {
	user := ctx.Locals("user").(Models.User)

	var vehicles []Models.Vehicle
	if err := c.DB.Where("user_id = ?", user.ID).Find(&vehicles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicles"})
	}

	return ctx.JSON(vehicles)
}

// GetVehicles retrieves all vehicles (admin)
func (c *VehicleController) GetVehicles(ctx *fiber.Ctx) error {
	var vehicles []Models.Vehicle
	if err := c.DB.Preload("Owner").Find(&vehicles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicles"})
	}

	return ctx.JSON(vehicles)
}

// GetVehicle retrieves a single vehicle by ID
func (c *VehicleController) GetVehicle(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := c.DB.Preload("Owner").First(&vehicle, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	user := ctx.Locals("user").(Models.User)
	if user.Permission < Models.PermissionAdmin && vehicle.UserID != user.ID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your vehicle"})
	}

	return ctx.JSON(vehicle)
}

// CreateVehicle registers a vehicle for the logged-in customer
func (c *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {
	var req Models.VehicleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	user := ctx.Locals("user").(Models.User)

	vehicle := Models.Vehicle{
		UserID:       user.ID,
		LicensePlate: req.LicensePlate,
		VIN:          req.VIN,
		VehicleModel: req.VehicleModel,
		Manufacturer: req.Manufacturer,
		Year:         req.Year,
		Color:        req.Color,
		Mileage:      req.Mileage,
	}

	if err := c.DB.Create(&vehicle).Error; err != nil {
		// Check if it's a unique constraint error
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A vehicle with this plate or VIN already exists",
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create vehicle",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(vehicle)
}

// UpdateVehicle updates an existing vehicle
func (c *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := c.DB.First(&vehicle, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	user := ctx.Locals("user").(Models.User)
	if user.Permission < Models.PermissionAdmin && vehicle.UserID != user.ID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your vehicle"})
	}

	var req Models.UpdateVehicleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.VehicleModel != nil {
		vehicle.VehicleModel = *req.VehicleModel
	}
	if req.Manufacturer != nil {
		vehicle.Manufacturer = *req.Manufacturer
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}

	if err := c.DB.Save(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicle"})
	}

	return ctx.JSON(vehicle)
}

// DeleteVehicle soft deletes a vehicle
func (c *VehicleController) DeleteVehicle(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := c.DB.First(&vehicle, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	c.DB.Delete(&vehicle)

	return ctx.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}
