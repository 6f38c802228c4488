package Controllers

import (
	"strconv"

	"Garage/Models"
	"Garage/Suppliers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SupplierController handles supplier and price quote endpoints
type SupplierController struct {
	DB *gorm.DB
}

// NewSupplierController creates a new SupplierController
func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

// GetSuppliers lists registered suppliers
func (c *SupplierController) GetSuppliers(ctx *fiber.Ctx) error {
	var suppliers []Models.Supplier
	if err := c.DB.Find(&suppliers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve suppliers"})
	}

	return ctx.JSON(suppliers)
}

// CreateSupplier registers a supplier
func (c *SupplierController) CreateSupplier(ctx *fiber.Ctx) error {
	var req Models.SupplierRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	supplier := Models.Supplier{
		Name:         req.Name,
		PriceListURL: req.PriceListURL,
		Contact:      req.Contact,
	}
	if err := c.DB.Create(&supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create supplier"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(supplier)
}

// DeleteSupplier removes a supplier and keeps its quotes soft deleted
func (c *SupplierController) DeleteSupplier(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var supplier Models.Supplier
	if err := c.DB.First(&supplier, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
	}

	c.DB.Delete(&supplier)

	return ctx.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}

// FetchQuotes scrapes a supplier's price list on demand
func (c *SupplierController) FetchQuotes(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var supplier Models.Supplier
	if err := c.DB.First(&supplier, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
	}

	count, err := Suppliers.FetchPriceList(c.DB, &supplier)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"message": "Price list fetched",
		"quotes":  count,
	})
}

// GetQuotes lists stored quotes for a material code
func (c *SupplierController) GetQuotes(ctx *fiber.Ctx) error {
	code := ctx.Query("material_code")
	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "material_code is required"})
	}

	var quotes []Models.SupplierQuote
	err := c.DB.Preload("Supplier").
		Where("material_code = ?", code).
		Order("price ASC").
		Find(&quotes).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve quotes"})
	}

	return ctx.JSON(quotes)
}

// CompareLowStock handles GET /api/suppliers/restock-comparison
func (c *SupplierController) CompareLowStock(ctx *fiber.Ctx) error {
	comparisons, err := Suppliers.CompareLowStock(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute comparison"})
	}

	return ctx.JSON(comparisons)
}
