package Controllers

import (
	"strconv"
	"strings"
	"time"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaterialController handles the materials inventory API endpoints
type MaterialController struct {
	DB *gorm.DB
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// CheckStock reports whether quantity units of the material are on hand.
func CheckStock(db *gorm.DB, materialID uint, quantity int) error {
	var material Models.Material
	if err := db.First(&material, materialID).Error; err != nil {
		return Models.ErrNotFound
	}
	if material.StockQuantity < quantity {
		return &Models.InsufficientStockError{
			MaterialName: material.Name,
			Requested:    quantity,
			Available:    material.StockQuantity,
		}
	}
	return nil
}

// ConsumeMaterial decrements stock and writes the consumption record
// with a unit-price snapshot. Must run inside the caller's transaction;
// the row lock makes the check-and-decrement atomic under concurrent
// completions.
func ConsumeMaterial(tx *gorm.DB, orderID uint, materialID uint, quantity int, usedAt time.Time) (*Models.MaterialConsumption, error) {
	var material Models.Material
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&material, materialID).Error; err != nil {
		return nil, Models.ErrNotFound
	}

	if material.StockQuantity < quantity {
		return nil, &Models.InsufficientStockError{
			MaterialName: material.Name,
			Requested:    quantity,
			Available:    material.StockQuantity,
		}
	}

	consumption := Models.MaterialConsumption{
		OrderID:      orderID,
		MaterialID:   material.ID,
		QuantityUsed: quantity,
		UnitPrice:    material.UnitPrice,
		TotalCost:    material.UnitPrice * float64(quantity),
		UsedAt:       usedAt,
	}
	if err := tx.Create(&consumption).Error; err != nil {
		return nil, err
	}

	material.StockQuantity -= quantity
	if err := tx.Save(&material).Error; err != nil {
		return nil, err
	}

	return &consumption, nil
}

// GetMaterials retrieves all materials
func (c *MaterialController) GetMaterials(ctx *fiber.Ctx) error {
	query := c.DB
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var materials []Models.Material
	if err := query.Find(&materials).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve materials"})
	}

	return ctx.JSON(materials)
}

// GetMaterial retrieves a single material by ID
func (c *MaterialController) GetMaterial(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid material ID"})
	}

	var material Models.Material
	if err := c.DB.First(&material, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	return ctx.JSON(material)
}

// CreateMaterial adds a material to the catalog
func (c *MaterialController) CreateMaterial(ctx *fiber.Ctx) error {
	var req Models.MaterialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	material := Models.Material{
		MaterialCode:  req.MaterialCode,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		Unit:          req.Unit,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
	}

	if err := c.DB.Create(&material).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A material with this code already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create material",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(material)
}

// UpdateMaterial updates catalog fields. Stock is only changed through
// Restock and order completion, never through this endpoint.
func (c *MaterialController) UpdateMaterial(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid material ID"})
	}

	var material Models.Material
	if err := c.DB.First(&material, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	var req Models.UpdateMaterialRequest
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
		material.Name = *req.Name
	}
	if req.Description != nil {
		material.Description = *req.Description
	}
	if req.Category != nil {
		material.Category = *req.Category
	}
	if req.UnitPrice != nil {
		material.UnitPrice = *req.UnitPrice
	}
	if req.Unit != nil {
		material.Unit = *req.Unit
	}
	if req.MinStockLevel != nil {
		material.MinStockLevel = *req.MinStockLevel
	}

	if err := c.DB.Save(&material).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update material"})
	}

	return ctx.JSON(material)
}

// Restock increments a material's stock quantity
func (c *MaterialController) Restock(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid material ID"})
	}

	var req Models.RestockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	var material Models.Material
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&material, id).Error; err != nil {
			return Models.ErrNotFound
		}
		material.StockQuantity += req.Quantity
		material.LastPurchaseDate = datatypes.Date(time.Now())
		return tx.Save(&material).Error
	})
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Material restocked successfully",
		"data":    material,
	})
}

// GetLowStock lists materials at or below their warning level, or below
// the ?threshold= override.
func (c *MaterialController) GetLowStock(ctx *fiber.Ctx) error {
	var materials []Models.Material
	var err error

	if raw := ctx.Query("threshold"); raw != "" {
		threshold, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid threshold"})
		}
		err = c.DB.Where("stock_quantity <= ?", threshold).Order("stock_quantity ASC").Find(&materials).Error
	} else {
		err = c.DB.Where("stock_quantity <= min_stock_level").Order("stock_quantity ASC").Find(&materials).Error
	}

	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve materials"})
	}

	return ctx.JSON(fiber.Map{
		"data":  materials,
		"count": len(materials),
	})
}

// DeleteMaterial soft deletes a material
func (c *MaterialController) DeleteMaterial(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid material ID"})
	}

	var material Models.Material
	if err := c.DB.First(&material, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	c.DB.Delete(&material)

	return ctx.JSON(fiber.Map{"message": "Material deleted successfully"})
}
