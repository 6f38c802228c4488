package Controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"Garage/Models"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PhotoController handles order photo uploads and listing.
type PhotoController struct {
	DB *gorm.DB
}

// NewPhotoController creates a new PhotoController
func NewPhotoController(db *gorm.DB) *PhotoController {
	return &PhotoController{DB: db}
}

// Upload handles POST /api/orders/:id/photos. The full-size image is
// stored as-is; a 320px thumbnail is generated next to it.
func (c *PhotoController) Upload(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var order Models.RepairOrder
	if err := c.DB.First(&order, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No photo provided"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only JPEG and PNG images are accepted"})
	}

	photoDir := Models.AppSettings.PhotoDir
	if err := os.MkdirAll(photoDir, 0755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare photo storage"})
	}

	name := fmt.Sprintf("order_%d_%d%s", order.ID, time.Now().UnixNano(), ext)
	fullPath := filepath.Join(photoDir, name)

	if err := ctx.SaveFile(file, fullPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save photo"})
	}

	thumbName := ""
	img, err := imaging.Open(fullPath)
	if err == nil {
		thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
		thumbName = "thumb_" + name
		if err := imaging.Save(thumb, filepath.Join(photoDir, thumbName)); err != nil {
			thumbName = ""
		}
	}

	user := ctx.Locals("user").(Models.User)

	photo := Models.OrderPhoto{
		OrderID:       order.ID,
		UploadedBy:    user.ID,
		Caption:       ctx.FormValue("caption"),
		Path:          name,
		ThumbnailPath: thumbName,
	}
	if err := c.DB.Create(&photo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record photo"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(photo)
}

// List handles GET /api/orders/:id/photos
func (c *PhotoController) List(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var photos []Models.OrderPhoto
	if err := c.DB.Where("order_id = ?", id).Order("created_at ASC").Find(&photos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve photos"})
	}

	return ctx.JSON(photos)
}

// Delete handles DELETE /api/photos/:id. Files stay on disk; only the
// record is removed.
func (c *PhotoController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid photo ID"})
	}

	var photo Models.OrderPhoto
	if err := c.DB.First(&photo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
	}

	c.DB.Delete(&photo)

	return ctx.JSON(fiber.Map{"message": "Photo deleted successfully"})
}
