package Models

import "gorm.io/gorm"

// OrderPhoto records an image attached to a repair order, typically
// before/after shots taken by the worker. Path and ThumbnailPath are
// relative to the configured photo directory.
type OrderPhoto struct {
	gorm.Model
	OrderID       uint   `json:"order_id" gorm:"not null;index"`
	UploadedBy    uint   `json:"uploaded_by" gorm:"not null"`
	Caption       string `json:"caption" gorm:"size:255"`
	Path          string `json:"path" gorm:"size:255;not null"`
	ThumbnailPath string `json:"thumbnail_path" gorm:"size:255"`
}
