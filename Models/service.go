package Models

import (
	"gorm.io/gorm"
)

// Service is a catalog entry for standard shop services (inspection,
// oil change, alignment...). Attached to orders by admins; feeds the
// order's service subtotal.
type Service struct {
	gorm.Model
	ServiceCode   string  `json:"service_code" gorm:"size:20;not null;uniqueIndex"`
	Name          string  `json:"name" gorm:"size:100;not null"`
	Description   string  `json:"description" gorm:"type:text"`
	Category      string  `json:"category" gorm:"size:50"`
	StandardPrice float64 `json:"standard_price" gorm:"not null"`
	EstimatedTime float64 `json:"estimated_time"`
}

// RepairOrderService joins an order to a catalog service with a price
// snapshot taken when the service was attached.
type RepairOrderService struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ServiceID uint    `json:"service_id" gorm:"not null;index"`
	Price     float64 `json:"price" gorm:"not null"`

	// Relationships
	Service Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

type ServiceRequest struct {
	ServiceCode   string  `json:"service_code" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	StandardPrice float64 `json:"standard_price" validate:"required,gt=0"`
	EstimatedTime float64 `json:"estimated_time" validate:"gte=0"`
}
