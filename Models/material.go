package Models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Material struct {
	gorm.Model
	MaterialCode     string         `json:"material_code" gorm:"size:20;not null;uniqueIndex"`
	Name             string         `json:"name" gorm:"size:100;not null"`
	Description      string         `json:"description" gorm:"type:text"`
	Category         string         `json:"category" gorm:"size:50;not null"`
	UnitPrice        float64        `json:"unit_price" gorm:"not null"`
	Unit             string         `json:"unit" gorm:"size:20;not null"`
	StockQuantity    int            `json:"stock_quantity" gorm:"not null;default:0"`
	MinStockLevel    int            `json:"min_stock_level" gorm:"not null;default:0"`
	LastPurchaseDate datatypes.Date `json:"last_purchase_date"`
}

// MaterialConsumption records one material line consumed by a completed
// order. UnitPrice is snapshotted at the time of use and never re-read
// from the material afterwards.
type MaterialConsumption struct {
	gorm.Model
	OrderID      uint      `json:"order_id" gorm:"not null;index"`
	MaterialID   uint      `json:"material_id" gorm:"not null;index"`
	QuantityUsed int       `json:"quantity_used" gorm:"not null"`
	UnitPrice    float64   `json:"unit_price" gorm:"not null"`
	TotalCost    float64   `json:"total_cost" gorm:"not null"`
	UsedAt       time.Time `json:"used_at" gorm:"not null"`

	// Relationships
	Material Material `json:"material,omitempty" gorm:"foreignKey:MaterialID"`
}

type MaterialRequest struct {
	MaterialCode  string  `json:"material_code" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category" validate:"required"`
	UnitPrice     float64 `json:"unit_price" validate:"required,gt=0"`
	Unit          string  `json:"unit" validate:"required"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	MinStockLevel int     `json:"min_stock_level" validate:"gte=0"`
}

type UpdateMaterialRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	UnitPrice     *float64 `json:"unit_price" validate:"omitempty,gt=0"`
	Unit          *string  `json:"unit"`
	MinStockLevel *int     `json:"min_stock_level" validate:"omitempty,gte=0"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}
