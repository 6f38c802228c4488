package Models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier is a parts vendor whose published price list can be scraped
// for restock comparisons.
type Supplier struct {
	gorm.Model
	Name         string `json:"name" gorm:"size:100;not null"`
	PriceListURL string `json:"price_list_url" gorm:"size:255;not null"`
	Contact      string `json:"contact" gorm:"size:100"`
}

// SupplierQuote is one scraped price-list row, matched to a catalog
// material by code when possible.
type SupplierQuote struct {
	gorm.Model
	SupplierID   uint      `json:"supplier_id" gorm:"not null;index"`
	MaterialCode string    `json:"material_code" gorm:"size:50;not null;index"`
	Description  string    `json:"description" gorm:"size:255"`
	Price        float64   `json:"price" gorm:"not null"`
	FetchedAt    time.Time `json:"fetched_at" gorm:"not null"`

	// Relationships
	Supplier Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

type SupplierRequest struct {
	Name         string `json:"name" validate:"required"`
	PriceListURL string `json:"price_list_url" validate:"required,url"`
	Contact      string `json:"contact"`
}
