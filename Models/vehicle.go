package Models

import (
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"not null;index"`
	LicensePlate string `json:"license_plate" gorm:"size:20;not null;uniqueIndex"`
	VIN          string `json:"vin" gorm:"size:50;not null;uniqueIndex"`
	VehicleModel string `json:"vehicle_model" gorm:"size:100;not null"`
	Manufacturer string `json:"manufacturer" gorm:"size:100;not null"`
	Year         int    `json:"year" gorm:"not null"`
	Color        string `json:"color" gorm:"size:50"`
	Mileage      int    `json:"mileage"`

	// Relationships
	Owner User `json:"owner,omitempty" gorm:"foreignKey:UserID"`
}

type VehicleRequest struct {
	LicensePlate string `json:"license_plate" validate:"required"`
	VIN          string `json:"vin" validate:"required"`
	VehicleModel string `json:"vehicle_model" validate:"required"`
	Manufacturer string `json:"manufacturer" validate:"required"`
	Year         int    `json:"year" validate:"required,gte=1950"`
	Color        string `json:"color"`
	Mileage      int    `json:"mileage" validate:"gte=0"`
}

type UpdateVehicleRequest struct {
	VehicleModel *string `json:"vehicle_model"`
	Manufacturer *string `json:"manufacturer"`
	Year         *int    `json:"year"`
	Color        *string `json:"color"`
	Mileage      *int    `json:"mileage"`
}
