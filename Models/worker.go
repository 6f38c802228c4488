package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkerStatus string

const (
	WorkerActive   WorkerStatus = "active"
	WorkerInactive WorkerStatus = "inactive"
	WorkerOnLeave  WorkerStatus = "on_leave"
)

type Worker struct {
	gorm.Model
	UserID         uint           `json:"user_id" gorm:"index"`
	EmployeeID     string         `json:"employee_id" gorm:"size:20;not null;uniqueIndex"`
	Name           string         `json:"name" gorm:"size:100;not null"`
	Phone          string         `json:"phone" gorm:"size:20"`
	SkillType      string         `json:"skill_type" gorm:"size:50;not null"`
	SkillLevel     string         `json:"skill_level" gorm:"size:20;not null"`
	HourlyRate     float64        `json:"hourly_rate" gorm:"not null"`
	Status         WorkerStatus   `json:"status" gorm:"size:20;not null;default:active"`
	HireDate       datatypes.Date `json:"hire_date"`
	Certifications datatypes.JSON `json:"certifications"`

	// Relationships
	User        User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Assignments []OrderAssignment `json:"assignments,omitempty" gorm:"foreignKey:WorkerID"`
	Wages       []Wage            `json:"wages,omitempty" gorm:"foreignKey:WorkerID"`
}

type WorkerRequest struct {
	UserID         uint     `json:"user_id"`
	EmployeeID     string   `json:"employee_id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Phone          string   `json:"phone"`
	SkillType      string   `json:"skill_type" validate:"required"`
	SkillLevel     string   `json:"skill_level" validate:"required,oneof=junior intermediate senior expert"`
	HourlyRate     float64  `json:"hourly_rate" validate:"required,gt=0"`
	HireDate       string   `json:"hire_date" validate:"required"`
	Certifications []string `json:"certifications"`
}

type UpdateWorkerRequest struct {
	Name           *string   `json:"name"`
	Phone          *string   `json:"phone"`
	SkillType      *string   `json:"skill_type"`
	SkillLevel     *string   `json:"skill_level" validate:"omitempty,oneof=junior intermediate senior expert"`
	HourlyRate     *float64  `json:"hourly_rate" validate:"omitempty,gt=0"`
	Status         *string   `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	Certifications *[]string `json:"certifications"`
}
