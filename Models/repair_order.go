package Models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

type OrderPriority string

const (
	PriorityLow    OrderPriority = "low"
	PriorityMedium OrderPriority = "medium"
	PriorityHigh   OrderPriority = "high"
	PriorityUrgent OrderPriority = "urgent"
)

type RepairOrder struct {
	gorm.Model
	UserID                  uint          `json:"user_id" gorm:"not null;index"`
	VehicleID               uint          `json:"vehicle_id" gorm:"not null;index"`
	OrderNumber             string        `json:"order_number" gorm:"size:50;not null;uniqueIndex"`
	Description             string        `json:"description" gorm:"type:text;not null"`
	Status                  OrderStatus   `json:"status" gorm:"size:20;not null;default:pending;index"`
	Priority                OrderPriority `json:"priority" gorm:"size:20;not null;default:medium"`
	EstimatedCompletionTime *time.Time    `json:"estimated_completion_time"`
	ActualCompletionTime    *time.Time    `json:"actual_completion_time"`
	TotalLaborCost          float64       `json:"total_labor_cost" gorm:"not null;default:0"`
	TotalMaterialCost       float64       `json:"total_material_cost" gorm:"not null;default:0"`
	TotalServiceCost        float64       `json:"total_service_cost" gorm:"not null;default:0"`
	TotalCost               float64       `json:"total_cost" gorm:"not null;default:0"`
	InternalNotes           string        `json:"internal_notes" gorm:"type:text"`

	// Relationships
	User          User                  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vehicle       Vehicle               `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Assignments   []OrderAssignment     `json:"assignments,omitempty" gorm:"foreignKey:OrderID"`
	Consumptions  []MaterialConsumption `json:"consumptions,omitempty" gorm:"foreignKey:OrderID"`
	OrderServices []RepairOrderService  `json:"order_services,omitempty" gorm:"foreignKey:OrderID"`
}

type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentWorking   AssignmentStatus = "working"
	AssignmentCompleted AssignmentStatus = "completed"
)

// OrderAssignment joins a worker to an order they are working.
// HourlyRate is snapshotted from the worker at assignment time and is
// never re-read from the worker afterwards.
type OrderAssignment struct {
	gorm.Model
	OrderID         uint             `json:"order_id" gorm:"not null;index"`
	WorkerID        uint             `json:"worker_id" gorm:"not null;index"`
	HourlyRate      float64          `json:"hourly_rate" gorm:"not null"`
	WorkHours       float64          `json:"work_hours" gorm:"not null;default:0"`
	TotalPayment    float64          `json:"total_payment" gorm:"not null;default:0"`
	Status          AssignmentStatus `json:"status" gorm:"size:20;not null;default:assigned"`
	StartTime       *time.Time       `json:"start_time"`
	EndTime         *time.Time       `json:"end_time"`
	WorkDescription string           `json:"work_description" gorm:"type:text"`

	// Relationships
	Worker Worker `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

type CreateOrderRequest struct {
	VehicleID               uint   `json:"vehicle_id" validate:"required"`
	Description             string `json:"description" validate:"required"`
	Priority                string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedCompletionTime string `json:"estimated_completion_time"`
}

type UpdateOrderRequest struct {
	Description             *string `json:"description"`
	Priority                *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedCompletionTime *string `json:"estimated_completion_time"`
	InternalNotes           *string `json:"internal_notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	Notes  string `json:"notes"`
}

type MaterialUsage struct {
	MaterialID uint `json:"material_id" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,gt=0"`
}

type CompleteOrderRequest struct {
	WorkHours       float64         `json:"work_hours" validate:"required,gt=0"`
	OvertimeHours   float64         `json:"overtime_hours" validate:"gte=0"`
	WorkDescription string          `json:"work_description"`
	Materials       []MaterialUsage `json:"materials" validate:"dive"`
}

type AttachServiceRequest struct {
	ServiceID uint `json:"service_id" validate:"required"`
}
