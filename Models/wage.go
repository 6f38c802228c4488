package Models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WageStatus string

const (
	WagePending   WageStatus = "pending"
	WagePaid      WageStatus = "paid"
	WageConfirmed WageStatus = "confirmed"
	WageDisputed  WageStatus = "disputed"
)

// Wage is the accrual ledger row for one (worker, pay period) pair.
// The first completed order in a period creates it; later completions
// in the same period update it in place. The composite unique index is
// what guarantees one row per pair under concurrent completions.
type Wage struct {
	gorm.Model
	WorkerID      uint            `json:"worker_id" gorm:"not null;uniqueIndex:idx_worker_period"`
	PayPeriod     string          `json:"pay_period" gorm:"size:7;not null;uniqueIndex:idx_worker_period"`
	BaseSalary    float64         `json:"base_salary" gorm:"not null;default:0"`
	OvertimeHours float64         `json:"overtime_hours" gorm:"not null;default:0"`
	OvertimePay   float64         `json:"overtime_pay" gorm:"not null;default:0"`
	Commission    float64         `json:"commission" gorm:"not null;default:0"`
	Bonus         float64         `json:"bonus" gorm:"not null;default:0"`
	Deductions    float64         `json:"deductions" gorm:"not null;default:0"`
	TotalAmount   float64         `json:"total_amount" gorm:"not null;default:0"`
	Status        WageStatus      `json:"status" gorm:"size:20;not null;default:pending"`
	PayDate       *datatypes.Date `json:"pay_date"`

	// Relationships
	Worker Worker `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

// Recalculate derives TotalAmount from the component fields. Must be
// called after every mutation so the total never drifts.
func (w *Wage) Recalculate() {
	w.TotalAmount = w.BaseSalary + w.OvertimePay + w.Commission + w.Bonus - w.Deductions
}

// PayPeriodOf returns the calendar-month pay period key (YYYY-MM) for t.
func PayPeriodOf(t time.Time) string {
	return t.Format("2006-01")
}

type AdjustWageRequest struct {
	BaseSalary *float64 `json:"base_salary" validate:"omitempty,gte=0"`
	Bonus      *float64 `json:"bonus" validate:"omitempty,gte=0"`
	Deductions *float64 `json:"deductions" validate:"omitempty,gte=0"`
}
