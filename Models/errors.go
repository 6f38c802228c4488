package Models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced order/worker/material does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConsistency signals that an order's totals failed to reconcile with their
// components after a recalculation. Callers should treat this as a bug.
var ErrConsistency = errors.New("cost totals do not reconcile")

// StateTransitionError is returned when an operation is attempted on an
// entity that is not in the required state.
type StateTransitionError struct {
	Entity   string
	Current  string
	Required string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s is %s, must be %s", e.Entity, e.Current, e.Required)
}

// UnauthorizedWorkerError is returned when a worker acts on an order they
// are not assigned to.
type UnauthorizedWorkerError struct {
	WorkerID uint
	OrderID  uint
}

func (e *UnauthorizedWorkerError) Error() string {
	return fmt.Sprintf("worker %d is not assigned to order %d", e.WorkerID, e.OrderID)
}

// InsufficientStockError is returned when a consumption would drive a
// material's stock negative.
type InsufficientStockError struct {
	MaterialName string
	Requested    int
	Available    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for material '%s' (requested: %d, available: %d)",
		e.MaterialName, e.Requested, e.Available)
}
