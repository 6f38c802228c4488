package Controllers

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"Garage/Models"
	"Garage/Notifications"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderController owns the repair order lifecycle: creation with
// auto-assignment, accept/reject, completion with material consumption
// and wage accrual, and admin overrides.
type OrderController struct {
	DB       *gorm.DB
	Selector WorkerSelector
}

// NewOrderController creates a new OrderController
func NewOrderController(db *gorm.DB, selector WorkerSelector) *OrderController {
	return &OrderController{DB: db, Selector: selector}
}

func isDuplicateKey(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "Duplicate entry")
}

// generateOrderNumber builds <prefix><YYYYMMDD><4-digit sequence> from
// the count of orders created today. Soft-deleted orders still hold
// their order numbers, so the count is unscoped. The count is racy
// under concurrent creation; the unique index on order_number plus the
// retry loop in CreateOrder is what actually guarantees uniqueness.
func generateOrderNumber(tx *gorm.DB, now time.Time, offset int) (string, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	err := tx.Unscoped().Model(&Models.RepairOrder{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayStart.Add(24*time.Hour)).
		Count(&count).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%s%04d",
		Models.AppSettings.OrderNumberPrefix,
		now.Format("20060102"),
		count+1+int64(offset),
	), nil
}

// CreateOrder persists a new pending order and immediately tries to
// auto-assign a random active worker, snapshotting their hourly rate.
// With no active worker the order stays pending.
func (c *OrderController) CreateOrder(userID uint, req Models.CreateOrderRequest) (*Models.RepairOrder, error) {
	priority := Models.OrderPriority(req.Priority)
	if priority == "" {
		priority = Models.PriorityMedium
	}

	var estimated *time.Time
	if req.EstimatedCompletionTime != "" {
		t, err := time.Parse(time.RFC3339, req.EstimatedCompletionTime)
		if err != nil {
			t, err = time.Parse("2006-01-02", req.EstimatedCompletionTime)
			if err != nil {
				return nil, fmt.Errorf("invalid estimated completion time: %w", err)
			}
		}
		estimated = &t
	}

	var order Models.RepairOrder
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var vehicle Models.Vehicle
		if err := tx.First(&vehicle, req.VehicleID).Error; err != nil {
			return Models.ErrNotFound
		}

		now := time.Now()
		order = Models.RepairOrder{
			UserID:                  userID,
			VehicleID:               req.VehicleID,
			Description:             req.Description,
			Status:                  Models.OrderPending,
			Priority:                priority,
			EstimatedCompletionTime: estimated,
		}

		created := false
		for attempt := 0; attempt < 5; attempt++ {
			number, err := generateOrderNumber(tx, now, attempt)
			if err != nil {
				return err
			}
			order.OrderNumber = number
			if err := tx.Create(&order).Error; err != nil {
				if isDuplicateKey(err) {
					continue
				}
				return err
			}
			created = true
			break
		}
		if !created {
			return fmt.Errorf("could not allocate a unique order number")
		}

		// Auto-assignment
		var workers []Models.Worker
		if err := tx.Where("status = ?", Models.WorkerActive).Find(&workers).Error; err != nil {
			return err
		}
		if len(workers) == 0 {
			return nil
		}

		picked := c.Selector.Pick(workers)
		assignment := Models.OrderAssignment{
			OrderID:    order.ID,
			WorkerID:   picked.ID,
			HourlyRate: picked.HourlyRate,
			Status:     Models.AssignmentAssigned,
			StartTime:  &now,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		order.Status = Models.OrderInProgress
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// AcceptOrder lets a worker take a pending order. The row lock makes
// the pending check and the transition one atomic unit, so of two
// concurrent accepts exactly one succeeds and the other observes
// in_progress.
func (c *OrderController) AcceptOrder(orderID, workerID uint) (*Models.RepairOrder, error) {
	var order Models.RepairOrder
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			return Models.ErrNotFound
		}

		if order.Status != Models.OrderPending {
			return &Models.StateTransitionError{
				Entity:   "order",
				Current:  string(order.Status),
				Required: string(Models.OrderPending),
			}
		}

		var worker Models.Worker
		if err := tx.First(&worker, workerID).Error; err != nil {
			return Models.ErrNotFound
		}

		now := time.Now()
		assignment := Models.OrderAssignment{
			OrderID:    order.ID,
			WorkerID:   worker.ID,
			HourlyRate: worker.HourlyRate, // rate snapshot
			Status:     Models.AssignmentAssigned,
			StartTime:  &now,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		order.Status = Models.OrderInProgress
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// RejectOrder removes the worker's assignment. When no assignment
// remains the order collapses back to pending so it can be re-assigned;
// otherwise it stays in_progress for the remaining workers.
func (c *OrderController) RejectOrder(orderID, workerID uint) (*Models.RepairOrder, error) {
	var order Models.RepairOrder
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var assignment Models.OrderAssignment
		err := tx.Where("order_id = ? AND worker_id = ?", orderID, workerID).First(&assignment).Error
		if err != nil {
			return &Models.UnauthorizedWorkerError{WorkerID: workerID, OrderID: orderID}
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			return Models.ErrNotFound
		}

		if err := tx.Delete(&assignment).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&Models.OrderAssignment{}).Where("order_id = ?", orderID).Count(&remaining).Error; err != nil {
			return err
		}

		if remaining == 0 {
			order.Status = Models.OrderPending
			return tx.Save(&order).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// CompleteOrder is the canonical completion path: consumes the declared
// materials against inventory, prices labor from the assignment's rate
// snapshot (overtime at the configured multiplier), updates the order
// totals and accrues the worker's wage for the current pay period. All
// of it commits or none of it does.
func (c *OrderController) CompleteOrder(orderID, workerID uint, req Models.CompleteOrderRequest) (*Models.RepairOrder, error) {
	var order Models.RepairOrder
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			return Models.ErrNotFound
		}

		if order.Status != Models.OrderInProgress {
			return &Models.StateTransitionError{
				Entity:   "order",
				Current:  string(order.Status),
				Required: string(Models.OrderInProgress),
			}
		}

		var assignment Models.OrderAssignment
		err := tx.Where("order_id = ? AND worker_id = ?", orderID, workerID).First(&assignment).Error
		if err != nil {
			return &Models.UnauthorizedWorkerError{WorkerID: workerID, OrderID: orderID}
		}

		now := time.Now()

		// Material consumption with unit-price snapshots
		materialCost := 0.0
		for _, usage := range req.Materials {
			consumption, err := ConsumeMaterial(tx, order.ID, usage.MaterialID, usage.Quantity, now)
			if err != nil {
				return err
			}
			materialCost += consumption.TotalCost
		}

		// Labor from the snapshotted rate, overtime at the configured multiplier
		regularPay := assignment.HourlyRate * req.WorkHours
		overtimePay := assignment.HourlyRate * Models.AppSettings.OvertimeMultiplier * req.OvertimeHours
		laborCost := regularPay + overtimePay

		assignment.WorkHours += req.WorkHours + req.OvertimeHours
		assignment.TotalPayment += laborCost
		assignment.Status = Models.AssignmentCompleted
		assignment.EndTime = &now
		assignment.WorkDescription = req.WorkDescription
		if err := tx.Save(&assignment).Error; err != nil {
			return err
		}

		order.Status = Models.OrderCompleted
		order.ActualCompletionTime = &now
		order.TotalMaterialCost = materialCost
		order.TotalLaborCost = laborCost
		order.TotalCost = order.TotalLaborCost + order.TotalMaterialCost + order.TotalServiceCost
		if req.WorkDescription != "" {
			order.InternalNotes = strings.TrimSpace(order.InternalNotes + "\n[Work] " + req.WorkDescription)
		}
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		if math.Abs(order.TotalCost-(order.TotalLaborCost+order.TotalMaterialCost+order.TotalServiceCost)) > 1e-9 {
			return Models.ErrConsistency
		}

		// Exactly one accrual per successful completion transaction
		return accrueWage(tx, workerID, Models.PayPeriodOf(now), regularPay, req.OvertimeHours, overtimePay)
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// SetOrderStatus is the admin override path. It bypasses assignment
// bookkeeping entirely; the normal completion flow is CompleteOrder.
func (c *OrderController) SetOrderStatus(orderID uint, status Models.OrderStatus, notes string) (*Models.RepairOrder, error) {
	var order Models.RepairOrder
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return Models.ErrNotFound
		}

		order.Status = status
		if notes != "" {
			order.InternalNotes = notes
		}
		if status == Models.OrderCompleted {
			now := time.Now()
			order.ActualCompletionTime = &now
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// AttachService adds a catalog service to an open order with a price
// snapshot and folds it into the service subtotal.
func (c *OrderController) AttachService(orderID, serviceID uint) (*Models.RepairOrder, error) {
	var order Models.RepairOrder
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			return Models.ErrNotFound
		}

		if order.Status == Models.OrderCompleted || order.Status == Models.OrderCancelled {
			return &Models.StateTransitionError{
				Entity:   "order",
				Current:  string(order.Status),
				Required: "pending or in_progress",
			}
		}

		var service Models.Service
		if err := tx.First(&service, serviceID).Error; err != nil {
			return Models.ErrNotFound
		}

		entry := Models.RepairOrderService{
			OrderID:   order.ID,
			ServiceID: service.ID,
			Price:     service.StandardPrice,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		order.TotalServiceCost += entry.Price
		order.TotalCost = order.TotalLaborCost + order.TotalMaterialCost + order.TotalServiceCost
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// --- HTTP handlers ---

// Create handles POST /api/orders
func (c *OrderController) Create(ctx *fiber.Ctx) error {
	var req Models.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	user := ctx.Locals("user").(Models.User)

	order, err := c.CreateOrder(user.ID, req)
	if err != nil {
		return respondError(ctx, err)
	}

	// Tell the auto-assigned worker, if any
	if order.Status == Models.OrderInProgress {
		var assignment Models.OrderAssignment
		if err := c.DB.Preload("Worker").Where("order_id = ?", order.ID).First(&assignment).Error; err == nil {
			go func(userID uint, number string) {
				if err := Notifications.NotifyUser(userID, "New repair order",
					"You have been assigned order "+number); err != nil {
					log.Println("Failed to notify worker:", err)
				}
			}(assignment.Worker.UserID, order.OrderNumber)
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"data":    order,
	})
}

// GetMyOrders handles GET /api/orders/my-orders
func (c *OrderController) GetMyOrders(ctx *fiber.Ctx) error {
	user := ctx.Locals("user").(Models.User)
	page, limit := pagination(ctx)

	var orders []Models.RepairOrder
	err := c.DB.Preload("Vehicle").Preload("Assignments.Worker").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve orders"})
	}

	return ctx.JSON(fiber.Map{"data": orders, "page": page, "limit": limit})
}

// GetWorkerOrders handles GET /api/orders/worker-orders
func (c *OrderController) GetWorkerOrders(ctx *fiber.Ctx) error {
	worker, err := resolveWorker(c.DB, ctx)
	if err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No worker profile for this account"})
	}
	page, limit := pagination(ctx)

	var orders []Models.RepairOrder
	err = c.DB.Preload("Vehicle").Preload("User").
		Joins("JOIN order_assignments ON order_assignments.order_id = repair_orders.id").
		Where("order_assignments.worker_id = ? AND order_assignments.deleted_at IS NULL", worker.ID).
		Order("repair_orders.created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve orders"})
	}

	return ctx.JSON(fiber.Map{"data": orders, "page": page, "limit": limit})
}

// GetPendingOrders handles GET /api/orders/pending (workers pick from these)
func (c *OrderController) GetPendingOrders(ctx *fiber.Ctx) error {
	var orders []Models.RepairOrder
	err := c.DB.Preload("Vehicle").
		Where("status = ?", Models.OrderPending).
		Order("priority DESC, created_at ASC").
		Find(&orders).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve orders"})
	}

	return ctx.JSON(orders)
}

// GetOrder handles GET /api/orders/:id
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var order Models.RepairOrder
	err = c.DB.Preload("Vehicle").Preload("User").
		Preload("Assignments.Worker").
		Preload("Consumptions.Material").
		Preload("OrderServices.Service").
		First(&order, id).Error
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	user := ctx.Locals("user").(Models.User)
	if user.Permission < Models.PermissionWorker && order.UserID != user.ID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your order"})
	}

	return ctx.JSON(order)
}

// GetAllOrders handles GET /api/orders (admin)
func (c *OrderController) GetAllOrders(ctx *fiber.Ctx) error {
	page, limit := pagination(ctx)

	query := c.DB.Model(&Models.RepairOrder{})
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var orders []Models.RepairOrder
	err := query.Preload("Vehicle").Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve orders"})
	}

	return ctx.JSON(fiber.Map{
		"data": orders,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// Accept handles PUT /api/orders/:id/accept
func (c *OrderController) Accept(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	worker, err := resolveWorker(c.DB, ctx)
	if err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No worker profile for this account"})
	}

	order, err := c.AcceptOrder(uint(id), worker.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Order accepted",
		"data":    order,
	})
}

// Reject handles PUT /api/orders/:id/reject
func (c *OrderController) Reject(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	worker, err := resolveWorker(c.DB, ctx)
	if err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No worker profile for this account"})
	}

	order, err := c.RejectOrder(uint(id), worker.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Order rejected",
		"data":    order,
	})
}

// Complete handles PUT /api/orders/:id/complete
func (c *OrderController) Complete(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req Models.CompleteOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	worker, err := resolveWorker(c.DB, ctx)
	if err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No worker profile for this account"})
	}

	order, err := c.CompleteOrder(uint(id), worker.ID, req)
	if err != nil {
		return respondError(ctx, err)
	}

	// Tell the customer their vehicle is ready
	go func(userID uint, number string) {
		if err := Notifications.NotifyUser(userID, "Repair completed",
			"Order "+number+" has been completed"); err != nil {
			log.Println("Failed to notify customer:", err)
		}
	}(order.UserID, order.OrderNumber)

	return ctx.JSON(fiber.Map{
		"message": "Order completed successfully",
		"data":    order,
	})
}

// UpdateStatus handles PUT /api/orders/:id/status (admin override)
func (c *OrderController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req Models.UpdateOrderStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	order, err := c.SetOrderStatus(uint(id), Models.OrderStatus(req.Status), req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Order status updated",
		"data":    order,
	})
}

// Update handles PUT /api/orders/:id (admin edit of order fields)
func (c *OrderController) Update(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var order Models.RepairOrder
	if err := c.DB.First(&order, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	var req Models.UpdateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.Priority != nil {
		order.Priority = Models.OrderPriority(*req.Priority)
	}
	if req.InternalNotes != nil {
		order.InternalNotes = *req.InternalNotes
	}
	if req.EstimatedCompletionTime != nil {
		t, err := time.Parse(time.RFC3339, *req.EstimatedCompletionTime)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid estimated completion time"})
		}
		order.EstimatedCompletionTime = &t
	}

	if err := c.DB.Save(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update order"})
	}

	return ctx.JSON(order)
}

// AddService handles POST /api/orders/:id/services (admin)
func (c *OrderController) AddService(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req Models.AttachServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if fields := ValidateStruct(req); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	order, err := c.AttachService(uint(id), req.ServiceID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Service attached",
		"data":    order,
	})
}

// Delete handles DELETE /api/orders/:id (admin, soft delete)
func (c *OrderController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var order Models.RepairOrder
	if err := c.DB.First(&order, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	c.DB.Delete(&order)

	return ctx.JSON(fiber.Map{"message": "Order deleted successfully"})
}

func pagination(ctx *fiber.Ctx) (int, int) {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
