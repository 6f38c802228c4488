package Controllers

import (
	"fmt"
	"testing"
	"time"

	"Garage/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderAutoAssignsActiveWorker(t *testing.T) {
	db := setupTestDB(t)
	customer := createCustomer(t, db)
	vehicle := createVehicle(t, db, customer.ID)
	worker := createWorker(t, db, 25.0, Models.WorkerActive)

	controller := NewOrderController(db, firstSelector{})
	order, err := controller.CreateOrder(customer.ID, Models.CreateOrderRequest{
		VehicleID:   vehicle.ID,
		Description: "Engine knocking",
		Priority:    "high",
	})
	require.NoError(t, err)

	assert.Equal(t, Models.OrderInProgress, order.Status)
	assert.Equal(t, Models.PriorityHigh, order.Priority)

	prefix := Models.AppSettings.OrderNumberPrefix + time.Now().Format("20060102")
	assert.Contains(t, order.OrderNumber, prefix)

	var assignment Models.OrderAssignment
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&assignment).Error)
	assert.Equal(t, worker.ID, assignment.WorkerID)
	assert.Equal(t, 25.0, assignment.HourlyRate)
}

func TestCreateOrderStaysPendingWithoutWorkers(t *testing.T) {
	db := setupTestDB(t)
	createWorker(t, db, 25.0, Models.WorkerOnLeave)

	_, order := createPendingOrder(t, db)

	var count int64
	db.Model(&Models.OrderAssignment{}).Where("order_id = ?", order.ID).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderUnknownVehicle(t *testing.T) {
	db := setupTestDB(t)
	customer := createCustomer(t, db)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.CreateOrder(customer.ID, Models.CreateOrderRequest{
		VehicleID:   999,
		Description: "Ghost vehicle",
	})
	assert.ErrorIs(t, err, Models.ErrNotFound)
}

func TestOrderNumbersAreSequentialPerDay(t *testing.T) {
	db := setupTestDB(t)
	customer := createCustomer(t, db)
	vehicle := createVehicle(t, db, customer.ID)

	controller := NewOrderController(db, firstSelector{})
	var numbers []string
	for i := 0; i < 3; i++ {
		order, err := controller.CreateOrder(customer.ID, Models.CreateOrderRequest{
			VehicleID:   vehicle.ID,
			Description: fmt.Sprintf("Job %d", i),
		})
		require.NoError(t, err)
		numbers = append(numbers, order.OrderNumber)
	}

	datePart := time.Now().Format("20060102")
	for i, number := range numbers {
		expected := fmt.Sprintf("%s%s%04d", Models.AppSettings.OrderNumberPrefix, datePart, i+1)
		assert.Equal(t, expected, number)
	}
}

func TestOrderNumberSequenceCountsSoftDeletedOrders(t *testing.T) {
	db := setupTestDB(t)
	customer := createCustomer(t, db)
	vehicle := createVehicle(t, db, customer.ID)

	controller := NewOrderController(db, firstSelector{})
	for i := 0; i < 2; i++ {
		order, err := controller.CreateOrder(customer.ID, Models.CreateOrderRequest{
			VehicleID:   vehicle.ID,
			Description: fmt.Sprintf("Job %d", i),
		})
		require.NoError(t, err)
		if i == 1 {
			// Soft-deleted orders keep their order numbers.
			require.NoError(t, db.Delete(order).Error)
		}
	}

	number, err := generateOrderNumber(db, time.Now(), 0)
	require.NoError(t, err)
	expected := fmt.Sprintf("%s%s0003", Models.AppSettings.OrderNumberPrefix, time.Now().Format("20060102"))
	assert.Equal(t, expected, number)

	order, err := controller.CreateOrder(customer.ID, Models.CreateOrderRequest{
		VehicleID:   vehicle.ID,
		Description: "Job after delete",
	})
	require.NoError(t, err)
	assert.Equal(t, expected, order.OrderNumber)
}

func TestAcceptOrderSnapshotsRate(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	controller := NewOrderController(db, firstSelector{})
	accepted, err := controller.AcceptOrder(order.ID, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, Models.OrderInProgress, accepted.Status)

	// Raising the worker's rate must not touch the snapshot
	require.NoError(t, db.Model(&Models.Worker{}).Where("id = ?", worker.ID).Update("hourly_rate", 50.0).Error)

	var assignment Models.OrderAssignment
	require.NoError(t, db.Where("order_id = ? AND worker_id = ?", order.ID, worker.ID).First(&assignment).Error)
	assert.Equal(t, 20.0, assignment.HourlyRate)
}

func TestAcceptOrderTwiceConflicts(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	first := createWorker(t, db, 20.0, Models.WorkerActive)
	second := createWorker(t, db, 22.0, Models.WorkerActive)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.AcceptOrder(order.ID, first.ID)
	require.NoError(t, err)

	_, err = controller.AcceptOrder(order.ID, second.ID)
	var stateErr *Models.StateTransitionError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, string(Models.OrderInProgress), stateErr.Current)
}

func TestRejectOrderRevertsToPending(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.AcceptOrder(order.ID, worker.ID)
	require.NoError(t, err)

	rejected, err := controller.RejectOrder(order.ID, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, Models.OrderPending, rejected.Status)

	var count int64
	db.Model(&Models.OrderAssignment{}).Where("order_id = ?", order.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRejectOrderWithoutAssignment(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.RejectOrder(order.ID, worker.ID)

	var unauthorized *Models.UnauthorizedWorkerError
	assert.ErrorAs(t, err, &unauthorized)
}

func TestCompleteOrderHappyPath(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)
	material := createMaterial(t, db, "BRK-01", 5.0, 10)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.AcceptOrder(order.ID, worker.ID)
	require.NoError(t, err)

	completed, err := controller.CompleteOrder(order.ID, worker.ID, Models.CompleteOrderRequest{
		WorkHours:       3,
		WorkDescription: "Replaced front brake pads",
		Materials: []Models.MaterialUsage{
			{MaterialID: material.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, Models.OrderCompleted, completed.Status)
	assert.NotNil(t, completed.ActualCompletionTime)
	assert.InDelta(t, 10.0, completed.TotalMaterialCost, 1e-9)
	assert.InDelta(t, 60.0, completed.TotalLaborCost, 1e-9)
	assert.InDelta(t, 70.0, completed.TotalCost, 1e-9)
	assert.Contains(t, completed.InternalNotes, "Replaced front brake pads")

	var refreshed Models.Material
	require.NoError(t, db.First(&refreshed, material.ID).Error)
	assert.Equal(t, 8, refreshed.StockQuantity)

	var consumption Models.MaterialConsumption
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&consumption).Error)
	assert.Equal(t, 2, consumption.QuantityUsed)
	assert.InDelta(t, 5.0, consumption.UnitPrice, 1e-9)

	var assignment Models.OrderAssignment
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&assignment).Error)
	assert.Equal(t, Models.AssignmentCompleted, assignment.Status)
	assert.InDelta(t, 60.0, assignment.TotalPayment, 1e-9)

	var wage Models.Wage
	require.NoError(t, db.Where("worker_id = ?", worker.ID).First(&wage).Error)
	assert.Equal(t, Models.PayPeriodOf(time.Now()), wage.PayPeriod)
	assert.InDelta(t, 60.0, wage.Commission, 1e-9)
	assert.InDelta(t, 60.0, wage.TotalAmount, 1e-9)
}

func TestCompleteOrderInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)
	cheap := createMaterial(t, db, "OIL-01", 8.0, 10)
	scarce := createMaterial(t, db, "FLT-01", 12.0, 1)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.AcceptOrder(order.ID, worker.ID)
	require.NoError(t, err)

	_, err = controller.CompleteOrder(order.ID, worker.ID, Models.CompleteOrderRequest{
		WorkHours: 2,
		Materials: []Models.MaterialUsage{
			{MaterialID: cheap.ID, Quantity: 3},
			{MaterialID: scarce.ID, Quantity: 5},
		},
	})

	var stockErr *Models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	// Nothing from the failed completion may stick, including the
	// first material's decrement.
	var refreshed Models.RepairOrder
	require.NoError(t, db.First(&refreshed, order.ID).Error)
	assert.Equal(t, Models.OrderInProgress, refreshed.Status)
	assert.Zero(t, refreshed.TotalCost)

	var cheapAfter Models.Material
	require.NoError(t, db.First(&cheapAfter, cheap.ID).Error)
	assert.Equal(t, 10, cheapAfter.StockQuantity)

	var consumptions, wages int64
	db.Model(&Models.MaterialConsumption{}).Where("order_id = ?", order.ID).Count(&consumptions)
	db.Model(&Models.Wage{}).Where("worker_id = ?", worker.ID).Count(&wages)
	assert.Zero(t, consumptions)
	assert.Zero(t, wages)
}

func TestCompleteOrderRequiresInProgress(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.CompleteOrder(order.ID, worker.ID, Models.CompleteOrderRequest{WorkHours: 1})

	var stateErr *Models.StateTransitionError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, string(Models.OrderPending), stateErr.Current)
}

func TestCompleteOrderRejectsUnassignedWorker(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	assigned := createWorker(t, db, 20.0, Models.WorkerActive)
	outsider := createWorker(t, db, 30.0, Models.WorkerActive)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.AcceptOrder(order.ID, assigned.ID)
	require.NoError(t, err)

	_, err = controller.CompleteOrder(order.ID, outsider.ID, Models.CompleteOrderRequest{WorkHours: 1})

	var unauthorized *Models.UnauthorizedWorkerError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, outsider.ID, unauthorized.WorkerID)
}

func TestCompleteOrderOvertime(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.AcceptOrder(order.ID, worker.ID)
	require.NoError(t, err)

	completed, err := controller.CompleteOrder(order.ID, worker.ID, Models.CompleteOrderRequest{
		WorkHours:     2,
		OvertimeHours: 1,
	})
	require.NoError(t, err)

	// 2h at 20 plus 1h at 20 * 1.5
	assert.InDelta(t, 70.0, completed.TotalLaborCost, 1e-9)

	var wage Models.Wage
	require.NoError(t, db.Where("worker_id = ?", worker.ID).First(&wage).Error)
	assert.InDelta(t, 40.0, wage.Commission, 1e-9)
	assert.InDelta(t, 1.0, wage.OvertimeHours, 1e-9)
	assert.InDelta(t, 30.0, wage.OvertimePay, 1e-9)
	assert.InDelta(t, 70.0, wage.TotalAmount, 1e-9)
}

func TestSetOrderStatusStampsCompletionTime(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)

	controller := NewOrderController(db, firstSelector{})
	updated, err := controller.SetOrderStatus(order.ID, Models.OrderCancelled, "Customer withdrew")
	require.NoError(t, err)
	assert.Equal(t, Models.OrderCancelled, updated.Status)
	assert.Nil(t, updated.ActualCompletionTime)

	updated, err = controller.SetOrderStatus(order.ID, Models.OrderCompleted, "")
	require.NoError(t, err)
	assert.NotNil(t, updated.ActualCompletionTime)
}

func TestAttachServiceSnapshotsPrice(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)

	service := Models.Service{ServiceCode: "INSP-01", Name: "Full inspection", StandardPrice: 35.0}
	require.NoError(t, db.Create(&service).Error)

	controller := NewOrderController(db, firstSelector{})
	updated, err := controller.AttachService(order.ID, service.ID)
	require.NoError(t, err)
	assert.InDelta(t, 35.0, updated.TotalServiceCost, 1e-9)
	assert.InDelta(t, 35.0, updated.TotalCost, 1e-9)

	// Catalog price changes must not retro-price the attachment
	require.NoError(t, db.Model(&Models.Service{}).Where("id = ?", service.ID).Update("standard_price", 99.0).Error)

	var entry Models.RepairOrderService
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&entry).Error)
	assert.InDelta(t, 35.0, entry.Price, 1e-9)
}

func TestAttachServiceRejectsClosedOrder(t *testing.T) {
	db := setupTestDB(t)
	_, order := createPendingOrder(t, db)

	service := Models.Service{ServiceCode: "WASH-01", Name: "Wash", StandardPrice: 10.0}
	require.NoError(t, db.Create(&service).Error)

	controller := NewOrderController(db, firstSelector{})
	_, err := controller.SetOrderStatus(order.ID, Models.OrderCancelled, "")
	require.NoError(t, err)

	_, err = controller.AttachService(order.ID, service.ID)
	var stateErr *Models.StateTransitionError
	assert.ErrorAs(t, err, &stateErr)
}
