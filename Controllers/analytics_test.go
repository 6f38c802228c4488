package Controllers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// completedOrder inserts a completed order finished at the given time.
func completedOrder(t *testing.T, db *gorm.DB, userID, vehicleID uint, seq int, doneAt time.Time, total float64) Models.RepairOrder {
	t.Helper()
	order := Models.RepairOrder{
		UserID:               userID,
		VehicleID:            vehicleID,
		OrderNumber:          fmt.Sprintf("RO%s%04d", doneAt.Format("20060102"), seq),
		Description:          "finished work",
		Status:               Models.OrderCompleted,
		ActualCompletionTime: &doneAt,
		TotalCost:            total,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestRevenueByMonthSingleMonthFilter(t *testing.T) {
	db := setupTestDB(t)
	customer := createCustomer(t, db)
	vehicle := createVehicle(t, db, customer.ID)

	july := time.Date(2026, time.July, 10, 12, 0, 0, 0, time.UTC)
	completedOrder(t, db, customer.ID, vehicle.ID, 1, july, 120)
	completedOrder(t, db, customer.ID, vehicle.ID, 2, july.AddDate(0, 0, 5), 80)
	completedOrder(t, db, customer.ID, vehicle.ID, 3, july.AddDate(0, 1, 0), 999)

	app := fiber.New()
	app.Get("/api/analytics/revenue", NewAnalyticsController(db).RevenueByMonth)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/revenue?months=2026-07", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []monthlyRevenue
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-07", rows[0].Month)
	assert.EqualValues(t, 2, rows[0].Orders)
	assert.InDelta(t, 200.0, rows[0].Revenue, 1e-9)
}

func TestWorkerUtilizationByPeriod(t *testing.T) {
	db := setupTestDB(t)
	customer := createCustomer(t, db)
	vehicle := createVehicle(t, db, customer.ID)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	july := time.Date(2026, time.July, 15, 16, 0, 0, 0, time.UTC)
	finished := []struct {
		end   time.Time
		hours float64
		pay   float64
	}{
		{july, 3, 60},
		{july.AddDate(0, 0, 2), 2, 40},
		{july.AddDate(0, 1, 0), 25, 500},
	}
	for i, f := range finished {
		order := completedOrder(t, db, customer.ID, vehicle.ID, i+1, f.end, f.pay)
		end := f.end
		assignment := Models.OrderAssignment{
			OrderID:      order.ID,
			WorkerID:     worker.ID,
			HourlyRate:   20,
			WorkHours:    f.hours,
			TotalPayment: f.pay,
			Status:       Models.AssignmentCompleted,
			EndTime:      &end,
		}
		require.NoError(t, db.Create(&assignment).Error)
	}

	app := fiber.New()
	app.Get("/api/analytics/workers", NewAnalyticsController(db).WorkerUtilization)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/workers?period=2026-07", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Period string `json:"period"`
		Data   []struct {
			WorkerID  uint    `json:"worker_id"`
			Name      string  `json:"name"`
			Completed int64   `json:"completed_orders"`
			Hours     float64 `json:"hours"`
			Earned    float64 `json:"earned"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "2026-07", payload.Period)
	require.Len(t, payload.Data, 1)
	assert.Equal(t, worker.ID, payload.Data[0].WorkerID)
	assert.EqualValues(t, 2, payload.Data[0].Completed)
	assert.InDelta(t, 5.0, payload.Data[0].Hours, 1e-9)
	assert.InDelta(t, 100.0, payload.Data[0].Earned, 1e-9)
}

func TestWorkerUtilizationRejectsBadPeriod(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	app.Get("/api/analytics/workers", NewAnalyticsController(db).WorkerUtilization)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/workers?period=july", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
