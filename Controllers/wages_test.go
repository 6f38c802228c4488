package Controllers

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccrueWageCreatesRowOnFirstCompletion(t *testing.T) {
	db := setupTestDB(t)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	require.NoError(t, accrueWage(db, worker.ID, "2026-09", 60.0, 0, 0))

	var wage Models.Wage
	require.NoError(t, db.Where("worker_id = ? AND pay_period = ?", worker.ID, "2026-09").First(&wage).Error)
	assert.Equal(t, Models.WagePending, wage.Status)
	assert.InDelta(t, 60.0, wage.Commission, 1e-9)
	assert.InDelta(t, 60.0, wage.TotalAmount, 1e-9)
}

func TestAccrueWageAccumulatesWithinPeriod(t *testing.T) {
	db := setupTestDB(t)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	require.NoError(t, accrueWage(db, worker.ID, "2026-09", 60.0, 0, 0))
	require.NoError(t, accrueWage(db, worker.ID, "2026-09", 45.0, 0, 0))

	var wages []Models.Wage
	require.NoError(t, db.Where("worker_id = ?", worker.ID).Find(&wages).Error)
	require.Len(t, wages, 1)
	assert.InDelta(t, 105.0, wages[0].Commission, 1e-9)
	assert.InDelta(t, 105.0, wages[0].TotalAmount, 1e-9)
}

func TestAccrueWageSplitsPeriods(t *testing.T) {
	db := setupTestDB(t)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	require.NoError(t, accrueWage(db, worker.ID, "2026-08", 50.0, 0, 0))
	require.NoError(t, accrueWage(db, worker.ID, "2026-09", 30.0, 0, 0))

	var count int64
	db.Model(&Models.Wage{}).Where("worker_id = ?", worker.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestAccrueWageTracksOvertimeSeparately(t *testing.T) {
	db := setupTestDB(t)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)

	require.NoError(t, accrueWage(db, worker.ID, "2026-09", 40.0, 1.0, 30.0))
	require.NoError(t, accrueWage(db, worker.ID, "2026-09", 20.0, 0.5, 15.0))

	var wage Models.Wage
	require.NoError(t, db.Where("worker_id = ?", worker.ID).First(&wage).Error)
	assert.InDelta(t, 60.0, wage.Commission, 1e-9)
	assert.InDelta(t, 1.5, wage.OvertimeHours, 1e-9)
	assert.InDelta(t, 45.0, wage.OvertimePay, 1e-9)
	assert.InDelta(t, 105.0, wage.TotalAmount, 1e-9)
}

func TestWageRecalculate(t *testing.T) {
	wage := Models.Wage{
		BaseSalary:  1000,
		OvertimePay: 45,
		Commission:  105,
		Bonus:       50,
		Deductions:  20,
	}
	wage.Recalculate()
	assert.InDelta(t, 1180.0, wage.TotalAmount, 1e-9)
}

func TestMarkPaidTransitionsPendingWage(t *testing.T) {
	db := setupTestDB(t)
	worker := createWorker(t, db, 20.0, Models.WorkerActive)
	require.NoError(t, accrueWage(db, worker.ID, "2026-09", 60.0, 0, 0))

	var wage Models.Wage
	require.NoError(t, db.Where("worker_id = ?", worker.ID).First(&wage).Error)

	app := fiber.New()
	app.Post("/api/wages/:id/pay", NewWageController(db).MarkPaid)

	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/api/wages/%d/pay", wage.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&wage, wage.ID).Error)
	assert.Equal(t, Models.WagePaid, wage.Status)
	require.NotNil(t, wage.PayDate)

	// Paying an already paid wage is a conflict, not a second payment.
	resp, err = app.Test(httptest.NewRequest("POST", fmt.Sprintf("/api/wages/%d/pay", wage.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestMarkPaidUnknownWage(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	app.Post("/api/wages/:id/pay", NewWageController(db).MarkPaid)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/wages/9999/pay", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPayPeriodOf(t *testing.T) {
	ts := time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-09", Models.PayPeriodOf(ts))

	endOfMonth := time.Date(2026, time.September, 30, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2026-09", Models.PayPeriodOf(endOfMonth))
}
