package Controllers

import (
	"fmt"
	"strings"
	"testing"

	"Garage/Models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&Models.User{},
		&Models.Vehicle{},
		&Models.Worker{},
		&Models.Material{},
		&Models.Service{},
		&Models.Supplier{},
		&Models.RepairOrder{},
		&Models.OrderAssignment{},
		&Models.MaterialConsumption{},
		&Models.RepairOrderService{},
		&Models.Wage{},
		&Models.OrderPhoto{},
		&Models.SupplierQuote{},
		&Models.FCMToken{},
	)
	require.NoError(t, err)

	return db
}

// firstSelector makes auto-assignment deterministic in tests.
type firstSelector struct{}

func (firstSelector) Pick(workers []Models.Worker) Models.Worker { return workers[0] }

func createCustomer(t *testing.T, db *gorm.DB) Models.User {
	t.Helper()
	user := Models.User{
		Name:       "Test Customer",
		Email:      fmt.Sprintf("customer+%s@test.local", strings.ReplaceAll(t.Name(), "/", "_")),
		Password:   []byte("test-password-hash"),
		Permission: Models.PermissionCustomer,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createVehicle(t *testing.T, db *gorm.DB, userID uint) Models.Vehicle {
	t.Helper()
	vehicle := Models.Vehicle{
		UserID:       userID,
		LicensePlate: fmt.Sprintf("PLATE-%d", userID),
		VIN:          fmt.Sprintf("VIN%017d", userID),
		VehicleModel: "Corolla",
		Manufacturer: "Toyota",
		Year:         2019,
	}
	require.NoError(t, db.Create(&vehicle).Error)
	return vehicle
}

func createWorker(t *testing.T, db *gorm.DB, rate float64, status Models.WorkerStatus) Models.Worker {
	t.Helper()
	user := Models.User{
		Name:       "Test Worker",
		Email:      fmt.Sprintf("worker+%d@test.local", rateSeq(db)),
		Password:   []byte("test-password-hash"),
		Permission: Models.PermissionWorker,
	}
	require.NoError(t, db.Create(&user).Error)

	worker := Models.Worker{
		UserID:     user.ID,
		EmployeeID: fmt.Sprintf("EMP-%d", user.ID),
		Name:       user.Name,
		SkillType:  "mechanic",
		SkillLevel: "senior",
		HourlyRate: rate,
		Status:     status,
	}
	require.NoError(t, db.Create(&worker).Error)
	return worker
}

func rateSeq(db *gorm.DB) int64 {
	var count int64
	db.Model(&Models.User{}).Count(&count)
	return count + 1
}

func createMaterial(t *testing.T, db *gorm.DB, code string, price float64, stock int) Models.Material {
	t.Helper()
	material := Models.Material{
		MaterialCode:  code,
		Name:          "Part " + code,
		UnitPrice:     price,
		Unit:          "piece",
		StockQuantity: stock,
		MinStockLevel: 2,
	}
	require.NoError(t, db.Create(&material).Error)
	return material
}

// createPendingOrder builds an order with no workers available, so it
// stays pending and tests can drive accept/reject explicitly.
func createPendingOrder(t *testing.T, db *gorm.DB) (Models.User, Models.RepairOrder) {
	t.Helper()
	customer := createCustomer(t, db)
	vehicle := createVehicle(t, db, customer.ID)

	controller := NewOrderController(db, firstSelector{})
	order, err := controller.CreateOrder(customer.ID, Models.CreateOrderRequest{
		VehicleID:   vehicle.ID,
		Description: "Brake pads squeaking",
	})
	require.NoError(t, err)
	require.Equal(t, Models.OrderPending, order.Status)
	return customer, *order
}
