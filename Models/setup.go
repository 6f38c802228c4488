package Models

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	var connection *gorm.DB

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		connection, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		connection, err = gorm.Open(sqlite.Open("database.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = connection

	// 1. Base tables with no dependencies
	DB.AutoMigrate(
		&User{},
		&Material{},
		&Service{},
		&FCMToken{},
		&Supplier{},
	)

	// 2. Tables with simple foreign keys
	DB.AutoMigrate(
		&Vehicle{}, // Depends on User
		&Worker{},  // Depends on User
	)

	// 3. Orders and everything hanging off them
	DB.AutoMigrate(
		&RepairOrder{},         // Depends on User and Vehicle
		&OrderAssignment{},     // Depends on RepairOrder and Worker
		&MaterialConsumption{}, // Depends on RepairOrder and Material
		&RepairOrderService{},  // Depends on RepairOrder and Service
		&Wage{},                // Depends on Worker
		&OrderPhoto{},          // Depends on RepairOrder
		&SupplierQuote{},       // Depends on Supplier
	)

	seedAdmin()

	if err := ImportMaterialCatalog("materials.xlsx"); err != nil {
		log.Printf("Material catalog import skipped: %v", err)
	}
}

// seedAdmin guarantees a super admin exists on a fresh database.
func seedAdmin() {
	var count int64
	DB.Model(&User{}).Where("permission = ?", PermissionSuper).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}
	passwordByte, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	admin := User{
		Name:       "Admin",
		Email:      "admin@garage.local",
		Password:   passwordByte,
		Permission: PermissionSuper,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin user:", err)
	}
}

// ImportMaterialCatalog bootstraps the materials table from an xlsx
// sheet with columns: code, name, category, unit price, unit, stock,
// min stock. Rows whose code already exists are left untouched.
func ImportMaterialCatalog(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}

	rows := f.GetRows("Sheet1")
	imported := 0
	for i, row := range rows {
		if i == 0 || len(row) < 7 {
			// Header row or incomplete line
			continue
		}

		unitPrice, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			log.Printf("Skipping catalog row %d: bad unit price %q", i+1, row[3])
			continue
		}
		stock, _ := strconv.Atoi(row[5])
		minStock, _ := strconv.Atoi(row[6])

		var existing Material
		if err := DB.Where("material_code = ?", row[0]).First(&existing).Error; err == nil {
			continue
		}

		material := Material{
			MaterialCode:  row[0],
			Name:          row[1],
			Category:      row[2],
			UnitPrice:     unitPrice,
			Unit:          row[4],
			StockQuantity: stock,
			MinStockLevel: minStock,
		}
		if err := DB.Create(&material).Error; err != nil {
			log.Printf("Failed to import material %s: %v", row[0], err)
			continue
		}
		imported++
	}

	if imported > 0 {
		fmt.Printf("Imported %d materials from %s at %s\n", imported, path, time.Now().Format("2006-01-02 15:04:05"))
	}
	return nil
}
