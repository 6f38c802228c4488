package Reports

import (
	"fmt"
	"os"
	"time"

	"Garage/Models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// WageSheet builds the payroll workbook for one pay period and returns
// the saved file path.
func WageSheet(db *gorm.DB, period string) (string, error) {
	var wages []Models.Wage
	err := db.Preload("Worker").
		Where("pay_period = ?", period).
		Order("worker_id ASC").
		Find(&wages).Error
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()
	sheet := "Wages"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")

	headers := map[string]string{
		"A1": "Employee ID", "B1": "Name", "C1": "Pay Period",
		"D1": "Base Salary", "E1": "Overtime Hours", "F1": "Overtime Pay",
		"G1": "Commission", "H1": "Bonus", "I1": "Deductions",
		"J1": "Total", "K1": "Status",
	}
	for cell, value := range headers {
		file.SetCellValue(sheet, cell, value)
	}

	var total float64
	for index, wage := range wages {
		row := index + 2
		file.SetCellValue(sheet, fmt.Sprintf("A%v", row), wage.Worker.EmployeeID)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", row), wage.Worker.Name)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", row), wage.PayPeriod)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", row), wage.BaseSalary)
		file.SetCellValue(sheet, fmt.Sprintf("E%v", row), wage.OvertimeHours)
		file.SetCellValue(sheet, fmt.Sprintf("F%v", row), wage.OvertimePay)
		file.SetCellValue(sheet, fmt.Sprintf("G%v", row), wage.Commission)
		file.SetCellValue(sheet, fmt.Sprintf("H%v", row), wage.Bonus)
		file.SetCellValue(sheet, fmt.Sprintf("I%v", row), wage.Deductions)
		file.SetCellValue(sheet, fmt.Sprintf("J%v", row), wage.TotalAmount)
		file.SetCellValue(sheet, fmt.Sprintf("K%v", row), string(wage.Status))
		total += wage.TotalAmount
	}

	summaryRow := len(wages) + 3
	file.SetCellValue(sheet, fmt.Sprintf("I%v", summaryRow), "Grand Total")
	file.SetCellValue(sheet, fmt.Sprintf("J%v", summaryRow), total)

	if err := os.MkdirAll("Reports_out", 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("Reports_out/Wages %s.xlsx", period)
	if err := file.SaveAs(filename); err != nil {
		return "", err
	}
	return filename, nil
}

// LowStockSheet builds a restock workbook of every material at or below
// its warning level.
func LowStockSheet(db *gorm.DB) (string, error) {
	var materials []Models.Material
	err := db.Where("stock_quantity <= min_stock_level").
		Order("stock_quantity ASC").
		Find(&materials).Error
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()
	sheet := "Low Stock"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")

	headers := map[string]string{
		"A1": "Code", "B1": "Name", "C1": "Category",
		"D1": "In Stock", "E1": "Min Level", "F1": "Unit Price", "G1": "Restock Cost",
	}
	for cell, value := range headers {
		file.SetCellValue(sheet, cell, value)
	}

	for index, material := range materials {
		row := index + 2
		shortfall := material.MinStockLevel - material.StockQuantity
		if shortfall < 0 {
			shortfall = 0
		}
		file.SetCellValue(sheet, fmt.Sprintf("A%v", row), material.MaterialCode)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", row), material.Name)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", row), material.Category)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", row), material.StockQuantity)
		file.SetCellValue(sheet, fmt.Sprintf("E%v", row), material.MinStockLevel)
		file.SetCellValue(sheet, fmt.Sprintf("F%v", row), material.UnitPrice)
		file.SetCellValue(sheet, fmt.Sprintf("G%v", row), material.UnitPrice*float64(shortfall))
	}

	if err := os.MkdirAll("Reports_out", 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("Reports_out/Low Stock %s.xlsx", time.Now().Format("2006-01-02"))
	if err := file.SaveAs(filename); err != nil {
		return "", err
	}
	return filename, nil
}

// OrderInvoice builds a single-order invoice workbook with labor,
// material and service line items.
func OrderInvoice(db *gorm.DB, orderID uint) (string, error) {
	var order Models.RepairOrder
	err := db.Preload("Vehicle").Preload("User").
		Preload("Assignments.Worker").
		Preload("Consumptions.Material").
		Preload("OrderServices.Service").
		First(&order, orderID).Error
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()
	sheet := "Invoice"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")

	file.SetCellValue(sheet, "A1", Models.AppSettings.ShopName)
	file.SetCellValue(sheet, "A2", "Order")
	file.SetCellValue(sheet, "B2", order.OrderNumber)
	file.SetCellValue(sheet, "A3", "Customer")
	file.SetCellValue(sheet, "B3", order.User.Name)
	file.SetCellValue(sheet, "A4", "Vehicle")
	file.SetCellValue(sheet, "B4", fmt.Sprintf("%s %s (%s)", order.Vehicle.Manufacturer, order.Vehicle.VehicleModel, order.Vehicle.LicensePlate))

	row := 6
	file.SetCellValue(sheet, fmt.Sprintf("A%v", row), "Item")
	file.SetCellValue(sheet, fmt.Sprintf("B%v", row), "Qty")
	file.SetCellValue(sheet, fmt.Sprintf("C%v", row), "Unit Price")
	file.SetCellValue(sheet, fmt.Sprintf("D%v", row), "Total")
	row++

	for _, assignment := range order.Assignments {
		file.SetCellValue(sheet, fmt.Sprintf("A%v", row), "Labor: "+assignment.Worker.Name)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", row), assignment.WorkHours)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", row), assignment.HourlyRate)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", row), assignment.TotalPayment)
		row++
	}
	for _, consumption := range order.Consumptions {
		file.SetCellValue(sheet, fmt.Sprintf("A%v", row), consumption.Material.Name)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", row), consumption.QuantityUsed)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", row), consumption.UnitPrice)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", row), consumption.TotalCost)
		row++
	}
	for _, orderService := range order.OrderServices {
		file.SetCellValue(sheet, fmt.Sprintf("A%v", row), orderService.Service.Name)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", row), 1)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", row), orderService.Price)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", row), orderService.Price)
		row++
	}

	row++
	file.SetCellValue(sheet, fmt.Sprintf("C%v", row), "Total")
	file.SetCellValue(sheet, fmt.Sprintf("D%v", row), order.TotalCost)

	if err := os.MkdirAll("Reports_out", 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("Reports_out/Invoice %s.xlsx", order.OrderNumber)
	if err := file.SaveAs(filename); err != nil {
		return "", err
	}
	return filename, nil
}
