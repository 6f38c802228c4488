package CronJobs

import (
	"fmt"
	"log"

	"Garage/Models"
	"Garage/Notifications"

	"github.com/robfig/cron/v3"
)

// StockChecker is the scheduled inventory watchdog. It alerts admins
// about materials at or below their warning level so restocks happen
// before an order completion fails on stock.
type StockChecker struct {
	cronScheduler  *cron.Cron
	runImmediately bool
	jobID          cron.EntryID
}

// NewStockChecker creates a new stock checker
func NewStockChecker(runImmediately bool) *StockChecker {
	return &StockChecker{
		cronScheduler:  cron.New(cron.WithSeconds()),
		runImmediately: runImmediately,
	}
}

// Start schedules the daily check at 7:00 AM
func (s *StockChecker) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 0 7 * * *", func() {
		log.Println("Running scheduled daily stock check")
		s.runStockCheck()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Stock check scheduler started - will run daily at 7:00 AM")

	if s.runImmediately {
		log.Println("Running initial stock check")
		s.runStockCheck()
	}

	return nil
}

// Stop terminates the stock checker
func (s *StockChecker) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Stock check scheduler stopped")
	}
}

// UpdateSchedule changes the check schedule.
// Format: "0 0 7 * * *" = At 07:00:00 AM every day
func (s *StockChecker) UpdateSchedule(schedule string) error {
	s.cronScheduler.Remove(s.jobID)

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled stock check")
		s.runStockCheck()
	})
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Stock check schedule updated to: %s\n", schedule)
	return nil
}

// RunManualCheck executes a stock check outside the schedule
func (s *StockChecker) RunManualCheck() {
	log.Println("Running manual stock check")
	s.runStockCheck()
}

func (s *StockChecker) runStockCheck() {
	var materials []Models.Material
	err := Models.DB.Where("stock_quantity <= min_stock_level").
		Order("stock_quantity ASC").
		Find(&materials).Error
	if err != nil {
		log.Printf("Error in stock check: %v\n", err)
		return
	}

	if len(materials) == 0 {
		log.Println("No materials below warning level")
		return
	}

	log.Printf("%d materials at or below warning level", len(materials))
	for _, material := range materials {
		log.Printf("  %s (%s): %d on hand, warning level %d",
			material.Name, material.MaterialCode, material.StockQuantity, material.MinStockLevel)
	}

	body := fmt.Sprintf("%d materials need restocking. First: %s (%d left)",
		len(materials), materials[0].Name, materials[0].StockQuantity)
	if err := Notifications.NotifyAdmins("Low stock warning", body); err != nil {
		log.Printf("Error sending low stock notification: %v", err)
	}
}
