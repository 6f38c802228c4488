package main

import (
	"log"
	"os"

	"Garage/CronJobs"
	"Garage/FiberConfig"
	"Garage/Models"
	"Garage/Notifications"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	setupLogging()

	Models.LoadSettings("settings.json5")

	Models.Connect()

	go func() {
		if err := Notifications.InitFirebase(); err != nil {
			log.Println("Push notifications disabled:", err)
		}
	}()

	stockChecker := CronJobs.NewStockChecker(false)
	if err := stockChecker.Start(); err != nil {
		log.Println("Failed to start stock checker:", err)
	}

	FiberConfig.FiberConfig()
}

func setupLogging() {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	// Set up main application log file
	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	// Redirect log output to the file
	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime)
}
