package FiberConfig

import (
	"fmt"
	"time"

	"Garage/Controllers"
	"Garage/Models"
	"Garage/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	vehicleController := Controllers.NewVehicleController(db)
	workerController := Controllers.NewWorkerController(db)
	materialController := Controllers.NewMaterialController(db)
	serviceController := Controllers.NewServiceController(db)
	orderController := Controllers.NewOrderController(db, Controllers.NewRandomSelector())
	wageController := Controllers.NewWageController(db)
	photoController := Controllers.NewPhotoController(db)
	supplierController := Controllers.NewSupplierController(db)
	reportController := Controllers.NewReportController(db)
	analyticsController := Controllers.NewAnalyticsController(db)

	// API group
	api := app.Group("/api")

	// Vehicle routes
	vehicles := api.Group("/vehicles", middleware.Verify(1))
	vehicles.Get("/mine", vehicleController.GetMyVehicles)
	vehicles.Get("/", middleware.Verify(3), vehicleController.GetVehicles)
	vehicles.Post("/", vehicleController.CreateVehicle)
	vehicles.Get("/:id", vehicleController.GetVehicle)
	vehicles.Put("/:id", vehicleController.UpdateVehicle)
	vehicles.Delete("/:id", middleware.Verify(3), vehicleController.DeleteVehicle)

	// Worker routes
	workers := api.Group("/workers", middleware.Verify(2))
	workers.Get("/my-wages", workerController.GetMyWages)
	workers.Get("/", middleware.Verify(3), workerController.GetWorkers)
	workers.Get("/:id", middleware.Verify(3), workerController.GetWorker)
	workers.Post("/", middleware.Verify(3), workerController.CreateWorker)
	workers.Put("/:id", middleware.Verify(3), workerController.UpdateWorker)
	workers.Delete("/:id", middleware.Verify(4), workerController.DeleteWorker)

	// Order lifecycle routes
	orders := api.Group("/orders", middleware.Verify(1))
	orders.Post("/", orderController.Create)
	orders.Get("/mine", orderController.GetMyOrders)
	orders.Get("/worker-orders", middleware.Verify(2), orderController.GetWorkerOrders)
	orders.Get("/pending", middleware.Verify(2), orderController.GetPendingOrders)
	orders.Get("/", middleware.Verify(3), orderController.GetAllOrders)
	orders.Get("/:id", orderController.GetOrder)
	orders.Put("/:id/accept", middleware.Verify(2), orderController.Accept)
	orders.Put("/:id/reject", middleware.Verify(2), orderController.Reject)
	orders.Put("/:id/complete", middleware.Verify(2), orderController.Complete)
	orders.Put("/:id/status", middleware.Verify(3), orderController.UpdateStatus)
	orders.Put("/:id", middleware.Verify(3), orderController.Update)
	orders.Post("/:id/services", middleware.Verify(3), orderController.AddService)
	orders.Delete("/:id", middleware.Verify(3), orderController.Delete)

	// Order photos
	orders.Post("/:id/photos", middleware.Verify(2), photoController.Upload)
	orders.Get("/:id/photos", photoController.List)
	api.Delete("/photos/:id", middleware.Verify(3), photoController.Delete)

	// Material inventory routes
	materials := api.Group("/materials", middleware.Verify(2))
	materials.Get("/", materialController.GetMaterials)
	materials.Get("/low-stock", materialController.GetLowStock)
	materials.Get("/:id", materialController.GetMaterial)
	materials.Post("/", middleware.Verify(3), materialController.CreateMaterial)
	materials.Put("/:id", middleware.Verify(3), materialController.UpdateMaterial)
	materials.Post("/:id/restock", middleware.Verify(3), materialController.Restock)
	materials.Delete("/:id", middleware.Verify(4), materialController.DeleteMaterial)

	// Service catalog routes
	services := api.Group("/services", middleware.Verify(1))
	services.Get("/", serviceController.GetServices)
	services.Get("/:id", serviceController.GetService)
	services.Post("/", middleware.Verify(3), serviceController.CreateService)
	services.Put("/:id", middleware.Verify(3), serviceController.UpdateService)
	services.Delete("/:id", middleware.Verify(3), serviceController.DeleteService)

	// Payroll routes
	wages := api.Group("/wages", middleware.Verify(3))
	wages.Get("/", wageController.GetWages)
	wages.Get("/:id", wageController.GetWage)
	wages.Put("/:id/pay", wageController.MarkPaid)
	wages.Put("/:id/adjust", wageController.Adjust)

	// Supplier routes
	suppliers := api.Group("/suppliers", middleware.Verify(3))
	suppliers.Get("/", supplierController.GetSuppliers)
	suppliers.Post("/", supplierController.CreateSupplier)
	suppliers.Get("/quotes", supplierController.GetQuotes)
	suppliers.Get("/restock-comparison", supplierController.CompareLowStock)
	suppliers.Post("/:id/fetch", supplierController.FetchQuotes)
	suppliers.Delete("/:id", supplierController.DeleteSupplier)

	// Report routes
	reports := api.Group("/reports", middleware.Verify(3))
	reports.Get("/wages", reportController.WageSheet)
	reports.Get("/low-stock", reportController.LowStockSheet)
	reports.Get("/invoice/:id", reportController.Invoice)

	// Analytics routes
	analytics := api.Group("/analytics", middleware.Verify(3))
	analytics.Get("/summary", analyticsController.Summary)
	analytics.Get("/revenue", analyticsController.RevenueByMonth)
	analytics.Get("/workers", analyticsController.WorkerUtilization)
	app.Get("/dashboard", middleware.Verify(3), analyticsController.Dashboard)

	app.Post("/api/UpdateToken", middleware.Verify(1), Models.UpdateToken)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	app.Post("/api/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)
	app.Patch("/api/UpdateUser", middleware.Verify(4), Controllers.UpdateUser)
	app.Get("/api/FetchUsers", middleware.Verify(4), Controllers.FetchUsers)
	app.Delete("/api/DeleteUser", middleware.Verify(4), Controllers.DeleteUser)
	app.Post("/api/Login", Controllers.Login)
	app.Get("/api/validate-token", Controllers.ValidateToken)
	app.Use("/api/User", Controllers.User)
	app.Use("/api/Logout", Controllers.Logout)

	// Serve order photos
	app.Static("/Photos", "./"+Models.AppSettings.PhotoDir, fiber.Static{Compress: true, CacheDuration: time.Second * 10})

	app.Listen(":3001")
}
