package main

import (
	"log"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/auth"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/bookings"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/checkin"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/classes"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/graduation"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/routes/students"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// apiErrorHandler keeps every error answer JSON; this service has no web UI.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize env, timezone, check-in policy and database pool
	config.Init()
	defer config.GetDB().Close()

	// All occurrence arithmetic runs in the tenant timezone
	time.Local = config.GetTimezone()
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler (nightly graduation eligibility sweep)
	services.StartScheduler(config.GetDB(), config.GetTimezone())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup class routes
	classes.SetupClassRoutes(app)

	// Setup student routes
	students.SetupStudentRoutes(app)

	// Setup booking routes
	bookings.SetupBookingRoutes(app)

	// Setup check-in routes
	checkin.SetupCheckinRoutes(app)

	// Setup graduation routes
	graduation.SetupGraduationRoutes(app)

	// Handle 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})

	port := config.AppConfig.AppPort
	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
