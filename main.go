package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/academic"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/auth"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/classes"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/fees"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/finance"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/sponsorships"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/students"
)

// errorHandler renders every error as a JSON envelope
func errorHandler(c *fiber.Ctx, err error) error {
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
	// Set global time zone to West Africa Time
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Lagos location, falling back to UTC+1: %v", err)
		time.Local = time.FixedZone("WAT", 1*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Alarabee International School SMS",
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "database unreachable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	academic.SetupAcademicRoutes(app)
	classes.SetupClassesRoutes(app)
	students.SetupStudentsRoutes(app)
	fees.SetupFeesRoutes(app)
	sponsorships.SetupSponsorshipRoutes(app)
	finance.SetupFinanceRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := config.AppConfig.Port
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
