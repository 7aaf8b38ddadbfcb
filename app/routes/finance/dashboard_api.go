package finance

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
)

// GetDashboardAPI returns the aggregated billing metrics
func GetDashboardAPI(c *fiber.Ctx, db *sql.DB) error {
	dashboard, err := database.GetFinanceDashboard(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dashboard,
	})
}

// GetReportAPI returns the revenue report for a date range. Defaults to the
// last 30 days.
func GetReportAPI(c *fiber.Ctx, db *sql.DB) error {
	to := c.Query("to", time.Now().Format("2006-01-02"))
	from := c.Query("from", time.Now().AddDate(0, 0, -30).Format("2006-01-02"))

	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "from must be a YYYY-MM-DD date")
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "to must be a YYYY-MM-DD date")
	}
	if fromDate.After(toDate) {
		return fiber.NewError(fiber.StatusBadRequest, "from must not be after to")
	}

	report, err := database.GetFinanceReport(db, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build report")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}
