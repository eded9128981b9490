package reportRoutes

import (
	reportController "fintrack/controllers/report"
	"fintrack/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	reportGroup := app.Group("/api/reports")

	reportGroup.Get("/summary", middleware.Protect, reportController.Summary)
}
