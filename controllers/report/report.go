package reportController

import (
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	"fintrack/reports"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// scopeFromQuery maps ?year=&month= onto a reporting scope. No year means
// lifetime; a year without a month means the whole year; month is 0-11.
func scopeFromQuery(c *fiber.Ctx) (reports.Scope, bool) {
	yearStr := c.Query("year")
	if yearStr == "" {
		return reports.LifetimeScope(), true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return reports.Scope{}, false
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		return reports.YearScope(year), true
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 0 || month > 11 {
		return reports.Scope{}, false
	}

	return reports.MonthScope(year, month), true
}

// Summary derives the reporting view over the caller's active
// transactions: scoped totals, category breakdown and widget stats, plus
// the scope-independent recent activity and calendar.
func Summary(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	scope, ok := scopeFromQuery(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid year or month")
	}

	var transactions []models.Transaction
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Find(&transactions).Error; err != nil {
		return middleware.ServerErrorResponse(c)
	}

	scoped := reports.Filter(scope, transactions)

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"totals":     reports.Sum(scoped),
		"categories": reports.CategoryBreakdown(scoped),
		"stats":      reports.ComputeStats(scoped),
		"recent":     reports.Recent(transactions, 3),
		"calendar":   reports.BuildCalendar(time.Now()),
	})
}
