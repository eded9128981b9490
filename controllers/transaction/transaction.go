package transactionController

import (
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	transactionValidator "fintrack/validators/transaction"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// dayRange builds the inclusive [00:00:00, 23:59:59.999] window for a
// YYYY-MM-DD value in the server's local zone. Whether the client meant
// its own local day is left as informal as it always was.
func dayRange(value string) (time.Time, time.Time, bool) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return time.Time{}, time.Time{}, false
	}

	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, time.Time{}, false
	}

	start := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	end := time.Date(y, time.Month(m), d, 23, 59, 59, int(999*time.Millisecond), time.Local)
	return start, end, true
}

// List returns the caller's active transactions, optionally narrowed to a
// single calendar day via ?date=YYYY-MM-DD
func List(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	query := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false)

	if date := c.Query("date"); date != "" {
		if start, end, ok := dayRange(date); ok {
			query = query.Where("date >= ? AND date <= ?", start, end)
		}
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return middleware.ServerErrorResponse(c)
	}

	return middleware.ListResponse(c, transactions, len(transactions))
}

// ListBin returns the caller's soft-deleted transactions
func ListBin(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var transactions []models.Transaction
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, true).
		Find(&transactions).Error; err != nil {
		return middleware.ServerErrorResponse(c)
	}

	return middleware.ListResponse(c, transactions, len(transactions))
}

// Create persists a new transaction for the caller
func Create(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedTransaction").(*transactionValidator.CreateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	// Cache month/year from the parsed date unless the client supplied them
	month := int(reqData.ParsedDate.Month()) - 1
	if reqData.Month != nil {
		month = *reqData.Month
	}
	year := reqData.ParsedDate.Year()
	if reqData.Year != nil {
		year = *reqData.Year
	}

	category := reqData.Category
	if category == "" {
		category = "General"
	}

	transaction := models.Transaction{
		UserID:   userId,
		Text:     reqData.Text,
		Amount:   *reqData.Amount,
		Kind:     models.TransactionKind(reqData.Type),
		Category: category,
		Date:     reqData.ParsedDate,
		Month:    month,
		Year:     year,
	}

	if err := database.Database.Db.Create(&transaction).Error; err != nil {
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, transaction)
}

// SoftDeleteAll moves every active transaction of the caller to the bin
// and reports how many were affected
func SoftDeleteAll(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	result := database.Database.Db.
		Model(&models.Transaction{}).
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"count": result.RowsAffected,
	})
}

// findOwned looks up a transaction by id scoped to the caller
func findOwned(userId uint, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := database.Database.Db.
		Where("id = ? AND user_id = ?", id, userId).
		First(&transaction).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// SoftDelete moves one transaction to the bin
func SoftDelete(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	transaction, err := findOwned(userId, c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No transaction found")
	}

	transaction.IsDeleted = true
	if err := database.Database.Db.Save(transaction).Error; err != nil {
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{})
}

// Restore clears the deletion flag on one transaction
func Restore(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	transaction, err := findOwned(userId, c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No transaction found")
	}

	transaction.IsDeleted = false
	if err := database.Database.Db.Save(transaction).Error; err != nil {
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, transaction)
}

// Purge permanently erases one transaction. Irreversible.
func Purge(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	transaction, err := findOwned(userId, c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No transaction found")
	}

	if err := database.Database.Db.Unscoped().Delete(transaction).Error; err != nil {
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{})
}
