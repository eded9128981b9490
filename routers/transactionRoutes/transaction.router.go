package transactionRoutes

import (
	transactionController "fintrack/controllers/transaction"
	"fintrack/middleware"
	transactionValidator "fintrack/validators/transaction"

	"github.com/gofiber/fiber/v2"
)

func SetupTransactionRoutes(app *fiber.App) {
	txGroup := app.Group("/api/transactions")

	txGroup.Get("/", middleware.Protect, transactionController.List)
	txGroup.Get("/bin", middleware.Protect, transactionController.ListBin)
	txGroup.Post("/", transactionValidator.Create(), middleware.Protect, transactionController.Create)
	txGroup.Delete("/all", middleware.Protect, transactionController.SoftDeleteAll)
	txGroup.Delete("/permanent/:id", middleware.Protect, transactionController.Purge)
	txGroup.Put("/restore/:id", middleware.Protect, transactionController.Restore)

	// Registered last so the fixed paths above are not captured by :id
	txGroup.Delete("/:id", middleware.Protect, transactionController.SoftDelete)
}
