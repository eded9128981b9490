package transactionValidator

import (
	"fintrack/middleware"
	"fintrack/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the validated create-transaction body. Amount, month and
// year are pointers so "absent" can be told apart from zero.
type CreateRequest struct {
	Text     string   `json:"text"`
	Amount   *float64 `json:"amount"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Date     string   `json:"date"`
	Month    *int     `json:"month"`
	Year     *int     `json:"year"`

	ParsedDate time.Time `json:"-"`
}

// ParseDate accepts full timestamps or a plain calendar day. Day-only input
// is taken in the server's local zone, mirroring how the day filter builds
// its range.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		var messages []string

		if strings.TrimSpace(reqData.Text) == "" {
			messages = append(messages, "Please add some text")
		}
		if reqData.Amount == nil {
			messages = append(messages, "Please add a positive or negative number")
		}
		if reqData.Type != string(models.KindIncome) && reqData.Type != string(models.KindExpense) {
			messages = append(messages, "Please select a valid type")
		}
		if strings.TrimSpace(reqData.Date) == "" {
			messages = append(messages, "Please add a date")
		}

		if len(messages) > 0 {
			return middleware.ValidationErrorResponse(c, messages)
		}

		parsed, err := ParseDate(reqData.Date)
		if err != nil {
			return middleware.ValidationErrorResponse(c, []string{"Invalid Date"})
		}
		reqData.ParsedDate = parsed

		c.Locals("validatedTransaction", reqData)
		return c.Next()
	}
}
