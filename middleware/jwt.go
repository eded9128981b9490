package middleware

import (
	"fintrack/config"
	"fintrack/database"
	"fintrack/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a signed bearer token for the user
func GenerateJWT(userID uint) (string, error) {
	ttl := time.Duration(config.AppConfig.TokenTTLDays) * 24 * time.Hour

	claims := jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// Protect is a middleware that checks for a valid bearer token and
// attaches the resolved user to the request context
func Protect(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, no token")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, no token")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, token failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, token failed")
	}

	// JWT numeric claims decode as float64
	userID := uint(claims["id"].(float64))

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, token failed")
	}

	c.Locals("userId", user.ID)
	c.Locals("user", user)

	return c.Next()
}
