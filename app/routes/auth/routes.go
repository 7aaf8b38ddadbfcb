package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/me", MeAPI)
	api.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Token comes from the cookie or the Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}

	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user", user)

	return c.Next()
}
