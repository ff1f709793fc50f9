package authRoutes

import (
	authControllers "coursegen/controllers/auth"
	"coursegen/middleware"
	authValidators "coursegen/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, authControllers.Profile)
	authGroup.Get("/verify", middleware.JWTMiddleware, authControllers.Verify)
}
