package authRoutes

import (
	authControllers "studyplanner/controllers/auth"
	"studyplanner/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authControllers.Signup)
	authGroup.Post("/login", authControllers.Login)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authControllers.LoginHistoryList)
}
