package routes

import (
	"vaka.link/handlers"
	"vaka.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler()
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/status", authHandler.Status)

	protectedRoutes := authGroup.Group("")
	protectedRoutes.Use(middlewares.AuthMiddleware)
	protectedRoutes.Post("/logout", authHandler.Logout)
}
