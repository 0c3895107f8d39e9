package routes

import (
	"vaka.link/handlers"
	"vaka.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerOrganizationRoutes(app *fiber.App) {
	orgHandler := handlers.NewOrganizationHandler()
	orgGroup := app.Group("/api/organizations")

	// Public uçlar
	orgGroup.Get("/", orgHandler.ListOrganizations)
	orgGroup.Get("/:id", orgHandler.GetOrganization)

	// Yazma uçları admin oturumu ister
	adminRoutes := orgGroup.Group("")
	adminRoutes.Use(middlewares.AuthMiddleware)
	adminRoutes.Post("/", orgHandler.CreateOrganization)
	adminRoutes.Put("/:id", orgHandler.UpdateOrganization)
	adminRoutes.Delete("/:id", orgHandler.DeleteOrganization)
}
