package routes

import (
	"vaka.link/handlers"
	"vaka.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerCaseRoutes(app *fiber.App) {
	caseHandler := handlers.NewCaseHandler()
	caseGroup := app.Group("/api/cases")

	// Public uçlar
	caseGroup.Get("/", caseHandler.ListCases)
	caseGroup.Get("/meta/tags", caseHandler.ListTags)
	caseGroup.Get("/:id", caseHandler.GetCase)

	// Yazma uçları admin oturumu ister
	adminRoutes := caseGroup.Group("")
	adminRoutes.Use(middlewares.AuthMiddleware)
	adminRoutes.Post("/", caseHandler.CreateCase)
	adminRoutes.Put("/:id", caseHandler.UpdateCase)
	adminRoutes.Delete("/:id", caseHandler.DeleteCase)
}
