package routes

import (
	"vaka.link/handlers"

	"github.com/gofiber/fiber/v2"
)

func registerStatisticsRoutes(app *fiber.App) {
	statsHandler := handlers.NewStatisticsHandler()
	statsGroup := app.Group("/api/statistics")

	// Her iki uç da public'tir; indirme takibi anonim kullanıcıdan gelir.
	statsGroup.Get("/", statsHandler.GetStatistics)
	statsGroup.Post("/track/:caseId", statsHandler.TrackDownload)
}
