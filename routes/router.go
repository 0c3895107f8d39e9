package routes

import (
	"vaka.link/configs"
	"vaka.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionAndLocals())

	// --- API Rota Grupları ---
	registerAuthRoutes(app)         // /api/auth rotaları
	registerCaseRoutes(app)         // /api/cases rotaları
	registerOrganizationRoutes(app) // /api/organizations rotaları
	registerStatisticsRoutes(app)   // /api/statistics rotaları

	// --- Statik Dosyalar ---
	// Yüklenen vaka dosyaları DB'deki file_path ile aynı yoldan servis edilir.
	app.Static("/uploads", configs.GetUploadDir())

	// --- Sayfalar ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{"Title": "Vaka Kütüphanesi"})
	})
	app.Get("/cases", func(c *fiber.Ctx) error {
		return c.Render("cases", fiber.Map{"Title": "Vakalar"})
	})
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.Render("admin", fiber.Map{"Title": "Yönetim Paneli"})
	})

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve oturumdaki admin bilgisini
// locals'a koyar; korumalı rotalar locals üzerinden kontrol eder.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals(utils.SessionStoreKey, sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if adminID, idErr := utils.GetAdminIDFromSession(sess); idErr == nil {
			c.Locals("adminID", adminID)
			if username, ok := sess.Get(utils.SessionUsernameKey).(string); ok {
				c.Locals("adminUsername", username)
			}
		}
		return c.Next()
	}
}

// notFoundHandler eşleşmeyen istekleri içerik tipine göre cevaplar.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"kind": "not_found", "error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"})
	}
}
