package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession admin oturumları için session store'u hazırlar.
// Oturum verisi sunucu tarafında tutulur; çereze yalnızca oturum kimliği yazılır.
func SetupSession() *session.Store {
	expiration := 24 * time.Hour
	if raw := os.Getenv("SESSION_EXPIRATION_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			expiration = time.Duration(hours) * time.Hour
		}
	}

	return session.New(session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:vaka_session",
		CookieHTTPOnly: true,
		// HTTPS arkasında çalışırken SESSION_COOKIE_SECURE=true verilmeli.
		CookieSecure:   os.Getenv("SESSION_COOKIE_SECURE") == "true",
		CookieSameSite: "Lax",
	})
}
