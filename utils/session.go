package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session locals anahtarları
const (
	SessionStoreKey    = "session_store"
	SessionAdminIDKey  = "admin_id"
	SessionUsernameKey = "username"
)

// SessionStart istek için oturumu açar. Store, router middleware'i
// tarafından locals'a konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(SessionStoreKey).(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// GetAdminIDFromSession oturumdaki admin kimliğini döndürür.
func GetAdminIDFromSession(sess *session.Session) (uint, error) {
	raw := sess.Get(SessionAdminIDKey)
	if raw == nil {
		return 0, errors.New("oturumda admin kimliği yok")
	}
	id, ok := raw.(uint)
	if !ok || id == 0 {
		return 0, errors.New("oturumdaki admin kimliği geçersiz")
	}
	return id, nil
}
