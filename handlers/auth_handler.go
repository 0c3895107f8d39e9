package handlers

import (
	"errors"

	"vaka.link/configs/configslog"
	"vaka.link/services"
	"vaka.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler admin oturum uçlarını yönetir.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login kimlik bilgilerini doğrular ve sunucu tarafında oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, errors.New("geçersiz istek gövdesi"))
	}
	if req.Username == "" || req.Password == "" {
		return validationError(c, errors.New("kullanıcı adı ve şifre zorunludur"))
	}

	admin, err := h.authService.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return jsonError(c, fiber.StatusUnauthorized, "auth_error", err)
		}
		configslog.Log.Error("Login: kimlik doğrulama hatası", zap.Error(err))
		return storageError(c, err)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: oturum başlatılamadı", zap.Error(err))
		return storageError(c, errors.New("oturum başlatılamadı"))
	}
	sess.Set(utils.SessionAdminIDKey, admin.ID)
	sess.Set(utils.SessionUsernameKey, admin.Username)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: oturum kaydedilemedi", zap.Error(err))
		return storageError(c, errors.New("oturum kaydedilemedi"))
	}

	return c.JSON(fiber.Map{"success": true, "username": admin.Username})
}

// Logout oturumu sunucu tarafında geçersiz kılar.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return storageError(c, errors.New("oturum bulunamadı"))
	}
	if err := sess.Destroy(); err != nil {
		configslog.Log.Error("Logout: oturum sonlandırılamadı", zap.Error(err))
		return storageError(c, errors.New("oturum sonlandırılamadı"))
	}
	return c.JSON(fiber.Map{"success": true})
}

// Status mevcut kimlik doğrulama durumunu döndürür.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	adminID, ok := c.Locals("adminID").(uint)
	if !ok || adminID == 0 {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	username, _ := c.Locals("adminUsername").(string)
	return c.JSON(fiber.Map{"authenticated": true, "username": username})
}
