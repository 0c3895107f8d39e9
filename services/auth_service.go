package services

import (
	"context"
	"errors"

	"vaka.link/configs"
	"vaka.link/configs/configslog"
	"vaka.link/models"
	"vaka.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "kullanıcı adı veya şifre hatalı"
	ErrAuthFailed         AuthServiceError = "kimlik doğrulama sırasında hata oluştu"
)

// IAuthService admin kimlik doğrulama işlemleri için arayüz.
type IAuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.Admin, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	repo repositories.IAdminRepository
}

// NewAuthService paylaşılan DB bağlantısıyla servis oluşturur.
func NewAuthService() IAuthService {
	return NewAuthServiceWithDB(configs.GetDB())
}

// NewAuthServiceWithDB verilen bağlantıyla çalışan servis oluşturur.
func NewAuthServiceWithDB(db *gorm.DB) IAuthService {
	return &AuthService{repo: repositories.NewAdminRepositoryTx(db)}
}

// Authenticate kullanıcı adı ve şifreyi doğrular. Kullanıcının olmaması ile
// şifrenin yanlış olması aynı hatayla döner; hangi kullanıcı adlarının var
// olduğu dışarı sızdırılmaz.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Admin sorgulanırken repository hatası", zap.String("username", username), zap.Error(err))
		return nil, ErrAuthFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	configslog.SLog.Infof("Admin oturum açtı: %s", admin.Username)
	return admin, nil
}

// Arayüz uyumluluğu kontrolü
var _ IAuthService = (*AuthService)(nil)
