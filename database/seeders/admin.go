package seeders

import (
	"vaka.link/configs/configslog"
	"vaka.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultAdmin admins tablosu boşsa varsayılan admin hesabını oluşturur.
// Tekrarlanan çağrılarda tablo dolu olduğu için no-op'tur. Varsayılan şifre
// bilinçli olarak zayıftır; deploy eden kişinin ilk iş olarak değiştirmesi
// beklenir ve bu yüzden startup logunda açıkça duyurulur.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Admin sayısı kontrol edilemedi", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debug("Admin hesabı mevcut, varsayılan admin oluşturulmayacak.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(models.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Varsayılan admin şifresi hashlenemedi", zap.Error(err))
		return err
	}

	admin := models.Admin{
		Username:     models.DefaultAdminUsername,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Varsayılan admin oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Warnf("Varsayılan admin oluşturuldu: kullanıcı=%s şifre=%s, lütfen hemen değiştirin!",
		models.DefaultAdminUsername, models.DefaultAdminPassword)
	return nil
}
