package migrations

import (
	"vaka.link/configs/configslog"
	"vaka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCasesTables cases tablosunu ve many2many case_tags ara tablosunu kurar.
// Ara tablo FK'ları cascade delete taşır; vaka veya etiket silindiğinde
// ilişki satırları da silinir.
func MigrateCasesTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cases tables...")
	err := db.AutoMigrate(&models.Case{})
	if err != nil {
		configslog.Log.Error("Failed to migrate cases tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cases tables migrated successfully")
	return nil
}
