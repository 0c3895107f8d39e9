package migrations

import (
	"vaka.link/configs/configslog"
	"vaka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTagsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating tags table...")
	err := db.AutoMigrate(&models.Tag{})
	if err != nil {
		configslog.Log.Error("Failed to migrate tags table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tags table migrated successfully")
	return nil
}
