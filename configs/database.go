package configs

import (
	"vaka.link/configs/configsdatabase"

	"gorm.io/gorm"
)

// GetDB repository katmanının kullandığı paylaşılan GORM bağlantısını döndürür.
// Asıl bağlantı yönetimi configsdatabase paketindedir.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}
