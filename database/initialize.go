package database

import (
	"vaka.link/configs/configslog"
	"vaka.link/database/migrations"
	"vaka.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyonları ve seeder'ları tek transaction içinde çalıştırır.
// Tüm migrasyonlar CREATE-IF-NOT-EXISTS semantiği taşıdığı için tekrarlanan
// çağrılar güvenlidir.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.Log.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tabloları FK bağımlılık sırasına göre kurar.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> Organization migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateOrganizationsTable(db); err != nil {
		configslog.Log.Error("Organizations tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Organization migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Tag migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateTagsTable(db); err != nil {
		configslog.Log.Error("Tags tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Tag migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Case migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCasesTables(db); err != nil {
		configslog.Log.Error("Cases tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Case migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Admin migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateAdminsTable(db); err != nil {
		configslog.Log.Error("Admins tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Admin migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders varsayılan admin hesabını garanti eder ve örnek veriyi kurar.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Varsayılan admin kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedDefaultAdmin(db); err != nil {
		configslog.Log.Error("Varsayılan admin seed işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Örnek veri seeder çalıştırılıyor...")
	if err := seeders.SeedDemoData(db); err != nil {
		configslog.Log.Error("Örnek veri seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Örnek veri seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
