package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"vaka.link/configs/configslog"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB veritabanı bağlantısını kurar. DB_DRIVER ortam değişkenine göre
// postgres (varsayılan) veya sqlite sürücüsü kullanılır. sqlite sürücüsü
// saf Go olduğu için lokal geliştirmede ve testlerde cgo gerektirmez.
func InitDB() {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = "vaka.db"
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(buildPostgresDSN())
	default:
		configslog.Log.Fatal("Bilinmeyen veritabanı sürücüsü", zap.String("driver", driver))
		return
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.String("driver", driver), zap.Error(err))
		return
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı havuzuna erişilemedi", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = gormDB
	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (%s)", driver)
}

// GetDB aktif GORM bağlantısını döndürür.
func GetDB() *gorm.DB {
	return db
}

// SetDB bağlantıyı dışarıdan enjekte eder. Testlerin in-memory sqlite
// bağlantısı kullanabilmesi içindir.
func SetDB(gormDB *gorm.DB) {
	db = gormDB
}

// CloseDB altta yatan sql.DB bağlantısını kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken bağlantıya erişilemedi", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}

func buildPostgresDSN() string {
	host := envOrDefault("DB_HOST", "localhost")
	port := envOrDefault("DB_PORT", "5432")
	user := envOrDefault("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	name := envOrDefault("DB_NAME", "vaka")
	sslMode := envOrDefault("DB_SSLMODE", "disable")
	timezone := envOrDefault("DB_TIMEZONE", "Europe/Istanbul")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		host, port, user, password, name, sslMode, timezone)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
