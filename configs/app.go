package configs

import (
	"os"

	"vaka.link/configs/configslog"

	"github.com/joho/godotenv"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa sessizce devam edilir;
// production ortamında değişkenler zaten dışarıdan verilir.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if configslog.SLog != nil {
			configslog.SLog.Debug(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
		}
	}
}

// GetPort uygulamanın dinleyeceği portu döndürür.
func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3000"
}

// GetUploadDir yüklenen vaka dosyalarının saklanacağı dizini döndürür.
func GetUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}
