package main

import (
	"vaka.link/configs"
	"vaka.link/configs/configsdatabase"
	"vaka.link/configs/configslog"
	"vaka.link/database"
	"vaka.link/database/seeders"
	"vaka.link/pkg/filestore"
	"vaka.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	// Şema CREATE-IF-NOT-EXISTS semantiği taşır; her açılışta çalıştırmak güvenlidir.
	database.Initialize(db, true, false)

	// Bootstrap garantisi: admins tablosu boşsa varsayılan admin oluşturulur.
	// Örnek veri seed'inden bağımsızdır; o, database/cmd ile açıkça çalıştırılır.
	if err := seeders.SeedDefaultAdmin(db); err != nil {
		configslog.Log.Fatal("Varsayılan admin garanti edilemedi", zap.Error(err))
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
		// Multipart başlıkları için dosya sınırının üstünde pay bırakılır;
		// asıl boyut kontrolü filestore katmanındadır.
		BodyLimit: filestore.MaxFileSize + 1024*1024,
	})

	routes.SetupRoutes(app)

	addr := ":" + configs.GetPort()
	configslog.SLog.Infof("Sunucu %s adresinde dinliyor", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
