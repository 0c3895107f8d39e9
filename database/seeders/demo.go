package seeders

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"vaka.link/configs/configslog"
	"vaka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type demoCase struct {
	Name         string
	Description  string
	Organization string
	FileType     string
	Tags         []string
}

var demoOrganizations = []models.Organization{
	{Name: "Ziraat Bankası", Description: "Türkiye'nin köklü tarım ve mevduat bankası"},
	{Name: "Garanti BBVA", Description: "Dijital bankacılıkta öncü özel banka"},
	{Name: "İş Bankası", Description: "Türkiye'nin ilk ulusal bankası"},
	{Name: "Akbank", Description: "Bireysel ve kurumsal bankacılık hizmetleri"},
}

var demoTags = []string{
	"Kişisel Finans",
	"Kredi",
	"Yatırım",
	"Sigorta",
	"Bankacılık Hizmetleri",
	"Mobil Bankacılık",
	"Finansal Okuryazarlık",
	"Bütçeleme",
}

var demoCases = []demoCase{
	{
		Name:         "Aile Bütçesi Planlama",
		Description:  "Genç bir aile için aile bütçesi oluşturma ve takip etme vakası",
		Organization: "Ziraat Bankası",
		FileType:     ".pdf",
		Tags:         []string{"Kişisel Finans", "Bütçeleme", "Finansal Okuryazarlık"},
	},
	{
		Name:         "Konut Kredisi Seçimi",
		Description:  "Gayrimenkul alımı için farklı kredi tekliflerinin analizi",
		Organization: "Ziraat Bankası",
		FileType:     ".pdf",
		Tags:         []string{"Kredi", "Kişisel Finans"},
	},
	{
		Name:         "Yeni Başlayanlar İçin Mobil Bankacılık",
		Description:  "Banka mobil uygulamasının temel kullanımı",
		Organization: "Garanti BBVA",
		FileType:     ".pdf",
		Tags:         []string{"Mobil Bankacılık", "Bankacılık Hizmetleri", "Finansal Okuryazarlık"},
	},
	{
		Name:         "Gençler İçin Yatırım Stratejisi",
		Description:  "Küçük birikimle yatırıma nasıl başlanır",
		Organization: "İş Bankası",
		FileType:     ".pdf",
		Tags:         []string{"Yatırım", "Kişisel Finans", "Finansal Okuryazarlık"},
	},
	{
		Name:         "Hayat ve Sağlık Sigortası",
		Description:  "Bireysel sigorta ürünlerinin karşılaştırması",
		Organization: "Akbank",
		FileType:     ".pdf",
		Tags:         []string{"Sigorta", "Kişisel Finans"},
	},
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// SeedDemoData örnek kurum, etiket ve vaka kayıtlarını oluşturur. Her kayıt
// adıyla kontrol edilir; mevcut kayıtlar atlanır, bu yüzden tekrar tekrar
// çalıştırılabilir. Vakaların dosya yolları gerçek dosyaya işaret etmez
// (örnek veridir); indirme denemesi 404 döner.
func SeedDemoData(db *gorm.DB) error {
	configslog.SLog.Info("Örnek veri seed işlemi başlıyor...")

	orgIDs := make(map[string]uint, len(demoOrganizations))
	for _, org := range demoOrganizations {
		var existing models.Organization
		result := db.Where("name = ?", org.Name).First(&existing)
		if result.Error == nil {
			orgIDs[org.Name] = existing.ID
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kurum kontrol edilirken veritabanı hatası",
				zap.String("name", org.Name), zap.Error(result.Error))
			return result.Error
		}

		orgToCreate := org
		if err := db.Create(&orgToCreate).Error; err != nil {
			configslog.Log.Error("Örnek kurum oluşturulamadı", zap.String("name", org.Name), zap.Error(err))
			return err
		}
		orgIDs[org.Name] = orgToCreate.ID
		configslog.SLog.Infof("Örnek kurum oluşturuldu: %s", org.Name)
	}

	tagsByName := make(map[string]models.Tag, len(demoTags))
	for _, name := range demoTags {
		tag := models.Tag{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
			configslog.Log.Error("Örnek etiket oluşturulamadı", zap.String("name", name), zap.Error(err))
			return err
		}
		tagsByName[name] = tag
	}

	for _, dc := range demoCases {
		var count int64
		if err := db.Model(&models.Case{}).Where("name = ?", dc.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			configslog.SLog.Debugf("Örnek vaka '%s' zaten mevcut, atlanıyor.", dc.Name)
			continue
		}

		orgID := orgIDs[dc.Organization]
		caseTags := make([]models.Tag, 0, len(dc.Tags))
		for _, tagName := range dc.Tags {
			caseTags = append(caseTags, tagsByName[tagName])
		}

		c := models.Case{
			Name:           dc.Name,
			Description:    dc.Description,
			FilePath:       demoFilePath(dc.Name, dc.FileType),
			FileType:       dc.FileType,
			OrganizationID: &orgID,
			Tags:           caseTags,
		}
		if err := db.Create(&c).Error; err != nil {
			configslog.Log.Error("Örnek vaka oluşturulamadı", zap.String("name", dc.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Örnek vaka oluşturuldu: %s", dc.Name)
	}

	configslog.SLog.Info("Örnek veri seed işlemi tamamlandı.")
	return nil
}

func demoFilePath(name, fileType string) string {
	slug := strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(name), "-"), "-")
	return fmt.Sprintf("uploads/ornek-%s%s", slug, fileType)
}
