package repositories

import (
	"context"
	"errors"
	"strings"

	"vaka.link/configs"
	"vaka.link/configs/configslog"
	"vaka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CaseFilter listeleme sorgusunun opsiyonel filtreleridir. Search, vaka adı
// veya açıklamasında büyük/küçük harf duyarsız alt dizge arar. Tags,
// verilen isimlerden EN AZ BİRİNE bağlı vakaları seçer (kapsayıcı VEYA,
// kesişim değildir).
type CaseFilter struct {
	Search string
	Tags   []string
}

// ICaseRepository vaka veritabanı işlemleri için arayüz.
type ICaseRepository interface {
	Create(ctx context.Context, c *models.Case) error
	FindByID(ctx context.Context, id uint) (*models.Case, error)
	FindAll(ctx context.Context, filter CaseFilter) ([]models.Case, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, c *models.Case) error
	IncrementDownloadCount(ctx context.Context, id uint) error
	OrganizationStatistics(ctx context.Context) ([]models.OrgStats, error)
}

// CaseRepository ICaseRepository arayüzünü uygular.
type CaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository paylaşılan DB bağlantısıyla repository oluşturur.
func NewCaseRepository() ICaseRepository {
	return &CaseRepository{db: configs.GetDB()}
}

// NewCaseRepositoryTx verilen bağlantıyla çalışan repository oluşturur.
func NewCaseRepositoryTx(tx *gorm.DB) ICaseRepository {
	return &CaseRepository{db: tx}
}

func (r *CaseRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir vaka kaydı oluşturur. Tags alanı doldurulmuş gelirse GORM
// ilişki satırlarını da yazar; etiket politikası servis katmanındadır.
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	if c == nil {
		return errors.New("oluşturulacak vaka nil olamaz")
	}
	return r.getDB(ctx).Create(c).Error
}

// FindByID ID ile bir vakayı kurum ve etiket ilişkileriyle birlikte bulur.
func (r *CaseRepository) FindByID(ctx context.Context, id uint) (*models.Case, error) {
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var c models.Case
	err := r.getDB(ctx).Preload("Organization").Preload("Tags").First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		configslog.Log.Error("CaseRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// FindAll filtreye uyan vakaları oluşturulma zamanına göre (en yeni önce)
// döndürür. Aynı ana denk kayıtlar için id ikincil sıralamadır.
func (r *CaseRepository) FindAll(ctx context.Context, filter CaseFilter) ([]models.Case, error) {
	query := r.getDB(ctx).Model(&models.Case{}).
		Preload("Organization").
		Preload("Tags")

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(cases.name) LIKE ? OR LOWER(cases.description) LIKE ?", pattern, pattern)
	}

	if len(filter.Tags) > 0 {
		query = query.Where(`cases.id IN (
			SELECT case_tags.case_id FROM case_tags
			JOIN tags ON tags.id = case_tags.tag_id
			WHERE tags.name IN ?)`, filter.Tags)
	}

	var cases []models.Case
	err := query.Order("cases.created_at DESC, cases.id DESC").Find(&cases).Error
	if err != nil {
		configslog.Log.Error("CaseRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return cases, nil
}

// Update belirli bir vakanın kolonlarını günceller (map ile).
func (r *CaseRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	db := r.getDB(ctx)

	result := db.Model(&models.Case{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		configslog.Log.Error("CaseRepository.Update: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		countErr := db.Model(&models.Case{}).Where("id = ?", id).Count(&exists).Error
		if countErr == nil && exists == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// Delete bir vaka kaydını ve etiket ilişkilerini siler. İlişki satırları FK
// cascade'ine bırakılmaz; sqlite sürücüsünde FK zorlaması kapalı olabilir.
func (r *CaseRepository) Delete(ctx context.Context, c *models.Case) error {
	if c == nil || c.ID == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM case_tags WHERE case_id = ?", c.ID).Error; err != nil {
			configslog.Log.Error("CaseRepository.Delete: ilişkiler silinemedi", zap.Uint("id", c.ID), zap.Error(err))
			return err
		}
		result := tx.Delete(&models.Case{}, c.ID)
		if result.Error != nil {
			configslog.Log.Error("CaseRepository.Delete: DB error", zap.Uint("id", c.ID), zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// IncrementDownloadCount indirme sayacını bir artırır. Kayıt yoksa sessizce
// başarılı sayılır; indirme takibi fire-and-forget çağrılır ve bilinmeyen
// id uygulama hatası değildir.
func (r *CaseRepository) IncrementDownloadCount(ctx context.Context, id uint) error {
	err := r.getDB(ctx).Model(&models.Case{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
	if err != nil {
		configslog.Log.Error("CaseRepository.IncrementDownloadCount: DB error", zap.Uint("id", id), zap.Error(err))
	}
	return err
}

// OrganizationStatistics en az bir vakası olan kurumlar için vaka sayısı ve
// toplam indirme raporunu üretir; toplam indirmeye, eşitlikte vaka sayısına
// göre azalan sıralanır.
func (r *CaseRepository) OrganizationStatistics(ctx context.Context) ([]models.OrgStats, error) {
	stats := make([]models.OrgStats, 0)
	err := r.getDB(ctx).Model(&models.Organization{}).
		Select(`organizations.id,
			organizations.name,
			organizations.logo_url,
			organizations.description,
			COUNT(cases.id) AS case_count,
			COALESCE(SUM(cases.download_count), 0) AS total_downloads`).
		Joins("LEFT JOIN cases ON cases.organization_id = organizations.id").
		Group("organizations.id, organizations.name, organizations.logo_url, organizations.description").
		Having("COUNT(cases.id) > 0").
		Order("total_downloads DESC, case_count DESC").
		Scan(&stats).Error
	if err != nil {
		configslog.Log.Error("CaseRepository.OrganizationStatistics: DB error", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// Arayüz uyumluluğu kontrolü
var _ ICaseRepository = (*CaseRepository)(nil)
