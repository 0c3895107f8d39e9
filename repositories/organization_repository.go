package repositories

import (
	"context"
	"errors"

	"vaka.link/configs"
	"vaka.link/configs/configslog"
	"vaka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IOrganizationRepository kurum veritabanı işlemleri için arayüz.
type IOrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	FindAll(ctx context.Context) ([]models.Organization, error)
	FindByID(ctx context.Context, id uint) (*models.Organization, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// OrganizationRepository IOrganizationRepository arayüzünü uygular.
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository paylaşılan DB bağlantısıyla repository oluşturur.
func NewOrganizationRepository() IOrganizationRepository {
	return &OrganizationRepository{db: configs.GetDB()}
}

// NewOrganizationRepositoryTx verilen bağlantıyla (transaction veya test DB'si)
// çalışan repository oluşturur.
func NewOrganizationRepositoryTx(tx *gorm.DB) IOrganizationRepository {
	return &OrganizationRepository{db: tx}
}

func (r *OrganizationRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir kurum kaydı oluşturur.
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	if org == nil {
		return errors.New("oluşturulacak kurum nil olamaz")
	}
	return r.getDB(ctx).Create(org).Error
}

// FindAll tüm kurumları isme göre sıralı döndürür.
func (r *OrganizationRepository) FindAll(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.getDB(ctx).Order("name").Find(&orgs).Error
	if err != nil {
		configslog.Log.Error("OrganizationRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return orgs, nil
}

// FindByID ID ile bir kurum kaydını bulur.
func (r *OrganizationRepository) FindByID(ctx context.Context, id uint) (*models.Organization, error) {
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var org models.Organization
	err := r.getDB(ctx).First(&org, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		configslog.Log.Error("OrganizationRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &org, nil
}

// Update belirli bir kurumun verilerini günceller (map ile).
func (r *OrganizationRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	db := r.getDB(ctx)

	result := db.Model(&models.Organization{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		configslog.Log.Error("OrganizationRepository.Update: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Satır etkilenmediyse kayıt yok olabilir ya da veri aynıdır; ayırt et.
		var exists int64
		countErr := db.Model(&models.Organization{}).Where("id = ?", id).Count(&exists).Error
		if countErr == nil && exists == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// Delete bir kurum kaydını siler. Kuruma bağlı vakaların organization_id
// alanı FK tanımı gereği NULL'a çekilir.
func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		// sqlite sürücüsünde FK zorlaması kapalı olabilir; SET NULL davranışını
		// sürücüden bağımsız garanti etmek için referansları elle boşalt.
		if err := tx.Model(&models.Case{}).Where("organization_id = ?", id).
			Update("organization_id", nil).Error; err != nil {
			configslog.Log.Error("OrganizationRepository.Delete: vaka referansları boşaltılamadı",
				zap.Uint("id", id), zap.Error(err))
			return err
		}

		result := tx.Delete(&models.Organization{}, id)
		if result.Error != nil {
			configslog.Log.Error("OrganizationRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Arayüz uyumluluğu kontrolü
var _ IOrganizationRepository = (*OrganizationRepository)(nil)
