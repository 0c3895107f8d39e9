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

// IAdminRepository admin hesabı sorguları için arayüz.
type IAdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByID(ctx context.Context, id uint) (*models.Admin, error)
}

// AdminRepository IAdminRepository arayüzünü uygular.
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository paylaşılan DB bağlantısıyla repository oluşturur.
func NewAdminRepository() IAdminRepository {
	return &AdminRepository{db: configs.GetDB()}
}

// NewAdminRepositoryTx verilen bağlantıyla çalışan repository oluşturur.
func NewAdminRepositoryTx(tx *gorm.DB) IAdminRepository {
	return &AdminRepository{db: tx}
}

func (r *AdminRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindByUsername kullanıcı adıyla admin kaydını bulur.
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if username == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var admin models.Admin
	err := r.getDB(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		configslog.Log.Error("AdminRepository.FindByUsername: DB error", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

// FindByID ID ile admin kaydını bulur.
func (r *AdminRepository) FindByID(ctx context.Context, id uint) (*models.Admin, error) {
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var admin models.Admin
	err := r.getDB(ctx).First(&admin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		configslog.Log.Error("AdminRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

// Arayüz uyumluluğu kontrolü
var _ IAdminRepository = (*AdminRepository)(nil)
