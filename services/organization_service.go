package services

import (
	"context"
	"errors"
	"strings"

	"vaka.link/configs"
	"vaka.link/configs/configslog"
	"vaka.link/models"
	"vaka.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrganizationServiceError özel servis hataları
type OrganizationServiceError string

func (e OrganizationServiceError) Error() string { return string(e) }

const (
	ErrOrgNotFound       OrganizationServiceError = "kurum bulunamadı"
	ErrOrgNameRequired   OrganizationServiceError = "kurum adı zorunludur"
	ErrOrgCreationFailed OrganizationServiceError = "kurum oluşturulamadı"
	ErrOrgUpdateFailed   OrganizationServiceError = "kurum güncellenemedi"
	ErrOrgDeletionFailed OrganizationServiceError = "kurum silinemedi"
	ErrOrgListingFailed  OrganizationServiceError = "kurumlar listelenemedi"
)

// OrganizationInput kurum oluşturma/güncelleme girdisidir.
type OrganizationInput struct {
	Name        string
	LogoURL     string
	Description string
}

// IOrganizationService kurum işlemleri için arayüz.
type IOrganizationService interface {
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
	GetOrganizationByID(ctx context.Context, id uint) (*models.Organization, error)
	CreateOrganization(ctx context.Context, input OrganizationInput) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, id uint, input OrganizationInput) error
	DeleteOrganization(ctx context.Context, id uint) error
}

// OrganizationService IOrganizationService arayüzünü uygular.
type OrganizationService struct {
	repo repositories.IOrganizationRepository
}

// NewOrganizationService paylaşılan DB bağlantısıyla servis oluşturur.
func NewOrganizationService() IOrganizationService {
	return NewOrganizationServiceWithDB(configs.GetDB())
}

// NewOrganizationServiceWithDB verilen bağlantıyla çalışan servis oluşturur.
func NewOrganizationServiceWithDB(db *gorm.DB) IOrganizationService {
	return &OrganizationService{repo: repositories.NewOrganizationRepositoryTx(db)}
}

// ListOrganizations tüm kurumları isme göre sıralı döndürür.
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrOrgListingFailed
	}
	return orgs, nil
}

// GetOrganizationByID ID ile kurumu döndürür.
func (s *OrganizationService) GetOrganizationByID(ctx context.Context, id uint) (*models.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	return org, nil
}

// CreateOrganization yeni bir kurum oluşturur.
func (s *OrganizationService) CreateOrganization(ctx context.Context, input OrganizationInput) (*models.Organization, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrOrgNameRequired
	}

	org := models.Organization{
		Name:        input.Name,
		LogoURL:     input.LogoURL,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, &org); err != nil {
		configslog.Log.Error("Kurum oluşturulurken repository hatası", zap.String("name", input.Name), zap.Error(err))
		return nil, ErrOrgCreationFailed
	}

	configslog.SLog.Infof("Kurum oluşturuldu: ID %d, %s", org.ID, org.Name)
	return &org, nil
}

// UpdateOrganization bir kurumun alanlarını günceller.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, id uint, input OrganizationInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrOrgNameRequired
	}

	data := map[string]interface{}{
		"name":        input.Name,
		"logo_url":    input.LogoURL,
		"description": input.Description,
	}
	err := s.repo.Update(ctx, id, data)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrgNotFound
		}
		configslog.Log.Error("Kurum güncellenirken repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrOrgUpdateFailed
	}

	configslog.SLog.Infof("Kurum güncellendi: ID %d", id)
	return nil
}

// DeleteOrganization bir kurumu siler. Kuruma bağlı vakalar silinmez;
// organization_id referansları NULL'a çekilir.
func (s *OrganizationService) DeleteOrganization(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrgNotFound
		}
		configslog.Log.Error("Kurum silinirken repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrOrgDeletionFailed
	}

	configslog.SLog.Infof("Kurum silindi: ID %d", id)
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ IOrganizationService = (*OrganizationService)(nil)
