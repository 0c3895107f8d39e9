package services

import (
	"context"
	"strings"

	"vaka.link/configs"
	"vaka.link/configs/configslog"
	"vaka.link/models"
	"vaka.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TagServiceError özel servis hataları
type TagServiceError string

func (e TagServiceError) Error() string { return string(e) }

const (
	ErrTagNameRequired   TagServiceError = "etiket adı boş olamaz"
	ErrTagEnsureFailed   TagServiceError = "etiket oluşturulamadı"
	ErrTagReplaceFailed  TagServiceError = "vaka etiketleri güncellenemedi"
	ErrTagListingFailed  TagServiceError = "etiketler listelenemedi"
	ErrTagInvalidCaseRef TagServiceError = "geçersiz vaka referansı"
)

// ITagService etiket işlemleri için arayüz.
type ITagService interface {
	EnsureTag(ctx context.Context, name string) (*models.Tag, error)
	SetCaseTags(ctx context.Context, caseID uint, names []string) error
	GetTagsForCase(ctx context.Context, caseID uint) ([]string, error)
	GetAllTags(ctx context.Context) ([]models.Tag, error)
}

// TagService ITagService arayüzünü uygular.
type TagService struct {
	repo repositories.ITagRepository
	db   *gorm.DB // Transaction için
}

// NewTagService paylaşılan DB bağlantısıyla servis oluşturur.
func NewTagService() ITagService {
	return NewTagServiceWithDB(configs.GetDB())
}

// NewTagServiceWithDB verilen bağlantıyla çalışan servis oluşturur.
// Testler in-memory sqlite bağlantısı enjekte eder.
func NewTagServiceWithDB(db *gorm.DB) ITagService {
	return &TagService{
		repo: repositories.NewTagRepositoryTx(db),
		db:   db,
	}
}

// EnsureTag etiketi yoksa oluşturur; her iki durumda da aynı kayda çözülür.
// Aynı isimle ikinci çağrı aynı ID'yi döndürür.
func (s *TagService) EnsureTag(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTagNameRequired
	}
	tag, err := s.repo.EnsureTag(ctx, name)
	if err != nil {
		configslog.Log.Error("Etiket oluşturulurken repository hatası", zap.String("name", name), zap.Error(err))
		return nil, ErrTagEnsureFailed
	}
	return tag, nil
}

// SetCaseTags bir vakanın etiket kümesini verilen isimlerle tamamen değiştirir.
// Boş ya da nil liste vakayı etiketsiz bırakır. Sil + ekle adımları tek
// transaction içinde koşar; yarıda kalan güncelleme eski ya da yeni kümeden
// birini bırakır, ikisinin karışımını değil.
func (s *TagService) SetCaseTags(ctx context.Context, caseID uint, names []string) error {
	if caseID == 0 {
		return ErrTagInvalidCaseRef
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewTagRepositoryTx(tx)

		if err := repoTx.DeleteAssociationsForCase(ctx, caseID); err != nil {
			return err
		}

		seen := make(map[string]bool, len(names))
		for _, rawName := range names {
			name := strings.TrimSpace(rawName)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true

			tag, err := repoTx.EnsureTag(ctx, name)
			if err != nil {
				return err
			}
			if err := repoTx.AddAssociation(ctx, caseID, tag.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		configslog.Log.Error("Vaka etiketleri değiştirilirken hata", zap.Uint("case_id", caseID), zap.Error(err))
		return ErrTagReplaceFailed
	}
	return nil
}

// GetTagsForCase vakaya bağlı etiket isimlerini döndürür. Etiketsiz vakada
// boş dilim döner, nil değil. Sıralama garanti edilmez.
func (s *TagService) GetTagsForCase(ctx context.Context, caseID uint) ([]string, error) {
	if caseID == 0 {
		return nil, ErrTagInvalidCaseRef
	}
	names, err := s.repo.FindNamesForCase(ctx, caseID)
	if err != nil {
		return nil, ErrTagListingFailed
	}
	return names, nil
}

// GetAllTags tüm etiketleri isme göre sıralı döndürür.
func (s *TagService) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrTagListingFailed
	}
	return tags, nil
}

// Arayüz uyumluluğu kontrolü
var _ ITagService = (*TagService)(nil)
