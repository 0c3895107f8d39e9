package repositories

import (
	"context"
	"errors"

	"vaka.link/configs"
	"vaka.link/configs/configslog"
	"vaka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ITagRepository etiket ve vaka-etiket ilişkisi işlemleri için arayüz.
type ITagRepository interface {
	EnsureTag(ctx context.Context, name string) (*models.Tag, error)
	FindAll(ctx context.Context) ([]models.Tag, error)
	FindNamesForCase(ctx context.Context, caseID uint) ([]string, error)
	DeleteAssociationsForCase(ctx context.Context, caseID uint) error
	AddAssociation(ctx context.Context, caseID uint, tagID uint) error
}

// TagRepository ITagRepository arayüzünü uygular.
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository paylaşılan DB bağlantısıyla repository oluşturur.
func NewTagRepository() ITagRepository {
	return &TagRepository{db: configs.GetDB()}
}

// NewTagRepositoryTx verilen bağlantıyla çalışan repository oluşturur.
func NewTagRepositoryTx(tx *gorm.DB) ITagRepository {
	return &TagRepository{db: tx}
}

func (r *TagRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// EnsureTag etiketi yoksa oluşturur, her iki durumda da kaydı döndürür.
// insert-or-ignore + lookup sırası sayesinde aynı isim için eşzamanlı
// çağrılar çift satır üretmez; benzersizliği name üzerindeki unique index taşır.
func (r *TagRepository) EnsureTag(ctx context.Context, name string) (*models.Tag, error) {
	if name == "" {
		return nil, errors.New("etiket adı boş olamaz")
	}
	db := r.getDB(ctx)

	tag := models.Tag{Name: name}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error
	if err != nil {
		configslog.Log.Error("TagRepository.EnsureTag: insert error", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	// Çakışmada Create ID doldurmaz; mevcut kaydı isimle bul.
	if tag.ID == 0 {
		if err := db.Where("name = ?", name).First(&tag).Error; err != nil {
			configslog.Log.Error("TagRepository.EnsureTag: lookup error", zap.String("name", name), zap.Error(err))
			return nil, err
		}
	}
	return &tag, nil
}

// FindAll tüm etiketleri isme göre sıralı döndürür.
func (r *TagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.getDB(ctx).Order("name").Find(&tags).Error
	if err != nil {
		configslog.Log.Error("TagRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return tags, nil
}

// FindNamesForCase bir vakaya bağlı etiket isimlerini döndürür.
// Sıralama garanti edilmez; çağıranlar sıraya bağımlı olmamalıdır.
func (r *TagRepository) FindNamesForCase(ctx context.Context, caseID uint) ([]string, error) {
	names := make([]string, 0)
	err := r.getDB(ctx).Model(&models.Tag{}).
		Joins("JOIN case_tags ON case_tags.tag_id = tags.id").
		Where("case_tags.case_id = ?", caseID).
		Pluck("tags.name", &names).Error
	if err != nil {
		configslog.Log.Error("TagRepository.FindNamesForCase: DB error", zap.Uint("case_id", caseID), zap.Error(err))
		return nil, err
	}
	return names, nil
}

// DeleteAssociationsForCase bir vakanın tüm etiket ilişkilerini kaldırır.
func (r *TagRepository) DeleteAssociationsForCase(ctx context.Context, caseID uint) error {
	err := r.getDB(ctx).Exec("DELETE FROM case_tags WHERE case_id = ?", caseID).Error
	if err != nil {
		configslog.Log.Error("TagRepository.DeleteAssociationsForCase: DB error", zap.Uint("case_id", caseID), zap.Error(err))
	}
	return err
}

// AddAssociation vaka-etiket ilişkisini ekler. (case_id, tag_id) çifti
// birincil anahtar olduğu için tekrar eklemeler sessizce yok sayılır.
func (r *TagRepository) AddAssociation(ctx context.Context, caseID uint, tagID uint) error {
	err := r.getDB(ctx).Exec(
		"INSERT INTO case_tags (case_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		caseID, tagID,
	).Error
	if err != nil {
		configslog.Log.Error("TagRepository.AddAssociation: DB error",
			zap.Uint("case_id", caseID), zap.Uint("tag_id", tagID), zap.Error(err))
	}
	return err
}

// Arayüz uyumluluğu kontrolü
var _ ITagRepository = (*TagRepository)(nil)
