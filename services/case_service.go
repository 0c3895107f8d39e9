package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"vaka.link/configs"
	"vaka.link/configs/configslog"
	"vaka.link/models"
	"vaka.link/pkg/filestore"
	"vaka.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CaseServiceError özel servis hataları
type CaseServiceError string

func (e CaseServiceError) Error() string { return string(e) }

const (
	ErrCaseNotFound       CaseServiceError = "vaka bulunamadı"
	ErrCaseNameRequired   CaseServiceError = "vaka adı zorunludur"
	ErrCaseFileRequired   CaseServiceError = "vaka dosyası zorunludur"
	ErrCaseCreationFailed CaseServiceError = "vaka oluşturulamadı"
	ErrCaseUpdateFailed   CaseServiceError = "vaka güncellenemedi"
	ErrCaseDeletionFailed CaseServiceError = "vaka silinemedi"
	ErrCaseListingFailed  CaseServiceError = "vakalar listelenemedi"
)

// CreateCaseInput yeni vaka oluşturma girdisidir.
type CreateCaseInput struct {
	Name           string
	Description    string
	OrganizationID *uint
	Tags           []string
}

// UpdateCaseInput vaka güncelleme girdisidir. Tags nil ise mevcut etiketler
// korunur; boş dilim dahil herhangi bir değer tam küme değişimi demektir.
type UpdateCaseInput struct {
	Name           string
	Description    string
	OrganizationID *uint
	Tags           *[]string
}

// ICaseService vaka işlemleri için arayüz.
type ICaseService interface {
	ListCases(ctx context.Context, filter repositories.CaseFilter) ([]models.CaseView, error)
	GetCase(ctx context.Context, id uint) (*models.CaseView, error)
	CreateCase(ctx context.Context, input CreateCaseInput, file *multipart.FileHeader) (*models.CaseView, error)
	UpdateCase(ctx context.Context, id uint, input UpdateCaseInput, file *multipart.FileHeader) error
	DeleteCase(ctx context.Context, id uint) error
}

// CaseService ICaseService arayüzünü uygular. Dosya yaşam döngüsü kayıtla
// kilitli yürür: kayıt silinince/değişince eski dosya da silinir,
// başarısız oluşturmada yeni yazılmış dosya geri temizlenir.
type CaseService struct {
	repo  repositories.ICaseRepository
	files *filestore.Store
	db    *gorm.DB // Transaction için
}

// NewCaseService paylaşılan DB bağlantısı ve upload dizini ile servis oluşturur.
func NewCaseService() ICaseService {
	return NewCaseServiceWithDB(configs.GetDB(), filestore.New(configs.GetUploadDir()))
}

// NewCaseServiceWithDB verilen bağlantı ve dosya deposuyla çalışan servis
// oluşturur. Testler in-memory sqlite ve geçici dizin enjekte eder.
func NewCaseServiceWithDB(db *gorm.DB, files *filestore.Store) ICaseService {
	return &CaseService{
		repo:  repositories.NewCaseRepositoryTx(db),
		files: files,
		db:    db,
	}
}

// ListCases filtreye uyan vakaları en yeni önce döndürür.
func (s *CaseService) ListCases(ctx context.Context, filter repositories.CaseFilter) ([]models.CaseView, error) {
	cases, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, ErrCaseListingFailed
	}
	views := make([]models.CaseView, 0, len(cases))
	for i := range cases {
		views = append(views, models.NewCaseView(&cases[i]))
	}
	return views, nil
}

// GetCase tek bir vakayı kurum ve etiket bilgileriyle döndürür.
func (s *CaseService) GetCase(ctx context.Context, id uint) (*models.CaseView, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	view := models.NewCaseView(c)
	return &view, nil
}

// CreateCase dosyayı diske yazar, kaydı ve etiketlerini tek transaction
// içinde oluşturur. Veritabanı adımı başarısız olursa yazılmış dosya geri
// silinir; temizlik başarısızlığı loglanır ama asıl hatayı gölgelemez.
func (s *CaseService) CreateCase(ctx context.Context, input CreateCaseInput, file *multipart.FileHeader) (*models.CaseView, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrCaseNameRequired
	}
	if file == nil {
		return nil, ErrCaseFileRequired
	}

	stored, err := s.files.Save(file)
	if err != nil {
		// Tipli filestore hataları (izin listesi, boyut) çağırana aynen taşınır.
		return nil, err
	}

	newCase := models.Case{
		Name:           input.Name,
		Description:    input.Description,
		FilePath:       stored.Path,
		FileType:       stored.Ext,
		OrganizationID: input.OrganizationID,
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewCaseRepositoryTx(tx).Create(ctx, &newCase); err != nil {
			return err
		}
		if len(input.Tags) > 0 {
			if err := NewTagServiceWithDB(tx).SetCaseTags(ctx, newCase.ID, input.Tags); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("Vaka oluşturulurken veritabanı hatası", zap.String("name", input.Name), zap.Error(txErr))
		if rmErr := s.files.Remove(stored.Path); rmErr != nil {
			configslog.Log.Warn("Başarısız oluşturma sonrası dosya temizlenemedi",
				zap.String("path", stored.Path), zap.Error(rmErr))
		}
		return nil, ErrCaseCreationFailed
	}

	configslog.SLog.Infof("Vaka oluşturuldu: ID %d, %s", newCase.ID, newCase.Name)
	return s.GetCase(ctx, newCase.ID)
}

// UpdateCase vaka alanlarını günceller. Yeni dosya verilirse eskisi silinip
// yenisiyle değiştirilir; verilmezse mevcut dosya referansı korunur.
// Tags nil ise etiketlere dokunulmaz.
func (s *CaseService) UpdateCase(ctx context.Context, id uint, input UpdateCaseInput, file *multipart.FileHeader) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCaseNotFound
		}
		return err
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrCaseNameRequired
	}

	var stored *filestore.StoredFile
	if file != nil {
		stored, err = s.files.Save(file)
		if err != nil {
			return err
		}
	}

	data := map[string]interface{}{
		"name":            input.Name,
		"description":     input.Description,
		"organization_id": input.OrganizationID,
	}
	if stored != nil {
		data["file_path"] = stored.Path
		data["file_type"] = stored.Ext
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewCaseRepositoryTx(tx).Update(ctx, id, data); err != nil {
			return err
		}
		if input.Tags != nil {
			if err := NewTagServiceWithDB(tx).SetCaseTags(ctx, id, *input.Tags); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		// Güncelleme kalıcı olmadı; yeni yazılmış dosya sahipsiz kalmasın.
		if stored != nil {
			if rmErr := s.files.Remove(stored.Path); rmErr != nil {
				configslog.Log.Warn("Başarısız güncelleme sonrası dosya temizlenemedi",
					zap.String("path", stored.Path), zap.Error(rmErr))
			}
		}
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return ErrCaseNotFound
		}
		configslog.Log.Error("Vaka güncellenirken veritabanı hatası", zap.Uint("id", id), zap.Error(txErr))
		return ErrCaseUpdateFailed
	}

	if stored != nil {
		if rmErr := s.files.Remove(existing.FilePath); rmErr != nil {
			configslog.Log.Warn("Eski vaka dosyası silinemedi",
				zap.String("path", existing.FilePath), zap.Error(rmErr))
		}
	}

	configslog.SLog.Infof("Vaka güncellendi: ID %d", id)
	return nil
}

// DeleteCase fiziksel dosyayı ve kaydı siler. Dosyanın diskte olmaması hata
// değildir; ilişki satırları kayıtla birlikte temizlenir.
func (s *CaseService) DeleteCase(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCaseNotFound
		}
		return err
	}

	if rmErr := s.files.Remove(existing.FilePath); rmErr != nil {
		configslog.Log.Warn("Vaka dosyası silinemedi, kayıt silme yine de sürdürülüyor",
			zap.String("path", existing.FilePath), zap.Error(rmErr))
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCaseNotFound
		}
		configslog.Log.Error("Vaka silinirken veritabanı hatası", zap.Uint("id", id), zap.Error(err))
		return ErrCaseDeletionFailed
	}

	configslog.SLog.Infof("Vaka silindi: ID %d, %s", id, existing.Name)
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ ICaseService = (*CaseService)(nil)
