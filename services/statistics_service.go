package services

import (
	"context"

	"vaka.link/configs"
	"vaka.link/models"
	"vaka.link/repositories"

	"gorm.io/gorm"
)

// StatisticsServiceError özel servis hataları
type StatisticsServiceError string

func (e StatisticsServiceError) Error() string { return string(e) }

const (
	ErrStatsTrackingFailed StatisticsServiceError = "indirme sayacı güncellenemedi"
	ErrStatsReportFailed   StatisticsServiceError = "istatistik raporu üretilemedi"
)

// IStatisticsService istatistik işlemleri için arayüz.
type IStatisticsService interface {
	TrackDownload(ctx context.Context, caseID uint) error
	GetStatistics(ctx context.Context) ([]models.OrgStats, error)
}

// StatisticsService IStatisticsService arayüzünü uygular.
type StatisticsService struct {
	repo repositories.ICaseRepository
}

// NewStatisticsService paylaşılan DB bağlantısıyla servis oluşturur.
func NewStatisticsService() IStatisticsService {
	return NewStatisticsServiceWithDB(configs.GetDB())
}

// NewStatisticsServiceWithDB verilen bağlantıyla çalışan servis oluşturur.
func NewStatisticsServiceWithDB(db *gorm.DB) IStatisticsService {
	return &StatisticsService{repo: repositories.NewCaseRepositoryTx(db)}
}

// TrackDownload vakanın indirme sayacını bir artırır. İndirme linkinden
// fire-and-forget çağrıldığı için bilinmeyen id sessizce başarılı sayılır;
// yalnızca gerçek veritabanı hataları döner.
func (s *StatisticsService) TrackDownload(ctx context.Context, caseID uint) error {
	if err := s.repo.IncrementDownloadCount(ctx, caseID); err != nil {
		return ErrStatsTrackingFailed
	}
	return nil
}

// GetStatistics en az bir vakası olan her kurum için vaka sayısı ve toplam
// indirme raporunu döndürür. Vakası olmayan kurumlar rapora girmez.
func (s *StatisticsService) GetStatistics(ctx context.Context) ([]models.OrgStats, error) {
	stats, err := s.repo.OrganizationStatistics(ctx)
	if err != nil {
		return nil, ErrStatsReportFailed
	}
	return stats, nil
}

// Arayüz uyumluluğu kontrolü
var _ IStatisticsService = (*StatisticsService)(nil)
