package handlers

import (
	"vaka.link/configs/configslog"
	"vaka.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatisticsHandler indirme takibi ve istatistik raporu uçlarını yönetir.
type StatisticsHandler struct {
	statsService services.IStatisticsService
}

// NewStatisticsHandler yeni bir StatisticsHandler örneği oluşturur.
func NewStatisticsHandler() *StatisticsHandler {
	return &StatisticsHandler{statsService: services.NewStatisticsService()}
}

// TrackDownload indirme sayacını artırır. İndirme linkinden fire-and-forget
// çağrılır; bilinmeyen ya da bozuk id sessizce başarılı sayılır.
func (h *StatisticsHandler) TrackDownload(c *fiber.Ctx) error {
	id, err := c.ParamsInt("caseId")
	if err != nil || id <= 0 {
		return c.JSON(fiber.Map{"success": true})
	}

	if err := h.statsService.TrackDownload(c.UserContext(), uint(id)); err != nil {
		configslog.Log.Error("TrackDownload error", zap.Int("case_id", id), zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetStatistics kurum bazlı vaka sayısı ve toplam indirme raporunu döndürür.
func (h *StatisticsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsService.GetStatistics(c.UserContext())
	if err != nil {
		configslog.Log.Error("GetStatistics error", zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(stats)
}
