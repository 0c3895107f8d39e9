package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"vaka.link/configs/configslog"
	"vaka.link/repositories"
	"vaka.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CaseHandler vaka koleksiyonu uçlarını yönetir.
type CaseHandler struct {
	caseService services.ICaseService
	tagService  services.ITagService
}

// NewCaseHandler yeni bir CaseHandler örneği oluşturur.
func NewCaseHandler() *CaseHandler {
	return &CaseHandler{
		caseService: services.NewCaseService(),
		tagService:  services.NewTagService(),
	}
}

// ListCases vakaları opsiyonel search ve tags filtreleriyle listeler.
// tags parametresi virgülle ayrılır ve kapsayıcı VEYA olarak uygulanır:
// verilen isimlerden en az birine bağlı vakalar döner.
func (h *CaseHandler) ListCases(c *fiber.Ctx) error {
	filter := repositories.CaseFilter{
		Search: strings.TrimSpace(c.Query("search")),
	}
	if rawTags := c.Query("tags"); rawTags != "" {
		for _, name := range strings.Split(rawTags, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				filter.Tags = append(filter.Tags, trimmed)
			}
		}
	}

	views, err := h.caseService.ListCases(c.UserContext(), filter)
	if err != nil {
		configslog.Log.Error("ListCases error", zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(views)
}

// ListTags tüm etiketleri isme göre sıralı döndürür.
func (h *CaseHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.tagService.GetAllTags(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListTags error", zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(tags)
}

// GetCase tek bir vakayı kurum ve etiket bilgileriyle döndürür.
func (h *CaseHandler) GetCase(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFoundError(c, services.ErrCaseNotFound)
	}

	view, err := h.caseService.GetCase(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCaseNotFound) {
			return notFoundError(c, err)
		}
		configslog.Log.Error("GetCase error", zap.Int("id", id), zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(view)
}

// CreateCase multipart gövdeden yeni vaka oluşturur (admin).
func (h *CaseHandler) CreateCase(c *fiber.Ctx) error {
	input := services.CreateCaseInput{
		Name:           c.FormValue("name"),
		Description:    c.FormValue("description"),
		OrganizationID: parseOptionalID(c.FormValue("organization_id")),
	}

	tags, ok, err := parseTagsField(c.FormValue("tags"))
	if err != nil {
		return validationError(c, err)
	}
	if ok {
		input.Tags = tags
	}

	file := formFile(c)

	view, err := h.caseService.CreateCase(c.UserContext(), input, file)
	if err != nil {
		if resp, handled := uploadError(c, err); handled {
			return resp
		}
		switch {
		case errors.Is(err, services.ErrCaseNameRequired), errors.Is(err, services.ErrCaseFileRequired):
			return validationError(c, err)
		}
		configslog.Log.Error("CreateCase error", zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(view)
}

// UpdateCase mevcut bir vakayı günceller (admin). Dosya opsiyoneldir;
// verilirse eskisinin yerine geçer. tags alanı gönderilmezse etiketler korunur.
func (h *CaseHandler) UpdateCase(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFoundError(c, services.ErrCaseNotFound)
	}

	input := services.UpdateCaseInput{
		Name:           c.FormValue("name"),
		Description:    c.FormValue("description"),
		OrganizationID: parseOptionalID(c.FormValue("organization_id")),
	}

	tags, ok, err := parseTagsField(c.FormValue("tags"))
	if err != nil {
		return validationError(c, err)
	}
	if ok {
		input.Tags = &tags
	}

	file := formFile(c)

	if err := h.caseService.UpdateCase(c.UserContext(), uint(id), input, file); err != nil {
		if resp, handled := uploadError(c, err); handled {
			return resp
		}
		switch {
		case errors.Is(err, services.ErrCaseNotFound):
			return notFoundError(c, err)
		case errors.Is(err, services.ErrCaseNameRequired):
			return validationError(c, err)
		}
		configslog.Log.Error("UpdateCase error", zap.Int("id", id), zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteCase bir vakayı ve bağlı dosyasını siler (admin).
func (h *CaseHandler) DeleteCase(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFoundError(c, services.ErrCaseNotFound)
	}

	if err := h.caseService.DeleteCase(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrCaseNotFound) {
			return notFoundError(c, err)
		}
		configslog.Log.Error("DeleteCase error", zap.Int("id", id), zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// formFile multipart gövdeden "file" alanını okur; alan yoksa nil döner,
// zorunluluk kontrolü servistedir.
func formFile(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("file")
	if err != nil {
		return nil
	}
	return file
}

// parseOptionalID boş ya da geçersiz değerde nil döndürür.
func parseOptionalID(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return nil
	}
	id := uint(parsed)
	return &id
}

// parseTagsField tags alanını JSON dizi olarak çözer. Alan hiç
// gönderilmemişse (ok=false) etiketlere dokunulmayacağı anlaşılır.
func parseTagsField(raw string) ([]string, bool, error) {
	if raw == "" {
		return nil, false, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, false, errors.New("tags alanı JSON dizi olarak gönderilmelidir")
	}
	return tags, true, nil
}
