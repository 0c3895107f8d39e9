package handlers

import (
	"errors"

	"vaka.link/configs/configslog"
	"vaka.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrganizationHandler kurum koleksiyonu uçlarını yönetir.
type OrganizationHandler struct {
	orgService services.IOrganizationService
}

// NewOrganizationHandler yeni bir OrganizationHandler örneği oluşturur.
func NewOrganizationHandler() *OrganizationHandler {
	return &OrganizationHandler{orgService: services.NewOrganizationService()}
}

type organizationRequest struct {
	Name        string `json:"name" form:"name"`
	LogoURL     string `json:"logo_url" form:"logo_url"`
	Description string `json:"description" form:"description"`
}

// ListOrganizations tüm kurumları isme göre sıralı döndürür.
func (h *OrganizationHandler) ListOrganizations(c *fiber.Ctx) error {
	orgs, err := h.orgService.ListOrganizations(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListOrganizations error", zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(orgs)
}

// GetOrganization ID ile tek bir kurumu döndürür.
func (h *OrganizationHandler) GetOrganization(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFoundError(c, services.ErrOrgNotFound)
	}

	org, err := h.orgService.GetOrganizationByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrgNotFound) {
			return notFoundError(c, err)
		}
		configslog.Log.Error("GetOrganization error", zap.Int("id", id), zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(org)
}

// CreateOrganization yeni kurum oluşturur (admin).
func (h *OrganizationHandler) CreateOrganization(c *fiber.Ctx) error {
	var req organizationRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, errors.New("geçersiz istek gövdesi"))
	}

	org, err := h.orgService.CreateOrganization(c.UserContext(), services.OrganizationInput{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrOrgNameRequired) {
			return validationError(c, err)
		}
		configslog.Log.Error("CreateOrganization error", zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(org)
}

// UpdateOrganization mevcut bir kurumu günceller (admin).
func (h *OrganizationHandler) UpdateOrganization(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFoundError(c, services.ErrOrgNotFound)
	}

	var req organizationRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, errors.New("geçersiz istek gövdesi"))
	}

	err = h.orgService.UpdateOrganization(c.UserContext(), uint(id), services.OrganizationInput{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrgNotFound):
			return notFoundError(c, err)
		case errors.Is(err, services.ErrOrgNameRequired):
			return validationError(c, err)
		}
		configslog.Log.Error("UpdateOrganization error", zap.Int("id", id), zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteOrganization bir kurumu siler (admin). Kuruma bağlı vakalar silinmez;
// kurum referansları boşaltılır.
func (h *OrganizationHandler) DeleteOrganization(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFoundError(c, services.ErrOrgNotFound)
	}

	if err := h.orgService.DeleteOrganization(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrOrgNotFound) {
			return notFoundError(c, err)
		}
		configslog.Log.Error("DeleteOrganization error", zap.Int("id", id), zap.Error(err))
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
