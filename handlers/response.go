package handlers

import (
	"errors"

	"vaka.link/pkg/filestore"

	"github.com/gofiber/fiber/v2"
)

// jsonError tipli servis hatasını {kind, error} gövdesiyle döndürür.
// İç hata detayları ve yollar dışarı sızdırılmaz.
func jsonError(c *fiber.Ctx, status int, kind string, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"kind":  kind,
		"error": err.Error(),
	})
}

// storageError beklenmeyen veritabanı/dosya sistemi hatalarının ortak cevabıdır.
func storageError(c *fiber.Ctx, err error) error {
	return jsonError(c, fiber.StatusInternalServerError, "storage_error", err)
}

// uploadError filestore'un tipli ret hatalarını HTTP koduna çevirir;
// eşleşme yoksa ele alınmadı (false) bilgisi döner.
func uploadError(c *fiber.Ctx, err error) (error, bool) {
	switch {
	case errors.Is(err, filestore.ErrFileTypeNotAllowed):
		return jsonError(c, fiber.StatusUnsupportedMediaType, "unsupported_media_type", err), true
	case errors.Is(err, filestore.ErrFileTooLarge):
		return jsonError(c, fiber.StatusRequestEntityTooLarge, "payload_too_large", err), true
	case errors.Is(err, filestore.ErrFileSaveFailed):
		return storageError(c, err), true
	}
	return nil, false
}

// validationError 400 cevabı üretir.
func validationError(c *fiber.Ctx, err error) error {
	return jsonError(c, fiber.StatusBadRequest, "validation_error", err)
}

// notFoundError 404 cevabı üretir.
func notFoundError(c *fiber.Ctx, err error) error {
	return jsonError(c, fiber.StatusNotFound, "not_found", err)
}
