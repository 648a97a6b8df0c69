package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/domain"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// errorWriter traduce errores de dominio a respuestas HTTP estructuradas.
// Los errores de validación/auth se convierten en 4xx con código verificable;
// lo inesperado se loguea y sale como 500 genérico (con detalle solo en
// development). Se embebe en cada handler.
type errorWriter struct {
	log *logger.Logger
	dev bool
}

func (w errorWriter) writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp := dto.ErrorResponse{Success: false, Code: "VALIDATION"}
		if len(verr.Fields) > 0 {
			resp.Message = "Missing required fields"
			resp.Fields = verr.Fields
		} else {
			resp.Message = "Validation failed"
			resp.Errors = verr.Messages
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	var derr *domain.InvalidDateError
	if errors.As(err, &derr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_DATE", derr.Error()))
	}
	var uerr *domain.UploadError
	if errors.As(err, &uerr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("UPLOAD_FAILED", uerr.Error()))
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		// 400 y no 409: los clientes del portal esperan este status.
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("EMAIL_EXISTS", "el email ya está registrado"))
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("INVALID_CREDENTIALS", "credenciales inválidas"))
	case errors.Is(err, domain.ErrInactiveAccount):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("INACTIVE_ACCOUNT", "cuenta inactiva"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("FORBIDDEN", "acceso denegado"))
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Error("SERVICE_UNAVAILABLE", "servicio no disponible"))
	}

	w.log.WithRequest(c.Method(), c.Path()).Error().Err(err).Msg("error interno")
	msg := "error interno del servidor"
	if w.dev {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", msg))
}
