package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// ContactHandler maneja el formulario público de contacto.
type ContactHandler struct {
	uc *usecase.ContactUseCase
	errorWriter
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase, log *logger.Logger, dev bool) *ContactHandler {
	return &ContactHandler{uc: uc, errorWriter: errorWriter{log: log, dev: dev}}
}

// Submit godoc
// @Summary      Enviar mensaje de contacto
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "Mensaje"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("mensaje recibido", out))
}
