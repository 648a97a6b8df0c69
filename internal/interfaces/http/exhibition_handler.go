package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/internal/infrastructure/storage"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// ExhibitionHandler maneja las peticiones HTTP de exposiciones.
type ExhibitionHandler struct {
	uc    *usecase.ExhibitionUseCase
	store *storage.Store
	errorWriter
}

// NewExhibitionHandler construye el handler.
func NewExhibitionHandler(uc *usecase.ExhibitionUseCase, store *storage.Store, log *logger.Logger, dev bool) *ExhibitionHandler {
	return &ExhibitionHandler{uc: uc, store: store, errorWriter: errorWriter{log: log, dev: dev}}
}

// List godoc
// @Summary      Listar exposiciones
// @Tags         exhibitions
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/exhibitions [get]
func (h *ExhibitionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Crear exposición
// @Tags         exhibitions
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/exhibitions [post]
func (h *ExhibitionHandler) Create(c *fiber.Ctx) error {
	draft, err := ParseDraft(c, h.store)
	if err != nil {
		return h.writeError(c, err)
	}
	out, err := h.uc.Create(c.Context(), draft)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("exposición creada", out))
}

// Delete godoc
// @Summary      Eliminar exposición
// @Tags         exhibitions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la exposición"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/exhibitions/{id} [delete]
func (h *ExhibitionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("exposición eliminada", nil))
}
