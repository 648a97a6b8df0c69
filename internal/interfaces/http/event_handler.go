package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/internal/infrastructure/storage"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// EventHandler maneja las peticiones HTTP de eventos.
type EventHandler struct {
	uc    *usecase.EventUseCase
	store *storage.Store
	errorWriter
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase, store *storage.Store, log *logger.Logger, dev bool) *EventHandler {
	return &EventHandler{uc: uc, store: store, errorWriter: errorWriter{log: log, dev: dev}}
}

// List godoc
// @Summary      Listar eventos (fecha ascendente)
// @Tags         events
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Crear evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	draft, err := ParseDraft(c, h.store)
	if err != nil {
		return h.writeError(c, err)
	}
	out, err := h.uc.Create(c.Context(), draft)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("evento creado", out))
}

// Delete godoc
// @Summary      Eliminar evento
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("evento eliminado", nil))
}
