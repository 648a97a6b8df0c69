package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/internal/infrastructure/storage"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// CollectionHandler maneja las peticiones HTTP del catálogo de piezas.
type CollectionHandler struct {
	uc    *usecase.CollectionUseCase
	store *storage.Store
	errorWriter
}

// NewCollectionHandler construye el handler.
func NewCollectionHandler(uc *usecase.CollectionUseCase, store *storage.Store, log *logger.Logger, dev bool) *CollectionHandler {
	return &CollectionHandler{uc: uc, store: store, errorWriter: errorWriter{log: log, dev: dev}}
}

// List godoc
// @Summary      Listar piezas activas
// @Tags         collections
// @Produce      json
// @Param        category  query  string  false  "Categoría (All = sin filtro)"
// @Param        search    query  string  false  "Búsqueda en título/descripción/origen"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/collections [get]
func (h *CollectionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// GetByID godoc
// @Summary      Obtener pieza por ID (incrementa vistas)
// @Tags         collections
// @Produce      json
// @Param        id   path  string  true  "ID de la pieza"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collections/{id} [get]
func (h *CollectionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Crear pieza
// @Tags         collections
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/collections [post]
func (h *CollectionHandler) Create(c *fiber.Ctx) error {
	draft, err := ParseDraft(c, h.store)
	if err != nil {
		return h.writeError(c, err)
	}
	out, err := h.uc.Create(c.Context(), draft)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("pieza creada", out))
}

// Update godoc
// @Summary      Actualizar pieza (parcial)
// @Tags         collections
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        id   path  string  true  "ID de la pieza"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/collections/{id} [put]
func (h *CollectionHandler) Update(c *fiber.Ctx) error {
	draft, err := ParseDraft(c, h.store)
	if err != nil {
		return h.writeError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), draft)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("pieza actualizada", out))
}

// Delete godoc
// @Summary      Eliminar pieza
// @Tags         collections
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la pieza"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/collections/{id} [delete]
func (h *CollectionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("pieza eliminada", nil))
}
