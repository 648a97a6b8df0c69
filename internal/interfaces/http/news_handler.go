package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/internal/infrastructure/storage"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// NewsHandler maneja las peticiones HTTP de noticias.
type NewsHandler struct {
	uc      *usecase.NewsUseCase
	store   *storage.Store
	siteURL string
	errorWriter
}

// NewNewsHandler construye el handler. siteURL es la base pública del portal
// para los enlaces del feed RSS.
func NewNewsHandler(uc *usecase.NewsUseCase, store *storage.Store, siteURL string, log *logger.Logger, dev bool) *NewsHandler {
	return &NewsHandler{uc: uc, store: store, siteURL: siteURL, errorWriter: errorWriter{log: log, dev: dev}}
}

// List godoc
// @Summary      Listar noticias publicadas
// @Tags         news
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/news [get]
func (h *NewsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListPublished(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Crear noticia
// @Tags         news
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/news [post]
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	draft, err := ParseDraft(c, h.store)
	if err != nil {
		return h.writeError(c, err)
	}
	out, err := h.uc.Create(c.Context(), draft)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("noticia creada", out))
}

// Feed godoc
// @Summary      Feed RSS de noticias publicadas
// @Tags         news
// @Produce      application/rss+xml
// @Success      200  {string}  string
// @Router       /api/news/feed [get]
func (h *NewsHandler) Feed(c *fiber.Ctx) error {
	items, err := h.uc.ListPublished(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	xml, err := buildNewsFeed(h.siteURL, items)
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.SendString(xml)
}
