package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/auth"
	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/museum-portal/internal/infrastructure/storage"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CollectionUC *usecase.CollectionUseCase
	ExhibitionUC *usecase.ExhibitionUseCase
	EventUC      *usecase.EventUseCase
	NewsUC       *usecase.NewsUseCase
	ContactUC    *usecase.ContactUseCase
	StatsUC      *usecase.StatsUseCase
	Store        *storage.Store
	Report       *pdf.StatsReportGenerator
	JWTSecret    string
	SiteURL      string
	StoreReady   func() bool
	Log          *logger.Logger
	Dev          bool
}

// Router registra las rutas de la API.
//
// Todo /api pasa por RequireStore: mientras la base no esté conectada la API
// responde 503 pero el servidor ya escucha. La lectura es pública; toda
// mutación de contenido vive bajo /api/admin con Bearer Token: crear y
// actualizar requiere admin o editor, borrar y gestionar usuarios solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequireStore(deps.StoreReady))

	authn := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleEditor)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log, deps.Dev)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authn, adminOnly, authHandler.Register)
	authGroup.Get("/me", authn, authHandler.Me)

	// Lectura pública
	collectionHandler := NewCollectionHandler(deps.CollectionUC, deps.Store, deps.Log, deps.Dev)
	api.Get("/collections", collectionHandler.List)
	api.Get("/collections/:id", collectionHandler.GetByID)

	exhibitionHandler := NewExhibitionHandler(deps.ExhibitionUC, deps.Store, deps.Log, deps.Dev)
	api.Get("/exhibitions", exhibitionHandler.List)

	eventHandler := NewEventHandler(deps.EventUC, deps.Store, deps.Log, deps.Dev)
	api.Get("/events", eventHandler.List)

	// El feed RSS es público, igual que el listado.
	newsHandler := NewNewsHandler(deps.NewsUC, deps.Store, deps.SiteURL, deps.Log, deps.Dev)
	api.Get("/news/feed", newsHandler.Feed)
	api.Get("/news", newsHandler.List)

	contactHandler := NewContactHandler(deps.ContactUC, deps.Log, deps.Dev)
	api.Post("/contact", contactHandler.Submit)

	// Panel de administración: todas las mutaciones de contenido
	admin := api.Group("/admin", authn)

	admin.Post("/collections", canWrite, collectionHandler.Create)
	admin.Put("/collections/:id", canWrite, collectionHandler.Update)
	admin.Delete("/collections/:id", adminOnly, collectionHandler.Delete)

	admin.Post("/exhibitions", canWrite, exhibitionHandler.Create)
	admin.Delete("/exhibitions/:id", adminOnly, exhibitionHandler.Delete)

	admin.Post("/events", canWrite, eventHandler.Create)
	admin.Delete("/events/:id", adminOnly, eventHandler.Delete)

	admin.Post("/news", canWrite, newsHandler.Create)

	admin.Get("/users", adminOnly, authHandler.ListUsers)

	statsHandler := NewStatsHandler(deps.StatsUC, deps.Report, deps.Log, deps.Dev)
	admin.Get("/stats", canWrite, statsHandler.Counts)
	admin.Get("/stats/report", canWrite, statsHandler.Report)

	// 404 JSON para rutas de API desconocidas
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "ruta no encontrada"))
	})
}
