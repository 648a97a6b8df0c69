package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/museum-portal/internal/application/auth"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/museum-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/museum-portal/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/museum-portal/internal/interfaces/http"
	"github.com/jhoicas/museum-portal/pkg/config"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// La conexión es perezosa: el servidor escucha ya y /api responde 503
	// hasta que WaitReady verifique la base y prepare esquema e índices.
	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("crear cliente de MongoDB")
	}
	go client.WaitReady(ctx, log.WithComponent("mongodb"), 5*time.Second)

	store, err := storage.NewStore(cfg.Upload.Dir, cfg.Upload.PublicPath)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar directorio de uploads")
	}

	db := client.Database()
	userRepo := mongodb.NewUserRepository(db)
	collectionRepo := mongodb.NewCollectionRepository(db)
	exhibitionRepo := mongodb.NewExhibitionRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	collectionUC := usecase.NewCollectionUseCase(collectionRepo)
	exhibitionUC := usecase.NewExhibitionUseCase(exhibitionRepo)
	eventUC := usecase.NewEventUseCase(eventRepo)
	newsUC := usecase.NewNewsUseCase(newsRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	statsUC := usecase.NewStatsUseCase(collectionRepo, exhibitionRepo, eventRepo, newsRepo, contactRepo)
	report := infrapdf.NewStatsReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    storage.MaxUploadBytes + 1<<20, // margen para los campos del form
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Museum Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "database": client.Ready()})
	})

	// Imágenes subidas desde el panel
	app.Static(store.PublicPath(), store.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CollectionUC: collectionUC,
		ExhibitionUC: exhibitionUC,
		EventUC:      eventUC,
		NewsUC:       newsUC,
		ContactUC:    contactUC,
		StatsUC:      statsUC,
		Store:        store,
		Report:       report,
		JWTSecret:    cfg.JWT.Secret,
		SiteURL:      cfg.App.SiteURL,
		StoreReady:   client.Ready,
		Log:          log,
		Dev:          cfg.App.Env == "development",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := client.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre de MongoDB")
	}

	log.Info().Msg("aplicación detenida")
}
