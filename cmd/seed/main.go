// Command seed crea el usuario administrador inicial y unas piezas de muestra
// si la base está vacía. Idempotente: se puede correr en cada despliegue.
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/infrastructure/mongodb"
	"github.com/jhoicas/museum-portal/pkg/config"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

const (
	adminEmail    = "admin@museum.gov.in"
	adminPassword = "Admin@123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("crear cliente de MongoDB")
	}
	client.WaitReady(ctx, log, 2*time.Second)
	if !client.Ready() {
		log.Fatal().Msg("MongoDB no disponible")
	}
	defer client.Close(context.Background())

	db := client.Database()
	userRepo := mongodb.NewUserRepository(db)
	collectionRepo := mongodb.NewCollectionRepository(db)

	// Admin inicial
	existing, err := userRepo.FindByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		admin := &entity.User{
			Name:         "Administrator",
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Status:       entity.StatusActive,
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("email", adminEmail).Msg("usuario admin creado")
	} else {
		log.Info().Str("email", adminEmail).Msg("usuario admin ya existe")
	}

	// Piezas de muestra solo si el catálogo está vacío
	count, err := collectionRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("contar piezas")
	}
	if count > 0 {
		log.Info().Int64("count", count).Msg("catálogo con datos, no se siembran piezas")
		return
	}
	for _, c := range sampleCollections() {
		if err := collectionRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("title", c.Title).Msg("crear pieza de muestra")
		}
		log.Info().Str("title", c.Title).Msg("pieza de muestra creada")
	}
}

func sampleCollections() []*entity.Collection {
	now := time.Now()
	return []*entity.Collection{
		{
			Title:       "Kangla Sha",
			Description: "Stone dragon-lion guardian figure from the Kangla Fort complex.",
			Category:    "Archaeology",
			Period:      "19th century",
			Origin:      "Imphal",
			Material:    "Stone",
			Status:      "active",
			CreatedAt:   now,
		},
		{
			Title:       "Phanek Mapan Naiba",
			Description: "Traditional handwoven sarong with layered border motifs.",
			Category:    "Textiles",
			Period:      "Early 20th century",
			Origin:      "Manipur valley",
			Material:    "Cotton and silk",
			Status:      "active",
			CreatedAt:   now,
		},
		{
			Title:       "Pena",
			Description: "Single-stringed bowed instrument used in ritual and folk music.",
			Category:    "Musical Instruments",
			Period:      "Contemporary",
			Origin:      "Manipur",
			Material:    "Bamboo, coconut shell, horsehair",
			Status:      "active",
			CreatedAt:   now,
		},
	}
}
