package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de las colecciones del portal.
const (
	colUsers       = "users"
	colCollections = "collections"
	colExhibitions = "exhibitions"
	colEvents      = "events"
	colNews        = "news"
	colContacts    = "contacts"
)

// requiredSchemas campos requeridos que valida el propio store, por colección.
// El Field Validator de la aplicación valida antes; esto es la última línea
// (equivale a los required de los esquemas mongoose originales).
var requiredSchemas = map[string][]string{
	colUsers:       {"name", "email", "password"},
	colCollections: {"title", "description", "category", "period", "origin"},
	colExhibitions: {"title", "description", "type", "startDate"},
	colEvents:      {"title", "description", "date", "location"},
	colNews:        {"title", "excerpt", "content"},
	colContacts:    {"name", "email", "message"},
}

// EnsureSchema crea (si hace falta) los validadores JSON-schema por colección
// y el índice único de email en users. Idempotente.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("listar colecciones: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for name, required := range requiredSchemas {
		validator := bson.M{
			"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": required,
			},
		}
		if have[name] {
			// collMod actualiza el validador de una colección ya creada.
			cmd := bson.D{
				{Key: "collMod", Value: name},
				{Key: "validator", Value: validator},
			}
			if err := db.RunCommand(ctx, cmd).Err(); err != nil {
				return fmt.Errorf("actualizar validador de %s: %w", name, err)
			}
			continue
		}
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("crear colección %s: %w", name, err)
		}
	}

	// Unicidad de email garantizada por el store, no por la aplicación.
	_, err = db.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("índice único de email: %w", err)
	}
	return nil
}
