package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre MongoDB.
type ContactRepo struct {
	col *mongo.Collection
}

// NewContactRepository construye el adaptador de persistencia para mensajes de contacto.
func NewContactRepository(db *mongo.Database) *ContactRepo {
	return &ContactRepo{col: db.Collection(colContacts)}
}

// Create persiste un mensaje del formulario público.
func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		if terr := translateWriteError(err); terr != err {
			return terr
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

// CountByStatus cuenta mensajes por estado ("new" = sin atender).
func (r *ContactRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": status})
}
