package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/museum-portal/internal/domain"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre MongoDB.
type EventRepo struct {
	col *mongo.Collection
}

// NewEventRepository construye el adaptador de persistencia para eventos.
func NewEventRepository(db *mongo.Database) *EventRepo {
	return &EventRepo{col: db.Collection(colEvents)}
}

// Create persiste un nuevo evento.
func (r *EventRepo) Create(ctx context.Context, e *entity.Event) error {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		if terr := translateWriteError(err); terr != err {
			return terr
		}
		return fmt.Errorf("insert event: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

// Delete elimina el evento. ErrNotFound si el id no existe (no idempotente).
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los eventos ordenados por fecha ascendente.
func (r *EventRepo) List(ctx context.Context) ([]*entity.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Event
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return list, nil
}

// Count cuenta todos los eventos.
func (r *EventRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
