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

var _ repository.ExhibitionRepository = (*ExhibitionRepo)(nil)

// ExhibitionRepo implementación del puerto ExhibitionRepository sobre MongoDB.
type ExhibitionRepo struct {
	col *mongo.Collection
}

// NewExhibitionRepository construye el adaptador de persistencia para exposiciones.
func NewExhibitionRepository(db *mongo.Database) *ExhibitionRepo {
	return &ExhibitionRepo{col: db.Collection(colExhibitions)}
}

// Create persiste una nueva exposición.
func (r *ExhibitionRepo) Create(ctx context.Context, e *entity.Exhibition) error {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		if terr := translateWriteError(err); terr != err {
			return terr
		}
		return fmt.Errorf("insert exhibition: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

// Delete elimina la exposición. ErrNotFound si el id no existe (no idempotente).
func (r *ExhibitionRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete exhibition: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las exposiciones, de más reciente a más antigua.
func (r *ExhibitionRepo) List(ctx context.Context) ([]*entity.Exhibition, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list exhibitions: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Exhibition
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode exhibitions: %w", err)
	}
	return list, nil
}

// Count cuenta todas las exposiciones.
func (r *ExhibitionRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
