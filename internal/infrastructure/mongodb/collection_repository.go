package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/museum-portal/internal/domain"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

var _ repository.CollectionRepository = (*CollectionRepo)(nil)

// CollectionRepo implementación del puerto CollectionRepository sobre MongoDB.
type CollectionRepo struct {
	col *mongo.Collection
}

// NewCollectionRepository construye el adaptador de persistencia para colecciones.
func NewCollectionRepository(db *mongo.Database) *CollectionRepo {
	return &CollectionRepo{col: db.Collection(colCollections)}
}

// Create persiste una nueva pieza del catálogo.
func (r *CollectionRepo) Create(ctx context.Context, c *entity.Collection) error {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		if terr := translateWriteError(err); terr != err {
			return terr
		}
		return fmt.Errorf("insert collection: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

// FindByID obtiene una pieza por ID. (nil, nil) si no existe.
func (r *CollectionRepo) FindByID(ctx context.Context, id string) (*entity.Collection, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, nil
	}
	var c entity.Collection
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collection by id: %w", err)
	}
	return &c, nil
}

// Replace sobrescribe el documento completo con el estado de c.
func (r *CollectionRepo) Replace(ctx context.Context, c *entity.Collection) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		if terr := translateWriteError(err); terr != err {
			return terr
		}
		return fmt.Errorf("replace collection: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateFields aplica un $set parcial y devuelve el documento actualizado
// (equivale a findByIdAndUpdate con new:true y validadores activos).
func (r *CollectionRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.Collection, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var c entity.Collection
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		if terr := translateWriteError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("update collection: %w", err)
	}
	return &c, nil
}

// Delete elimina la pieza. Un id inexistente devuelve ErrNotFound, también en
// un segundo borrado del mismo id: el contrato no es idempotente y se preserva.
func (r *CollectionRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// listQuery arma el filtro de List. El término de búsqueda se pasa tal cual
// como patrón de $regex: "a.c" encuentra "abc".
func listQuery(f repository.CollectionFilter) bson.M {
	query := bson.M{"status": "active"}
	if f.Category != "" && f.Category != "All" {
		query["category"] = f.Category
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: f.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	return query
}

// List devuelve las piezas activas, opcionalmente filtradas por categoría y
// búsqueda (regex case-insensitive sobre title y description), de más
// reciente a más antigua.
func (r *CollectionRepo) List(ctx context.Context, f repository.CollectionFilter) ([]*entity.Collection, error) {
	query := listQuery(f)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Collection
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode collections: %w", err)
	}
	return list, nil
}

// Count cuenta todas las piezas (para el dashboard).
func (r *CollectionRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
