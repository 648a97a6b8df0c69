package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

var _ repository.NewsRepository = (*NewsRepo)(nil)

// NewsRepo implementación del puerto NewsRepository sobre MongoDB.
type NewsRepo struct {
	col *mongo.Collection
}

// NewNewsRepository construye el adaptador de persistencia para noticias.
func NewNewsRepository(db *mongo.Database) *NewsRepo {
	return &NewsRepo{col: db.Collection(colNews)}
}

// Create persiste una nueva noticia.
func (r *NewsRepo) Create(ctx context.Context, n *entity.News) error {
	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		if terr := translateWriteError(err); terr != err {
			return terr
		}
		return fmt.Errorf("insert news: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = oid
	}
	return nil
}

// ListPublished devuelve las noticias publicadas, de más reciente a más antigua.
func (r *NewsRepo) ListPublished(ctx context.Context) ([]*entity.News, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishDate", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"status": "published"}, opts)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.News
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}
	return list, nil
}

// Count cuenta todas las noticias.
func (r *NewsRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
