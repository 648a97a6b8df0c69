package repository

import (
	"context"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
)

// NewsRepository puerto de persistencia para News.
type NewsRepository interface {
	Create(ctx context.Context, n *entity.News) error
	// ListPublished devuelve solo las notas publicadas, de más reciente a más antigua.
	ListPublished(ctx context.Context) ([]*entity.News, error)
	Count(ctx context.Context) (int64, error)
}
