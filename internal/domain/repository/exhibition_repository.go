package repository

import (
	"context"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
)

// ExhibitionRepository puerto de persistencia para Exhibition.
type ExhibitionRepository interface {
	Create(ctx context.Context, e *entity.Exhibition) error
	Delete(ctx context.Context, id string) error // ErrNotFound si no existe
	List(ctx context.Context) ([]*entity.Exhibition, error)
	Count(ctx context.Context) (int64, error)
}
