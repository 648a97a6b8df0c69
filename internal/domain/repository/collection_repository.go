package repository

import (
	"context"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
)

// CollectionFilter filtros del listado público de colecciones.
type CollectionFilter struct {
	Category string // vacío o "All" = sin filtro
	Search   string // regex case-insensitive sobre title y description
}

// CollectionRepository puerto de persistencia para Collection.
type CollectionRepository interface {
	Create(ctx context.Context, c *entity.Collection) error
	FindByID(ctx context.Context, id string) (*entity.Collection, error)
	// Replace sobrescribe el documento completo (equivale a un save del registro leído).
	Replace(ctx context.Context, c *entity.Collection) error
	// UpdateFields aplica un update parcial y devuelve el documento resultante.
	// Devuelve (nil, ErrNotFound) si el id no existe.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.Collection, error)
	// Delete elimina el documento. ErrNotFound si el id no existe — también
	// en un segundo borrado del mismo id (el contrato no es idempotente).
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f CollectionFilter) ([]*entity.Collection, error)
	Count(ctx context.Context) (int64, error)
}
