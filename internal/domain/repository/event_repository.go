package repository

import (
	"context"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
)

// EventRepository puerto de persistencia para Event.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	Delete(ctx context.Context, id string) error // ErrNotFound si no existe
	// List devuelve los eventos ordenados por fecha ascendente.
	List(ctx context.Context) ([]*entity.Event, error)
	Count(ctx context.Context) (int64, error)
}
