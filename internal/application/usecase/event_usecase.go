package usecase

import (
	"context"

	"github.com/jhoicas/museum-portal/internal/application/content"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

// EventUseCase operaciones sobre eventos.
type EventUseCase struct {
	repo repository.EventRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

// List devuelve los eventos ordenados por fecha ascendente.
func (uc *EventUseCase) List(ctx context.Context) ([]*entity.Event, error) {
	return uc.repo.List(ctx)
}

// Create valida el draft (fecha incluida) y persiste el evento.
func (uc *EventUseCase) Create(ctx context.Context, d content.Draft) (*entity.Event, error) {
	e, err := content.BuildEvent(d)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete elimina el evento. ErrNotFound si no existe (también en un segundo
// borrado del mismo id: el contrato no es idempotente).
func (uc *EventUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
