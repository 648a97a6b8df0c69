package usecase

import (
	"context"

	"github.com/jhoicas/museum-portal/internal/application/content"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

// ExhibitionUseCase operaciones sobre exposiciones.
type ExhibitionUseCase struct {
	repo repository.ExhibitionRepository
}

// NewExhibitionUseCase construye el caso de uso.
func NewExhibitionUseCase(repo repository.ExhibitionRepository) *ExhibitionUseCase {
	return &ExhibitionUseCase{repo: repo}
}

// List devuelve todas las exposiciones, de más reciente a más antigua.
func (uc *ExhibitionUseCase) List(ctx context.Context) ([]*entity.Exhibition, error) {
	return uc.repo.List(ctx)
}

// Create valida el draft y persiste la exposición.
func (uc *ExhibitionUseCase) Create(ctx context.Context, d content.Draft) (*entity.Exhibition, error) {
	e, err := content.BuildExhibition(d)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete elimina la exposición. ErrNotFound si no existe.
func (uc *ExhibitionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
