package usecase

import (
	"context"

	"github.com/jhoicas/museum-portal/internal/application/content"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

// NewsUseCase operaciones sobre noticias.
type NewsUseCase struct {
	repo repository.NewsRepository
}

// NewNewsUseCase construye el caso de uso.
func NewNewsUseCase(repo repository.NewsRepository) *NewsUseCase {
	return &NewsUseCase{repo: repo}
}

// ListPublished devuelve las noticias publicadas, más recientes primero.
func (uc *NewsUseCase) ListPublished(ctx context.Context) ([]*entity.News, error) {
	return uc.repo.ListPublished(ctx)
}

// Create valida el draft, sanitiza el contenido y persiste la noticia.
func (uc *NewsUseCase) Create(ctx context.Context, d content.Draft) (*entity.News, error) {
	n, err := content.BuildNews(d)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
