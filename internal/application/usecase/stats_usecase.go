package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

// StatsUseCase contadores del dashboard de administración.
type StatsUseCase struct {
	collections repository.CollectionRepository
	exhibitions repository.ExhibitionRepository
	events      repository.EventRepository
	news        repository.NewsRepository
	contacts    repository.ContactRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(
	collections repository.CollectionRepository,
	exhibitions repository.ExhibitionRepository,
	events repository.EventRepository,
	news repository.NewsRepository,
	contacts repository.ContactRepository,
) *StatsUseCase {
	return &StatsUseCase{
		collections: collections,
		exhibitions: exhibitions,
		events:      events,
		news:        news,
		contacts:    contacts,
	}
}

// Counts reúne los cinco contadores en paralelo; un fallo cancela el resto.
func (uc *StatsUseCase) Counts(ctx context.Context) (*dto.StatsDTO, error) {
	var out dto.StatsDTO
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Collections, err = uc.collections.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		out.Exhibitions, err = uc.exhibitions.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		out.Events, err = uc.events.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		out.News, err = uc.news.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		out.Contacts, err = uc.contacts.CountByStatus(ctx, "new")
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
