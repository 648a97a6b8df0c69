package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/museum-portal/internal/application/content"
	"github.com/jhoicas/museum-portal/internal/domain"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

// categoryCaser normaliza el filtro de categoría ("archaeology" → "Archaeology")
// para que coincida con los valores tal como se cargan desde el panel.
var categoryCaser = cases.Title(language.English)

// CollectionUseCase operaciones sobre el catálogo de piezas.
type CollectionUseCase struct {
	repo repository.CollectionRepository
}

// NewCollectionUseCase construye el caso de uso.
func NewCollectionUseCase(repo repository.CollectionRepository) *CollectionUseCase {
	return &CollectionUseCase{repo: repo}
}

// List devuelve las piezas activas con filtros opcionales.
func (uc *CollectionUseCase) List(ctx context.Context, category, search string) ([]*entity.Collection, error) {
	if category != "" && category != "All" {
		category = categoryCaser.String(strings.ToLower(category))
	}
	return uc.repo.List(ctx, repository.CollectionFilter{Category: category, Search: search})
}

// GetByID devuelve una pieza e incrementa su contador de vistas.
//
// El incremento es read-modify-write sin $inc atómico, igual que el
// save() del portal original: dos lecturas concurrentes pueden perder una
// actualización. Debilidad aceptada y documentada; el contador es
// aproximado bajo concurrencia.
func (uc *CollectionUseCase) GetByID(ctx context.Context, id string) (*entity.Collection, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.ViewCount++
	if err := uc.repo.Replace(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Create valida el draft y persiste la pieza.
func (uc *CollectionUseCase) Create(ctx context.Context, d content.Draft) (*entity.Collection, error) {
	c, err := content.BuildCollection(d)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update aplica un update parcial con los campos provistos en el draft y
// devuelve el documento resultante. ErrNotFound si el id no existe.
func (uc *CollectionUseCase) Update(ctx context.Context, id string, d content.Draft) (*entity.Collection, error) {
	fields := make(map[string]any, len(d.Fields)+1)
	for k, v := range d.Fields {
		fields[k] = v
	}
	if d.Image != "" {
		fields["image"] = d.Image
	}
	if len(fields) == 0 {
		return nil, &domain.ValidationError{Messages: []string{"nada que actualizar"}}
	}
	return uc.repo.UpdateFields(ctx, id, fields)
}

// Delete elimina la pieza. ErrNotFound si no existe (también en un segundo
// borrado del mismo id).
func (uc *CollectionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
