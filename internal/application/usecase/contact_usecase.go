package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/domain"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	"github.com/jhoicas/museum-portal/internal/domain/repository"
)

// ContactUseCase recepción de mensajes del formulario público.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Submit valida y persiste el mensaje con estado "new".
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.ContactRequest) (*entity.Contact, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", in.Name}, {"email", in.Email}, {"message", in.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}
	c := &entity.Contact{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Status:    "new",
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
