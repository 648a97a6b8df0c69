package repository

import (
	"context"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
)

// ContactRepository puerto de persistencia para Contact.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	// CountByStatus cuenta mensajes por estado ("new" = sin atender).
	CountByStatus(ctx context.Context, status string) (int64, error)
}
