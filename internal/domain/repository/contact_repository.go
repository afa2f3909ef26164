package repository

import (
	"context"

	"github.com/jhoicas/client-management/internal/domain/entity"
)

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, contact *entity.Contact) error
}
