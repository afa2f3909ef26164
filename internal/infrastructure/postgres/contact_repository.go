package postgres

import (
	"context"

	"github.com/jhoicas/client-management/internal/domain"
	"github.com/jhoicas/client-management/internal/domain/entity"
	"github.com/jhoicas/client-management/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository (usable con pool o tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create inserta el contacto y asigna el ID generado por la BD.
func (r *ContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (phone, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, contact.Phone, contact.CreatedAt, contact.UpdatedAt).Scan(&contact.ID)
	if err != nil {
		return mapWriteError("insert contact", err)
	}
	return nil
}

// Update actualiza teléfono y updated_at.
func (r *ContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	query := `UPDATE contacts SET phone = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, contact.ID, contact.Phone, contact.UpdatedAt)
	if err != nil {
		return mapWriteError("update contact", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
