package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/client-management/internal/domain"
	"github.com/jhoicas/client-management/internal/domain/entity"
	"github.com/jhoicas/client-management/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const selectCustomer = `
		SELECT cu.id, cu.name, cu.status, cu.contact_id, cu.created_at, cu.updated_at,
		       co.id, co.phone, co.created_at, co.updated_at
		FROM customers cu
		JOIN contacts co ON co.id = cu.contact_id`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List filtra por subcadena (sensible a mayúsculas), ordena y pagina en la BD.
func (r *CustomerRepo) List(ctx context.Context, q repository.CustomerQuery) ([]*entity.Customer, error) {
	query, args := buildListQuery(q)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	// pageSize no tiene tope; la reserva inicial sí.
	list := make([]*entity.Customer, 0, min(q.PageSize, 128))
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return list, nil
}

// buildListQuery arma el SELECT con los filtros presentes. Las columnas de ORDER BY salen de una lista cerrada.
func buildListQuery(q repository.CustomerQuery) (string, []any) {
	var (
		sb    strings.Builder
		where []string
		args  []any
	)
	sb.WriteString(selectCustomer)

	// strpos en lugar de LIKE: % y _ se buscan literalmente.
	if q.Name != "" {
		args = append(args, q.Name)
		where = append(where, fmt.Sprintf("strpos(cu.name, $%d) > 0", len(args)))
	}
	if q.Phone != "" {
		args = append(args, q.Phone)
		where = append(where, fmt.Sprintf("strpos(co.phone, $%d) > 0", len(args)))
	}
	if len(where) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}

	dir := "DESC"
	if q.Ascending {
		dir = "ASC"
	}
	col := orderColumn(q.SortBy)
	sb.WriteString(fmt.Sprintf("\n\t\tORDER BY %s %s", col, dir))
	if col != "cu.id" {
		// Desempate estable para que las páginas no se solapen.
		sb.WriteString(fmt.Sprintf(", cu.id %s", dir))
	}

	args = append(args, q.PageSize, q.Offset())
	sb.WriteString(fmt.Sprintf("\n\t\tLIMIT $%d OFFSET $%d", len(args)-1, len(args)))
	return sb.String(), args
}

func orderColumn(sortBy string) string {
	switch strings.ToLower(sortBy) {
	case repository.SortByName:
		return "cu.name"
	case repository.SortByPhone:
		return "co.phone"
	default:
		return "cu.id"
	}
}

// GetByID obtiene un cliente con su contacto. nil, nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.getOne(ctx, selectCustomer+"\n\t\tWHERE cu.id = $1", id)
}

// GetByIDForUpdate como GetByID pero con FOR UPDATE sobre cliente y contacto.
func (r *CustomerRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.getOne(ctx, selectCustomer+"\n\t\tWHERE cu.id = $1\n\t\tFOR UPDATE", id)
}

func (r *CustomerRepo) getOne(ctx context.Context, query string, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Create inserta el cliente (el contacto ya debe existir) y asigna el ID generado.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, status, contact_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.Name, string(customer.Status), customer.ContactID, customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		return mapWriteError("insert customer", err)
	}
	return nil
}

// Update actualiza nombre, estado y updated_at. Los IDs nunca cambian.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `UPDATE customers SET name = $2, status = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, customer.ID, customer.Name, string(customer.Status), customer.UpdatedAt)
	if err != nil {
		return mapWriteError("update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el contacto del cliente; la FK ON DELETE CASCADE elimina el cliente en la misma sentencia.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM contacts co
		USING customers cu
		WHERE cu.contact_id = co.id AND cu.id = $1`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var (
		c      entity.Customer
		co     entity.Contact
		status string
	)
	if err := row.Scan(
		&c.ID, &c.Name, &status, &c.ContactID, &c.CreatedAt, &c.UpdatedAt,
		&co.ID, &co.Phone, &co.CreatedAt, &co.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Status = entity.CustomerStatus(status)
	c.Contact = &co
	return &c, nil
}
