package repository

import (
	"context"
	"math"

	"github.com/jhoicas/client-management/internal/domain/entity"
)

// Claves de ordenamiento reconocidas por List. Cualquier otro valor ordena por ID.
const (
	SortByID    = "id"
	SortByName  = "name"
	SortByPhone = "phone"
)

// CustomerQuery filtros, orden y paginación para listar clientes.
// Name y Phone son subcadenas opcionales (vacío = sin filtro). PageNumber empieza en 1.
type CustomerQuery struct {
	Name       string
	Phone      string
	SortBy     string
	Ascending  bool
	PageNumber int
	PageSize   int
}

// Offset devuelve cuántos registros se saltan antes de la página pedida. Satura en math.MaxInt
// cuando el producto desborda: una página tan lejana siempre está vacía.
func (q CustomerQuery) Offset() int {
	if q.PageNumber < 1 || q.PageSize < 1 {
		return 0
	}
	if q.PageNumber-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.PageNumber - 1) * q.PageSize
}

// CustomerRepository define el puerto de persistencia para Customer (siempre con su Contact).
type CustomerRepository interface {
	List(ctx context.Context, q CustomerQuery) ([]*entity.Customer, error)
	// GetByID devuelve nil, nil si el cliente no existe.
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// GetByIDForUpdate igual que GetByID pero bloquea las filas; solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete elimina el cliente y su contacto. Devuelve false si no existía.
	Delete(ctx context.Context, id int64) (bool, error)
}
