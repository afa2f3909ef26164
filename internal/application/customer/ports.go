package customer

import (
	"context"

	"github.com/jhoicas/client-management/internal/domain/entity"
	"github.com/jhoicas/client-management/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con repositorios atados a esa tx.
// Si fn retorna error se hace rollback de todo (contacto y cliente juntos).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		contacts repository.ContactRepository,
	) error) error
}

// ListCache memoriza páginas de clientes por clave. La expiración la decide la implementación;
// no hay invalidación: crear, actualizar o eliminar no purga entradas.
type ListCache interface {
	Get(key string) ([]*entity.Customer, bool)
	Set(key string, customers []*entity.Customer)
}
