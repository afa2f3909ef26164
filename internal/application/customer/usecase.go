package customer

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/client-management/internal/application/dto"
	"github.com/jhoicas/client-management/internal/domain"
	"github.com/jhoicas/client-management/internal/domain/entity"
	"github.com/jhoicas/client-management/internal/domain/repository"
)

// UseCase casos de uso de clientes. El listado pasa por la caché; las mutaciones van directo a la BD.
type UseCase struct {
	repo  repository.CustomerRepository
	tx    TxRunner
	cache ListCache
	now   func() time.Time
	log   zerolog.Logger
}

// Option configura el caso de uso.
type Option func(*UseCase)

// WithClock reemplaza el reloj usado para created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// WithLogger asigna el logger del caso de uso.
func WithLogger(l zerolog.Logger) Option {
	return func(uc *UseCase) { uc.log = l }
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CustomerRepository, tx TxRunner, cache ListCache, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:  repo,
		tx:    tx,
		cache: cache,
		now:   func() time.Time { return time.Now().UTC() },
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// List lista clientes filtrados, ordenados y paginados. Resultados memorizados por CacheKey.
func (uc *UseCase) List(ctx context.Context, in dto.ListCustomersRequest) ([]dto.CustomerResponse, error) {
	in.DefaultPage()
	q := repository.CustomerQuery{
		Name:       in.Name,
		Phone:      in.Phone,
		SortBy:     in.SortBy,
		Ascending:  in.Ascending,
		PageNumber: in.PageNumber,
		PageSize:   in.PageSize,
	}
	key := CacheKey(q)
	if cached, ok := uc.cache.Get(key); ok {
		uc.log.Debug().Str("key", key).Msg("listado de clientes desde caché")
		return toResponses(cached), nil
	}

	list, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(key, list)
	uc.log.Debug().Str("key", key).Int("count", len(list)).Msg("listado de clientes guardado en caché")
	return toResponses(list), nil
}

// GetByID obtiene un cliente con su contacto. domain.ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCustomerResponse(c), nil
}

// Create crea contacto y cliente en una sola transacción.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := uc.now()
	customer := &entity.Customer{
		Name:   in.Name,
		Status: in.Status,
		Contact: &entity.Contact{
			Phone:     in.Contact.Phone,
			CreatedAt: now,
			UpdatedAt: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, contacts repository.ContactRepository) error {
		if err := contacts.Create(ctx, customer.Contact); err != nil {
			return err
		}
		customer.ContactID = customer.Contact.ID
		return customers.Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("customer_id", customer.ID).Msg("cliente creado")
	return dto.ToCustomerResponse(customer), nil
}

// Update aplica solo los campos presentes. Siempre refresca updated_at del cliente;
// el del contacto solo cuando cambia el teléfono. domain.ErrNotFound si no existe.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if in.Name != nil && *in.Name == "" {
		return dto.FieldError("name", "es requerido")
	}
	if in.PhoneChanged() && *in.Contact.Phone == "" {
		return dto.FieldError("contact.phone", "es requerido")
	}

	return uc.tx.Run(ctx, func(customers repository.CustomerRepository, contacts repository.ContactRepository) error {
		c, err := customers.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		now := uc.now()
		if now.Before(c.CreatedAt) {
			now = c.CreatedAt
		}
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Status != nil {
			c.Status = *in.Status
		}
		if in.PhoneChanged() {
			c.Contact.Phone = *in.Contact.Phone
			c.Contact.UpdatedAt = now
			if c.Contact.UpdatedAt.Before(c.Contact.CreatedAt) {
				c.Contact.UpdatedAt = c.Contact.CreatedAt
			}
			if err := contacts.Update(ctx, c.Contact); err != nil {
				return err
			}
		}
		c.UpdatedAt = now
		return customers.Update(ctx, c)
	})
}

// Delete elimina el cliente y, en cascada, su contacto. domain.ErrNotFound si no existe.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	uc.log.Info().Int64("customer_id", id).Msg("cliente eliminado")
	return nil
}

func toResponses(list []*entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *dto.ToCustomerResponse(c))
	}
	return out
}
