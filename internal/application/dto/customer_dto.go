package dto

import (
	"time"

	"github.com/jhoicas/client-management/internal/domain/entity"
	"github.com/jhoicas/client-management/internal/domain/repository"
)

// Valores por defecto del listado de clientes.
const (
	DefaultSortBy     = repository.SortByID
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// ListCustomersRequest parámetros de GET /api/customers.
type ListCustomersRequest struct {
	Name       string
	Phone      string
	SortBy     string
	Ascending  bool
	PageNumber int
	PageSize   int
}

// NewListCustomersRequest devuelve la petición con los valores por defecto (sortBy=id, ascendente, página 1 de 10).
func NewListCustomersRequest() ListCustomersRequest {
	return ListCustomersRequest{
		SortBy:     DefaultSortBy,
		Ascending:  true,
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}
}

// DefaultPage sustituye los valores no positivos por los de defecto. No hay tope superior para el tamaño.
func (r *ListCustomersRequest) DefaultPage() {
	if r.PageNumber < 1 {
		r.PageNumber = DefaultPageNumber
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
}

// ContactRequest contacto obligatorio al crear un cliente.
type ContactRequest struct {
	Phone string `json:"phone" validate:"required,min=1,max=255"`
}

// CreateCustomerRequest entrada para crear un cliente junto con su contacto.
type CreateCustomerRequest struct {
	Name    string                `json:"name" validate:"required,min=1,max=255"`
	Status  entity.CustomerStatus `json:"status" validate:"required,customer_status"`
	Contact *ContactRequest       `json:"contact" validate:"required"`
}

// UpdateContactRequest cambios parciales del contacto.
type UpdateContactRequest struct {
	Phone *string `json:"phone" validate:"omitempty,min=1,max=255"`
}

// UpdateCustomerRequest cambios parciales: solo se aplican los campos presentes.
type UpdateCustomerRequest struct {
	Name    *string                `json:"name" validate:"omitempty,min=1,max=255"`
	Status  *entity.CustomerStatus `json:"status" validate:"omitempty,customer_status"`
	Contact *UpdateContactRequest  `json:"contact" validate:"omitempty"`
}

// PhoneChanged indica si la petición trae un teléfono nuevo.
func (r UpdateCustomerRequest) PhoneChanged() bool {
	return r.Contact != nil && r.Contact.Phone != nil
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerResponse salida de un cliente con su contacto.
type CustomerResponse struct {
	ID        int64                 `json:"id"`
	Name      string                `json:"name"`
	Status    entity.CustomerStatus `json:"status"`
	ContactID int64                 `json:"contact_id"`
	Contact   ContactResponse       `json:"contact"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// ToCustomerResponse mapea la entidad a su salida HTTP.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	out := &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Status:    c.Status,
		ContactID: c.ContactID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Contact != nil {
		out.Contact = ContactResponse{
			ID:        c.Contact.ID,
			Phone:     c.Contact.Phone,
			CreatedAt: c.Contact.CreatedAt,
			UpdatedAt: c.Contact.UpdatedAt,
		}
	}
	return out
}
