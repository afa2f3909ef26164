package entity

import "time"

// Customer representa un cliente con su contacto asociado (relación 1:1, el cliente es dueño del contacto).
type Customer struct {
	ID        int64
	Name      string
	Status    CustomerStatus
	ContactID int64
	Contact   *Contact
	CreatedAt time.Time
	UpdatedAt time.Time
}
