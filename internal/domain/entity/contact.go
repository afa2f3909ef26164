package entity

import "time"

// Contact datos de contacto de un cliente. Nunca se comparte entre clientes.
type Contact struct {
	ID        int64
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
