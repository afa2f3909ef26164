package entity

// CustomerStatus estado del ciclo de vida de un cliente. Solo se almacena y compara.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusTrial    CustomerStatus = "trial"
)

// IsValid indica si el estado pertenece a la enumeración cerrada.
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusTrial:
		return true
	}
	return false
}

// CustomerStatuses lista los estados válidos en orden estable.
func CustomerStatuses() []CustomerStatus {
	return []CustomerStatus{CustomerStatusActive, CustomerStatusInactive, CustomerStatusTrial}
}
