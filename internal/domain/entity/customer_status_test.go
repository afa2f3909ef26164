package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/client-management/internal/domain/entity"
)

func TestCustomerStatus_IsValid(t *testing.T) {
	for _, s := range entity.CustomerStatuses() {
		assert.True(t, s.IsValid(), "%q debe ser un estado válido", s)
	}
	assert.False(t, entity.CustomerStatus("").IsValid(), "el estado vacío no es válido")
	assert.False(t, entity.CustomerStatus("Active").IsValid(), "la comparación distingue mayúsculas")
	assert.False(t, entity.CustomerStatus("deleted").IsValid())
}
