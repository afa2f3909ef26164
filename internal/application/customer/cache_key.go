package customer

import (
	"fmt"
	"strings"

	"github.com/jhoicas/client-management/internal/domain/repository"
)

// keyEscaper escapa el separador dentro de los textos libres; "a_b"+"" y "a"+"b_" no pueden coincidir.
var keyEscaper = strings.NewReplacer(`\`, `\\`, `_`, `\_`)

// CacheKey concatena los seis parámetros del listado. No normaliza: "Name" y "name" son entradas distintas.
func CacheKey(q repository.CustomerQuery) string {
	return fmt.Sprintf("Customers_%s_%s_%s_%t_%d_%d",
		keyEscaper.Replace(q.Name), keyEscaper.Replace(q.Phone), keyEscaper.Replace(q.SortBy),
		q.Ascending, q.PageNumber, q.PageSize)
}
