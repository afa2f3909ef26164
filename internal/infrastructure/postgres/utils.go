package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/client-management/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeStringTooLong       = "22001"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == codeUniqueViolation
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapWriteError traduce errores de escritura a errores de dominio; el resto se envuelve con op.
func mapWriteError(op string, err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	switch pgErrorCode(err) {
	case codeCheckViolation, codeNotNullViolation, codeStringTooLong, codeForeignKeyViolation:
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
