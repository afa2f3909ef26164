package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/client-management/internal/application/dto"
	"github.com/jhoicas/client-management/internal/domain"
)

// Códigos de error de la API.
const (
	CodeInvalidQuery = "INVALID_QUERY"
	CodeInvalidID    = "INVALID_ID"
	CodeInvalidBody  = "INVALID_BODY"
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeDuplicate    = "DUPLICATE"
	CodeInternal     = "INTERNAL"
)

func writeError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// writeDomainError traduce errores del caso de uso a la respuesta HTTP. Los errores no reconocidos se registran
// y se responden como 500 sin exponer el detalle.
func writeDomainError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    CodeValidation,
			Message: "datos inválidos",
			Fields:  verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, CodeNotFound, "cliente no encontrado")
	case errors.Is(err, domain.ErrDuplicate):
		return writeError(c, fiber.StatusConflict, CodeDuplicate, "el contacto ya pertenece a otro cliente")
	}
	log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error no controlado")
	return writeError(c, fiber.StatusInternalServerError, CodeInternal, "error interno")
}

// ErrorHandler respuesta de fiber para errores que ningún handler atendió (rutas inexistentes, panics recuperados).
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = CodeNotFound
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
				code = CodeInvalidBody
			}
			return writeError(c, fe.Code, code, fe.Message)
		}
		return writeDomainError(c, log, err)
	}
}
