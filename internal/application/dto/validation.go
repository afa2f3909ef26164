package dto

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/client-management/internal/domain"
	"github.com/jhoicas/client-management/internal/domain/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON, que es lo que ve el cliente.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("customer_status", func(fl validator.FieldLevel) bool {
		return entity.CustomerStatus(fl.Field().String()).IsValid()
	})
	return v
}

// ValidationError errores por campo de un DTO. errors.Is(err, domain.ErrInvalidInput) es true.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// FieldError construye un ValidationError de un solo campo.
func FieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Validate aplica las etiquetas `validate` del DTO. Devuelve *ValidationError si algún campo falla.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateCustomerRequest.contact.phone" -> "contact.phone".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("no puede superar %s caracteres", fe.Param())
	case "customer_status":
		names := make([]string, 0, 3)
		for _, s := range entity.CustomerStatuses() {
			names = append(names, string(s))
		}
		return "debe ser uno de: " + strings.Join(names, ", ")
	default:
		return "no cumple la regla " + fe.Tag()
	}
}
