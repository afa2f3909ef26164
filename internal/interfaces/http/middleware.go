package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/client-management/pkg/metrics"
)

// HeaderRequestID cabecera con el identificador de la petición (se respeta el que envía el cliente).
const HeaderRequestID = "X-Request-ID"

// LocalRequestID clave en c.Locals del identificador de la petición.
const LocalRequestID = "request_id"

// RequestIDMiddleware asigna un identificador a cada petición y lo devuelve en X-Request-ID.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el identificador de la petición (después de RequestIDMiddleware).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// AccessLog registra una línea por petición y alimenta las métricas HTTP. Los errores de la cadena se resuelven
// aquí con el ErrorHandler de la app para registrar el status real.
func AccessLog(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := routeLabel(c, status)

		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(elapsed.Seconds())

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("request")
		return nil
	}
}

// routeLabel plantilla de la ruta (/api/customers/:id) para no disparar la cardinalidad de las métricas.
// Sin ruta coincidente fiber deja la del último middleware ("/").
func routeLabel(c *fiber.Ctx, status int) string {
	path := c.Route().Path
	if status == fiber.StatusNotFound && c.Path() != "/" && (path == "/" || path == c.Path()) {
		return "unmatched"
	}
	return path
}
