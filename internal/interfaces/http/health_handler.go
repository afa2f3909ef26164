package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// PingFunc comprueba una dependencia (la BD). nil = disponible.
type PingFunc func(ctx context.Context) error

// HealthHandler responde /health con el estado del servicio y de la BD.
type HealthHandler struct {
	service string
	ping    PingFunc
	timeout time.Duration
	log     zerolog.Logger
}

// NewHealthHandler construye el handler. ping nil se considera siempre disponible.
func NewHealthHandler(service string, ping PingFunc, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{service: service, ping: ping, timeout: 2 * time.Second, log: log}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.log.Warn().Err(err).Msg("health: BD no disponible")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unavailable",
				"service":  h.service,
				"database": "down",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service, "database": "up"})
}
