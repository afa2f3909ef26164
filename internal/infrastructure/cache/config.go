package cache

import (
	"time"

	"github.com/viccon/sturdyc"
)

// Config parámetros de la caché de listados.
type Config struct {
	// TTL vida de cada página memorizada. Las entradas no se invalidan antes.
	TTL time.Duration
	// Capacity máximo de entradas, repartido entre los shards (Capacity/NumShards por shard). Al llenarse un
	// shard sturdyc desaloja EvictionPercentage de sus entradas aunque no hayan vencido, así que una página
	// puede volver a consultarse antes del TTL. El valor por defecto queda muy por encima de cualquier carga
	// de listados; si se reduce, conviene que Capacity/NumShards siga siendo holgado.
	Capacity int
	// NumShards particiones internas de sturdyc.
	NumShards int
	// EvictionPercentage porcentaje de un shard lleno que se desaloja (1-100).
	EvictionPercentage int
	// Clock reloj de sturdyc; nil usa el reloj real. Los tests pasan sturdyc.NewTestClock.
	Clock sturdyc.Clock
}

// DefaultConfig TTL de 5 minutos y capacidad holgada.
func DefaultConfig() Config {
	return Config{
		TTL:                5 * time.Minute,
		Capacity:           100_000,
		NumShards:          64,
		EvictionPercentage: 10,
	}
}

// Validate verifica los valores de la configuración.
func (c Config) Validate() error {
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "debe ser mayor que 0"}
	}
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "debe ser mayor que 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "debe ser mayor que 0"}
	}
	if c.NumShards > c.Capacity {
		return &ConfigError{Field: "NumShards", Message: "no puede superar Capacity"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "debe estar entre 1 y 100"}
	}
	return nil
}

func (c Config) options() []sturdyc.Option {
	var opts []sturdyc.Option
	if c.Clock != nil {
		opts = append(opts, sturdyc.WithClock(c.Clock))
	}
	return opts
}

// ConfigError error de validación de un campo de Config.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "configuración de caché inválida en " + e.Field + ": " + e.Message
}
