package cache

import (
	"github.com/viccon/sturdyc"

	"github.com/jhoicas/client-management/internal/application/customer"
	"github.com/jhoicas/client-management/internal/domain/entity"
	"github.com/jhoicas/client-management/pkg/metrics"
)

var _ customer.ListCache = (*CustomerListCache)(nil)

// CustomerListCache caché en memoria de páginas de clientes sobre sturdyc.
// El TTL es fijo desde la construcción; no hay invalidación explícita.
type CustomerListCache struct {
	client *sturdyc.Client[[]*entity.Customer]
}

// NewCustomerListCache valida la configuración y crea el cliente sturdyc.
func NewCustomerListCache(cfg Config) (*CustomerListCache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client := sturdyc.New[[]*entity.Customer](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.options()...,
	)
	return &CustomerListCache{client: client}, nil
}

// Get devuelve la página memorizada si existe y no expiró.
func (c *CustomerListCache) Get(key string) ([]*entity.Customer, bool) {
	list, ok := c.client.Get(key)
	if ok {
		metrics.ListCacheRequestsTotal.WithLabelValues(metrics.CacheHit).Inc()
	} else {
		metrics.ListCacheRequestsTotal.WithLabelValues(metrics.CacheMiss).Inc()
	}
	return list, ok
}

// Set guarda la página bajo key con el TTL configurado, sobrescribiendo lo que hubiera.
func (c *CustomerListCache) Set(key string, customers []*entity.Customer) {
	c.client.Set(key, customers)
	metrics.ListCacheEntries.Set(float64(c.client.Size()))
}

// Size número de entradas almacenadas (incluye expiradas aún no desalojadas).
func (c *CustomerListCache) Size() int {
	return c.client.Size()
}
