package cache_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viccon/sturdyc"

	"github.com/jhoicas/client-management/internal/domain/entity"
	"github.com/jhoicas/client-management/internal/infrastructure/cache"
	"github.com/jhoicas/client-management/pkg/metrics"
)

func newTestCache(t *testing.T) (*cache.CustomerListCache, *sturdyc.TestClock) {
	t.Helper()
	clock := sturdyc.NewTestClock(time.Now())
	cfg := cache.DefaultConfig()
	cfg.Capacity = 100
	cfg.NumShards = 2
	cfg.Clock = clock
	c, err := cache.NewCustomerListCache(cfg)
	require.NoError(t, err)
	return c, clock
}

func page(names ...string) []*entity.Customer {
	out := make([]*entity.Customer, 0, len(names))
	for i, n := range names {
		out = append(out, &entity.Customer{ID: int64(i + 1), Name: n, Contact: &entity.Contact{ID: int64(i + 1)}})
	}
	return out
}

func TestCustomerListCache_MissYLuegoHit(t *testing.T) {
	c, _ := newTestCache(t)
	key := "Customers____id_true_1_10"

	_, ok := c.Get(key)
	assert.False(t, ok, "una clave nueva no debe estar en caché")

	c.Set(key, page("Fedex"))
	got, ok := c.Get(key)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Fedex", got[0].Name)
	assert.Equal(t, 1, c.Size())
}

func TestCustomerListCache_ExpiraTrasElTTL(t *testing.T) {
	c, clock := newTestCache(t)
	key := "Customers____id_true_1_10"
	c.Set(key, page("Fedex"))

	clock.Add(4*time.Minute + 59*time.Second)
	_, ok := c.Get(key)
	assert.True(t, ok, "antes de 5 minutos la entrada sigue vigente")

	clock.Add(2 * time.Second)
	_, ok = c.Get(key)
	assert.False(t, ok, "después de 5 minutos la entrada expira")
}

func TestCustomerListCache_ClavesDistintasNoSeMezclan(t *testing.T) {
	c, _ := newTestCache(t)
	c.Set("Customers_a___id_true_1_10", page("a"))
	c.Set("Customers_A___id_true_1_10", page("A"))

	lower, ok := c.Get("Customers_a___id_true_1_10")
	require.True(t, ok)
	upper, ok := c.Get("Customers_A___id_true_1_10")
	require.True(t, ok)
	assert.Equal(t, "a", lower[0].Name)
	assert.Equal(t, "A", upper[0].Name)
}

func TestCustomerListCache_PaginaVaciaTambienSeMemoriza(t *testing.T) {
	c, _ := newTestCache(t)
	c.Set("vacia", []*entity.Customer{})
	got, ok := c.Get("vacia")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestCustomerListCache_RegistraMetricas(t *testing.T) {
	c, _ := newTestCache(t)
	hits := testutil.ToFloat64(metrics.ListCacheRequestsTotal.WithLabelValues(metrics.CacheHit))
	misses := testutil.ToFloat64(metrics.ListCacheRequestsTotal.WithLabelValues(metrics.CacheMiss))

	c.Get("metricas")
	c.Set("metricas", page("x"))
	c.Get("metricas")

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.ListCacheRequestsTotal.WithLabelValues(metrics.CacheHit)))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.ListCacheRequestsTotal.WithLabelValues(metrics.CacheMiss)))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, cache.DefaultConfig().Validate())
	assert.Equal(t, 5*time.Minute, cache.DefaultConfig().TTL)

	cfg := cache.DefaultConfig()
	cfg.TTL = 0
	var cfgErr *cache.ConfigError
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.Equal(t, "TTL", cfgErr.Field)

	cfg = cache.DefaultConfig()
	cfg.EvictionPercentage = 0
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.Equal(t, "EvictionPercentage", cfgErr.Field)

	cfg = cache.DefaultConfig()
	cfg.Capacity = 1
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.Equal(t, "NumShards", cfgErr.Field)

	_, err := cache.NewCustomerListCache(cache.Config{})
	assert.Error(t, err)
}
