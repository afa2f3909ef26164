package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de una consulta a la caché de listados.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

var (
	// HTTP

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_management_http_requests_total",
			Help: "Total de peticiones HTTP atendidas",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_management_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// Caché de listados de clientes

	ListCacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_management_list_cache_requests_total",
			Help: "Consultas a la caché de listados de clientes por resultado",
		},
		[]string{"result"},
	)

	ListCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "client_management_list_cache_entries",
			Help: "Entradas actualmente almacenadas en la caché de listados",
		},
	)
)
