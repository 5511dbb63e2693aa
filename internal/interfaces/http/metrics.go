package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negocio expuestos en /metrics.
var (
	movimientosRegistrados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kardex_movimientos_total",
		Help: "Movimientos de inventario registrados, por tipo.",
	}, []string{"tipo"})

	transferenciasPorEstado = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kardex_transferencias_total",
		Help: "Transiciones de estado de transferencias.",
	}, []string{"estado"})
)
