package entity

import "time"

// Estados de una transferencia entre almacenes. El flujo solo avanza:
// Pendiente → En tránsito → Recibida. No existe cancelación.
const (
	EstadoPendiente  = "Pendiente"
	EstadoEnTransito = "En tránsito"
	EstadoRecibida   = "Recibida"
)

// Transferencia es un traslado de productos entre dos almacenes, registrado
// como flujo de trabajo: el envío y la recepción ocurren en momentos (y con
// actores) distintos, cada uno generando sus propios movimientos de kardex.
type Transferencia struct {
	ID             string
	AlmacenOrigen  string
	AlmacenDestino string
	Estado         string
	Creador        string
	Observaciones  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TransferenciaLinea es un producto dentro de una transferencia, con sus
// cantidades solicitada, enviada y recibida. Enviada y recibida empiezan sin
// valor y las llenan los pasos de envío y recepción respectivamente; comparar
// ambas deja visible cualquier faltante o sobrante.
type TransferenciaLinea struct {
	ID                 int64
	TransferenciaID    string
	ProductoID         string
	CantidadSolicitada int
	CantidadEnviada    *int
	CantidadRecibida   *int
	Lote               string
	Observaciones      string
}
