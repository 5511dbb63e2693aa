package dto

import "time"

// LineaTransferenciaRequest una línea de producto dentro de una petición de
// transferencia (crear, enviar o recibir).
type LineaTransferenciaRequest struct {
	IDProducto    string `json:"id_producto"`
	Cantidad      int    `json:"cantidad"`
	Lote          string `json:"lote,omitempty"`
	Observaciones string `json:"observaciones,omitempty"`
}

// CrearTransferenciaRequest body para POST /api/transferencias.
type CrearTransferenciaRequest struct {
	AlmacenOrigen  string                      `json:"almacen_origen"`
	AlmacenDestino string                      `json:"almacen_destino"`
	Productos      []LineaTransferenciaRequest `json:"productos"`
	Observaciones  string                      `json:"observaciones,omitempty"`
}

// EnviarTransferenciaRequest body para POST /api/transferencias/:id/enviar.
type EnviarTransferenciaRequest struct {
	Productos []LineaTransferenciaRequest `json:"productos"`
}

// RecibirTransferenciaRequest body para POST /api/transferencias/:id/recibir.
type RecibirTransferenciaRequest struct {
	Productos []LineaTransferenciaRequest `json:"productos"`
}

// LineaTransferenciaResponse estado de una línea persistida.
type LineaTransferenciaResponse struct {
	IDProducto         string `json:"id_producto"`
	CantidadSolicitada int    `json:"cantidad_solicitada"`
	CantidadEnviada    *int   `json:"cantidad_enviada,omitempty"`
	CantidadRecibida   *int   `json:"cantidad_recibida,omitempty"`
	Lote               string `json:"lote,omitempty"`
	Observaciones      string `json:"observaciones,omitempty"`
}

// TransferenciaResponse respuesta con el estado de una transferencia.
type TransferenciaResponse struct {
	ID             string                       `json:"id"`
	AlmacenOrigen  string                       `json:"almacen_origen"`
	AlmacenDestino string                       `json:"almacen_destino"`
	Estado         string                       `json:"estado"`
	Creador        string                       `json:"creador"`
	Observaciones  string                       `json:"observaciones,omitempty"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
	Lineas         []LineaTransferenciaResponse `json:"lineas,omitempty"`
}

// LineaResultado resultado por línea de un envío o recepción: el id del
// movimiento generado, o el error que dejó la línea sin procesar. Las líneas
// se confirman de forma independiente; un fallo aquí no revierte a las demás.
type LineaResultado struct {
	IDProducto   string `json:"id_producto"`
	IDMovimiento string `json:"id_movimiento,omitempty"`
	Cantidad     int    `json:"cantidad"`
	Error        string `json:"error,omitempty"`
}

// ResultadoTransferenciaResponse respuesta de enviar/recibir.
type ResultadoTransferenciaResponse struct {
	ID     string           `json:"id"`
	Estado string           `json:"estado"`
	Lineas []LineaResultado `json:"lineas"`
}
