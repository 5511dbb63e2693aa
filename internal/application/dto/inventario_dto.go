package dto

import "time"

// RegistrarMovimientoRequest body para POST /api/movimientos.
// Fecha es opcional (RFC 3339); si falta, se usa la hora del servidor.
type RegistrarMovimientoRequest struct {
	Tipo       string     `json:"tipo"`
	Almacen    string     `json:"almacen"`
	IDProducto string     `json:"id_producto"`
	Cantidad   int        `json:"cantidad"`
	Lote       string     `json:"lote,omitempty"`
	Motivo     string     `json:"motivo,omitempty"`
	Nota       string     `json:"nota,omitempty"`
	Fecha      *time.Time `json:"fecha,omitempty"`
}

// MovimientoResponse respuesta al registrar o consultar un movimiento.
type MovimientoResponse struct {
	ID              string    `json:"id"`
	Tipo            string    `json:"tipo"`
	Almacen         string    `json:"almacen"`
	IDProducto      string    `json:"id_producto"`
	Cantidad        int       `json:"cantidad"`
	SaldoResultante int       `json:"saldo_resultante"`
	Lote            string    `json:"lote,omitempty"`
	Motivo          string    `json:"motivo,omitempty"`
	Nota            string    `json:"nota,omitempty"`
	IDTransferencia string    `json:"id_transferencia,omitempty"`
	Fecha           time.Time `json:"fecha"`
}

// StockItemResponse una fila de GET /api/stock.
type StockItemResponse struct {
	IDProducto        string `json:"id_producto"`
	ProductoNombre    string `json:"producto_nombre"`
	ProductoCategoria string `json:"producto_categoria"`
	Almacen           string `json:"almacen"`
	StockActual       int    `json:"stock_actual"`
}

// KardexEntradaResponse una fila del historial de kardex.
type KardexEntradaResponse struct {
	ID              int64     `json:"id"`
	IDProducto      string    `json:"id_producto"`
	Almacen         string    `json:"almacen"`
	IDMovimiento    string    `json:"id_movimiento"`
	Tipo            string    `json:"tipo"`
	Cantidad        int       `json:"cantidad"`
	SaldoResultante int       `json:"saldo_resultante"`
	Fecha           time.Time `json:"fecha"`
}
