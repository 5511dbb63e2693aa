package entity

import "time"

// Tipos de movimiento del kardex.
const (
	TipoIngreso              = "INGRESO" // entrada directa
	TipoEgreso               = "EGRESO"  // salida directa
	TipoTransferenciaSalida  = "TRF-SAL" // salida en almacén origen de una transferencia
	TipoTransferenciaEntrada = "TRF-ENT" // entrada en almacén destino de una transferencia
)

// TipoValido indica si el tipo pertenece al conjunto de tipos soportados.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoIngreso, TipoEgreso, TipoTransferenciaSalida, TipoTransferenciaEntrada:
		return true
	}
	return false
}

// SignoTipo devuelve +1 para movimientos de entrada y -1 para los de salida.
// La cantidad del movimiento se almacena siempre positiva; el signo vive aquí.
func SignoTipo(tipo string) int {
	switch tipo {
	case TipoEgreso, TipoTransferenciaSalida:
		return -1
	default:
		return 1
	}
}

// Movimiento es un hecho inmutable del inventario: nunca se edita ni se borra.
type Movimiento struct {
	ID              string
	Tipo            string // INGRESO | EGRESO | TRF-SAL | TRF-ENT
	Almacen         string // código corto del almacén, ej. "LPZ"
	ProductoID      string
	Cantidad        int // estrictamente positivo; la dirección la da el tipo
	Fecha           time.Time
	Usuario         string // actor que registró el movimiento
	Lote            string
	Motivo          string
	Nota            string
	TransferenciaID string // vacío si el movimiento no proviene de una transferencia
	CreatedAt       time.Time
}
