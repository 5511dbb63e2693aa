package entity

import "time"

// KardexEntrada es una fila del kardex: una por movimiento, con el saldo que
// resulta de aplicarlo. Para un (producto, almacén) fijo, recorrer las filas
// ordenadas por (fecha, id) ascendente y acumular cantidad*signo(tipo) debe
// reproducir cada SaldoResultante almacenado.
type KardexEntrada struct {
	ID              int64
	ProductoID      string
	Almacen         string
	MovimientoID    string
	Tipo            string
	Cantidad        int
	SaldoResultante int
	Fecha           time.Time
}

// Saldo materializa la última entrada del kardex por (producto, almacén).
// El stock actual es, por definición, el SaldoResultante de la entrada con
// mayor (fecha, id); a fecha igual gana el id más alto. Esta fila se actualiza
// en la misma transacción que cada asiento, y su bloqueo de fila serializa las
// escrituras sobre el par.
type Saldo struct {
	ProductoID string
	Almacen    string
	KardexID   int64 // 0 si el par aún no tiene asientos
	Cantidad   int
	UpdatedAt  time.Time
}
