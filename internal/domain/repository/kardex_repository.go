package repository

import "github.com/jcondori/kardex-api/internal/domain/entity"

// KardexRepository puerto de persistencia para el kardex (solo append).
type KardexRepository interface {
	// Append inserta la entrada y asigna su ID secuencial.
	Append(e *entity.KardexEntrada) error
	// History devuelve las entradas de un par (producto, almacén) ordenadas
	// por (fecha, id) ascendente.
	History(productoID, almacen string, limit, offset int) ([]*entity.KardexEntrada, error)
}

// SaldoRepository puerto del índice de "última entrada" por (producto, almacén).
type SaldoRepository interface {
	// Get devuelve el saldo actual; para un par sin asientos devuelve un
	// saldo en cero, nunca error.
	Get(productoID, almacen string) (*entity.Saldo, error)
	// GetForUpdate devuelve el saldo bloqueando la fila para la transacción
	// en curso (crea la fila en cero si no existe, para que el primer
	// movimiento del par también serialice).
	GetForUpdate(productoID, almacen string) (*entity.Saldo, error)
	Set(s *entity.Saldo) error
	ListByAlmacen(almacen string) ([]*entity.Saldo, error)
}
