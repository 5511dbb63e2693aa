package repository

import "github.com/jcondori/kardex-api/internal/domain/entity"

// MovimientoRepository puerto de persistencia para movimientos de inventario.
// Los movimientos son inmutables: solo se crean y se consultan.
type MovimientoRepository interface {
	Create(m *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	List(almacen, productoID string, limit, offset int) ([]*entity.Movimiento, error)
}
