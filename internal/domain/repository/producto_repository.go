package repository

import "github.com/jcondori/kardex-api/internal/domain/entity"

// ProductoRepository puerto de persistencia para productos.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	List(limit, offset int) ([]*entity.Producto, error)
	ListActivos() ([]*entity.Producto, error)
	Update(p *entity.Producto) error
}
