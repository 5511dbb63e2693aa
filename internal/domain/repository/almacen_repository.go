package repository

import "github.com/jcondori/kardex-api/internal/domain/entity"

// AlmacenRepository puerto de persistencia para almacenes.
type AlmacenRepository interface {
	Create(a *entity.Almacen) error
	GetByID(id string) (*entity.Almacen, error)
	GetByCodigo(codigo string) (*entity.Almacen, error)
	List(limit, offset int) ([]*entity.Almacen, error)
}
