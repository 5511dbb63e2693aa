package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/domain"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// ProductoUseCase alta y consulta del catálogo de productos. Capa delgada de
// captura de datos; el motor de kardex solo le consulta existencia y estado.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create registra un producto nuevo, activo por defecto.
func (uc *ProductoUseCase) Create(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	p := &entity.Producto{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Categoria: in.Categoria,
		Precio:    in.Precio,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID devuelve el producto o nil si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// List lista productos paginados.
func (uc *ProductoUseCase) List(page dto.PageRequest) ([]dto.ProductoResponse, error) {
	page.DefaultPage()
	productos, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

// Update modifica nombre, categoría, precio o el flag activo.
func (uc *ProductoUseCase) Update(id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != "" {
		p.Nombre = in.Nombre
	}
	if in.Categoria != "" {
		p.Categoria = in.Categoria
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Categoria: p.Categoria,
		Precio:    p.Precio,
		Activo:    p.Activo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
