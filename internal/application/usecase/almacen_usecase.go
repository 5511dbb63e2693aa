package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/domain"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// AlmacenUseCase alta y consulta de almacenes.
type AlmacenUseCase struct {
	repo repository.AlmacenRepository
}

// NewAlmacenUseCase construye el caso de uso.
func NewAlmacenUseCase(repo repository.AlmacenRepository) *AlmacenUseCase {
	return &AlmacenUseCase{repo: repo}
}

// Create registra un almacén nuevo. El código se normaliza a mayúsculas y debe
// ser único.
func (uc *AlmacenUseCase) Create(in dto.CrearAlmacenRequest) (*dto.AlmacenResponse, error) {
	codigo := strings.ToUpper(strings.TrimSpace(in.Codigo))
	if codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	a := &entity.Almacen{
		ID:        uuid.New().String(),
		Codigo:    codigo,
		Nombre:    in.Nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAlmacenResponse(a), nil
}

// GetByCodigo devuelve el almacén o nil si no existe.
func (uc *AlmacenUseCase) GetByCodigo(codigo string) (*dto.AlmacenResponse, error) {
	a, err := uc.repo.GetByCodigo(strings.ToUpper(codigo))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAlmacenResponse(a), nil
}

// List lista almacenes paginados.
func (uc *AlmacenUseCase) List(page dto.PageRequest) ([]dto.AlmacenResponse, error) {
	page.DefaultPage()
	almacenes, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlmacenResponse, 0, len(almacenes))
	for _, a := range almacenes {
		out = append(out, *toAlmacenResponse(a))
	}
	return out, nil
}

func toAlmacenResponse(a *entity.Almacen) *dto.AlmacenResponse {
	return &dto.AlmacenResponse{
		ID:        a.ID,
		Codigo:    a.Codigo,
		Nombre:    a.Nombre,
		Activo:    a.Activo,
		CreatedAt: a.CreatedAt,
	}
}
