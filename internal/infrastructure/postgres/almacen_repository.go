package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcondori/kardex-api/internal/domain"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

var _ repository.AlmacenRepository = (*AlmacenRepo)(nil)

// AlmacenRepo implementación sobre PostgreSQL (usable con pool o tx).
type AlmacenRepo struct {
	q Querier
}

// NewAlmacenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlmacenRepository(q Querier) *AlmacenRepo {
	return &AlmacenRepo{q: q}
}

// Create persiste un almacén nuevo.
func (r *AlmacenRepo) Create(a *entity.Almacen) error {
	query := `
		INSERT INTO almacenes (id, codigo, nombre, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Codigo, a.Nombre, a.Activo, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert almacen: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén por ID, o nil si no existe.
func (r *AlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	return r.getBy("id", id)
}

// GetByCodigo obtiene un almacén por su código corto, o nil si no existe.
func (r *AlmacenRepo) GetByCodigo(codigo string) (*entity.Almacen, error) {
	return r.getBy("codigo", codigo)
}

func (r *AlmacenRepo) getBy(col, val string) (*entity.Almacen, error) {
	query := fmt.Sprintf(`
		SELECT id, codigo, nombre, activo, created_at, updated_at
		FROM almacenes WHERE %s = $1`, col)
	var a entity.Almacen
	err := r.q.QueryRow(context.Background(), query, val).Scan(
		&a.ID, &a.Codigo, &a.Nombre, &a.Activo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get almacen: %w", err)
	}
	return &a, nil
}

// List lista almacenes con paginación.
func (r *AlmacenRepo) List(limit, offset int) ([]*entity.Almacen, error) {
	query := `
		SELECT id, codigo, nombre, activo, created_at, updated_at
		FROM almacenes ORDER BY codigo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list almacenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Almacen
	for rows.Next() {
		var a entity.Almacen
		if err := rows.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Activo, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan almacen: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
