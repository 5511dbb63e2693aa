package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento. Los movimientos nunca se actualizan ni borran.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, tipo, almacen, id_producto, cantidad, fecha, usuario, lote, motivo, nota, id_transferencia, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	trfID := (*string)(nil)
	if m.TransferenciaID != "" {
		trfID = &m.TransferenciaID
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Tipo, m.Almacen, m.ProductoID, m.Cantidad, m.Fecha,
		m.Usuario, m.Lote, m.Motivo, m.Nota, trfID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `
		SELECT id, tipo, almacen, id_producto, cantidad, fecha, usuario, lote, motivo, nota, COALESCE(id_transferencia::text, ''), created_at
		FROM movimientos WHERE id = $1`
	m, err := scanMovimiento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List lista movimientos filtrando por almacén y/o producto, más reciente
// primero.
func (r *MovimientoRepo) List(almacen, productoID string, limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, tipo, almacen, id_producto, cantidad, fecha, usuario, lote, motivo, nota, COALESCE(id_transferencia::text, ''), created_at
		FROM movimientos
		WHERE ($1 = '' OR almacen = $1)
		  AND ($2 = '' OR id_producto::text = $2)
		ORDER BY fecha DESC, created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, almacen, productoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	err := row.Scan(
		&m.ID, &m.Tipo, &m.Almacen, &m.ProductoID, &m.Cantidad, &m.Fecha,
		&m.Usuario, &m.Lote, &m.Motivo, &m.Nota, &m.TransferenciaID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
