package postgres

import (
	"context"
	"fmt"

	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

var _ repository.KardexRepository = (*KardexRepo)(nil)

// KardexRepo implementación del kardex sobre PostgreSQL (usable con pool o tx).
// La tabla es solo-append: ninguna operación modifica filas existentes.
type KardexRepo struct {
	q Querier
}

// NewKardexRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKardexRepository(q Querier) *KardexRepo {
	return &KardexRepo{q: q}
}

// Append inserta la entrada y recupera el ID secuencial asignado.
func (r *KardexRepo) Append(e *entity.KardexEntrada) error {
	query := `
		INSERT INTO kardex (id_producto, almacen, id_movimiento, tipo, cantidad, saldo_resultante, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.ProductoID, e.Almacen, e.MovimientoID, e.Tipo, e.Cantidad, e.SaldoResultante, e.Fecha,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("append kardex: %w", err)
	}
	return nil
}

// History devuelve las entradas de un par ordenadas por (fecha, id) ascendente.
func (r *KardexRepo) History(productoID, almacen string, limit, offset int) ([]*entity.KardexEntrada, error) {
	query := `
		SELECT id, id_producto, almacen, id_movimiento, tipo, cantidad, saldo_resultante, fecha
		FROM kardex
		WHERE id_producto = $1 AND almacen = $2
		ORDER BY fecha ASC, id ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, productoID, almacen, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("history kardex: %w", err)
	}
	defer rows.Close()
	var list []*entity.KardexEntrada
	for rows.Next() {
		var e entity.KardexEntrada
		if err := rows.Scan(&e.ID, &e.ProductoID, &e.Almacen, &e.MovimientoID, &e.Tipo, &e.Cantidad, &e.SaldoResultante, &e.Fecha); err != nil {
			return nil, fmt.Errorf("scan kardex: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
