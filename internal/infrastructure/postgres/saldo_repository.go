package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

var _ repository.SaldoRepository = (*SaldoRepo)(nil)

// SaldoRepo implementación del índice de saldos sobre PostgreSQL (usable con
// pool o tx).
type SaldoRepo struct {
	q Querier
}

// NewSaldoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaldoRepository(q Querier) *SaldoRepo {
	return &SaldoRepo{q: q}
}

// Get obtiene el saldo actual de un producto en un almacén. Un par sin
// asientos devuelve saldo cero sin error.
func (r *SaldoRepo) Get(productoID, almacen string) (*entity.Saldo, error) {
	query := `
		SELECT id_producto, almacen, id_kardex, saldo, updated_at
		FROM saldos WHERE id_producto = $1 AND almacen = $2`
	var s entity.Saldo
	err := r.q.QueryRow(context.Background(), query, productoID, almacen).Scan(
		&s.ProductoID, &s.Almacen, &s.KardexID, &s.Cantidad, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Saldo{ProductoID: productoID, Almacen: almacen}, nil
		}
		return nil, fmt.Errorf("get saldo: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el saldo bloqueando la fila (SELECT FOR UPDATE) hasta
// el fin de la transacción en curso. Si el par aún no tiene fila, inserta una
// en cero antes de bloquear: el primer movimiento de un par también debe
// serializar frente a otro concurrente.
func (r *SaldoRepo) GetForUpdate(productoID, almacen string) (*entity.Saldo, error) {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO saldos (id_producto, almacen)
		VALUES ($1, $2)
		ON CONFLICT (id_producto, almacen) DO NOTHING`,
		productoID, almacen,
	)
	if err != nil {
		return nil, fmt.Errorf("init saldo: %w", err)
	}
	query := `
		SELECT id_producto, almacen, id_kardex, saldo, updated_at
		FROM saldos WHERE id_producto = $1 AND almacen = $2
		FOR UPDATE`
	var s entity.Saldo
	err = r.q.QueryRow(ctx, query, productoID, almacen).Scan(
		&s.ProductoID, &s.Almacen, &s.KardexID, &s.Cantidad, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get saldo for update: %w", err)
	}
	return &s, nil
}

// Set actualiza la fila de saldo (que GetForUpdate garantiza existente).
func (r *SaldoRepo) Set(s *entity.Saldo) error {
	query := `
		UPDATE saldos SET id_kardex = $3, saldo = $4, updated_at = $5
		WHERE id_producto = $1 AND almacen = $2`
	_, err := r.q.Exec(context.Background(), query,
		s.ProductoID, s.Almacen, s.KardexID, s.Cantidad, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("set saldo: %w", err)
	}
	return nil
}

// ListByAlmacen devuelve todos los saldos de un almacén.
func (r *SaldoRepo) ListByAlmacen(almacen string) ([]*entity.Saldo, error) {
	query := `
		SELECT id_producto, almacen, id_kardex, saldo, updated_at
		FROM saldos WHERE almacen = $1`
	rows, err := r.q.Query(context.Background(), query, almacen)
	if err != nil {
		return nil, fmt.Errorf("list saldos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Saldo
	for rows.Next() {
		var s entity.Saldo
		if err := rows.Scan(&s.ProductoID, &s.Almacen, &s.KardexID, &s.Cantidad, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan saldo: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
