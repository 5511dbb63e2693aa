package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jcondori/kardex-api/internal/application/inventario"
	"github.com/jcondori/kardex-api/internal/application/transferencia"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// TxRunner satisface los puertos transaccionales de inventario y transferencias.
var _ inventario.TxRunner = (*TxRunner)(nil)
var _ transferencia.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repositorios de inventario
// atados a ella y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	kardexRepo repository.KardexRepository,
	saldoRepo repository.SaldoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	kardexRepo := NewKardexRepository(tx)
	saldoRepo := NewSaldoRepository(tx)

	if err := fn(movRepo, kardexRepo, saldoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTransferencia inicia una transacción con los repositorios de inventario
// más el de transferencias (para confirmar una línea de envío/recepción junto
// con su movimiento).
func (r *TxRunner) RunTransferencia(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	kardexRepo repository.KardexRepository,
	saldoRepo repository.SaldoRepository,
	trfRepo repository.TransferenciaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	kardexRepo := NewKardexRepository(tx)
	saldoRepo := NewSaldoRepository(tx)
	trfRepo := NewTransferenciaRepository(tx)

	if err := fn(movRepo, kardexRepo, saldoRepo, trfRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
