package inventario

import (
	"context"

	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que movimiento, asiento de kardex y
// actualización de saldo se confirmen (o reviertan) como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		kardexRepo repository.KardexRepository,
		saldoRepo repository.SaldoRepository,
	) error) error
}
