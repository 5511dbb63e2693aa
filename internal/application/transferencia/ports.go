package transferencia

import (
	"context"

	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de inventario más el de transferencias. Cada línea de un envío
// o recepción corre en su propia transacción: movimiento, asiento de kardex,
// saldo y actualización de la línea se confirman juntos, pero una línea no
// arrastra a las demás.
type TxRunner interface {
	RunTransferencia(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		kardexRepo repository.KardexRepository,
		saldoRepo repository.SaldoRepository,
		trfRepo repository.TransferenciaRepository,
	) error) error
}
