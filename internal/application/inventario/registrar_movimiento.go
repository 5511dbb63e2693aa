package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jcondori/kardex-api/internal/domain"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// RegistrarMovimientoUseCase registra movimientos de inventario (INGRESO,
// EGRESO, TRF-SAL, TRF-ENT) de forma transaccional. Es el único camino de
// escritura hacia el kardex: valida, bloquea la fila de saldo del par
// (producto, almacén) y confirma movimiento + asiento + saldo juntos.
type RegistrarMovimientoUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	almacenRepo  repository.AlmacenRepository
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	almacenRepo repository.AlmacenRepository,
) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		almacenRepo:  almacenRepo,
	}
}

// MovimientoInput entrada para registrar un movimiento.
// Fecha en cero significa "ahora"; una fecha explícita no puede ser anterior
// al último asiento del par (producto, almacén). TransferenciaID solo viene
// llenado cuando el movimiento lo genera el flujo de transferencias.
type MovimientoInput struct {
	Tipo            string
	Almacen         string // código del almacén
	ProductoID      string
	Cantidad        int
	Usuario         string
	Fecha           time.Time
	Lote            string
	Motivo          string
	Nota            string
	TransferenciaID string
}

// MovimientoResult id del movimiento creado y saldo tras aplicarlo.
type MovimientoResult struct {
	MovimientoID    string
	SaldoResultante int
	Fecha           time.Time
}

// RegistrarMovimiento valida todas las precondiciones antes de escribir nada y
// luego confirma el movimiento dentro de una transacción. Para tipos de salida
// la suficiencia de stock se verifica con la fila de saldo ya bloqueada, de
// modo que dos salidas concurrentes sobre el mismo par no puedan aprobar ambas
// una suma que deje el saldo negativo.
func (uc *RegistrarMovimientoUseCase) RegistrarMovimiento(ctx context.Context, in MovimientoInput) (*MovimientoResult, error) {
	if !entity.TipoValido(in.Tipo) {
		return nil, domain.ErrInvalidType
	}
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	almacen, err := uc.almacenRepo.GetByCodigo(in.Almacen)
	if err != nil {
		return nil, err
	}
	if almacen == nil || !almacen.Activo {
		return nil, domain.ErrInvalidWarehouse
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, domain.ErrInvalidProduct
	}

	var res *MovimientoResult
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		kardexRepo repository.KardexRepository,
		saldoRepo repository.SaldoRepository,
	) error {
		r, err := uc.RegistrarEnTx(movRepo, kardexRepo, saldoRepo, in)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RegistrarEnTx aplica el movimiento usando repositorios ya atados a una
// transacción del caller (lo usa el flujo de transferencias para confirmar
// línea por línea). Asume tipo y cantidad ya validados; la suficiencia de
// stock se verifica aquí, con el bloqueo de fila tomado.
func (uc *RegistrarMovimientoUseCase) RegistrarEnTx(
	movRepo repository.MovimientoRepository,
	kardexRepo repository.KardexRepository,
	saldoRepo repository.SaldoRepository,
	in MovimientoInput,
) (*MovimientoResult, error) {
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = time.Now().UTC()
	}

	// Bloquea la fila de saldo del par (producto, almacén): punto único de
	// serialización para todas las escrituras sobre ese par.
	saldo, err := saldoRepo.GetForUpdate(in.ProductoID, in.Almacen)
	if err != nil {
		return nil, err
	}

	// Un asiento fechado antes del último del par se rechaza: el saldo se
	// acumula en orden de confirmación, y una fecha retroactiva dejaría un
	// historial cuyo replay en orden (fecha, id) no reproduce los saldos
	// almacenados. UpdatedAt de la fila de saldo lleva la fecha del último
	// asiento; fechas iguales desempatan por id.
	if saldo.KardexID != 0 && fecha.Before(saldo.UpdatedAt) {
		return nil, domain.ErrInvalidInput
	}

	signo := entity.SignoTipo(in.Tipo)
	if signo < 0 && saldo.Cantidad < in.Cantidad {
		return nil, &domain.InsufficientStockError{
			StockActual:        saldo.Cantidad,
			CantidadSolicitada: in.Cantidad,
		}
	}

	mov := &entity.Movimiento{
		ID:              uuid.New().String(),
		Tipo:            in.Tipo,
		Almacen:         in.Almacen,
		ProductoID:      in.ProductoID,
		Cantidad:        in.Cantidad,
		Fecha:           fecha,
		Usuario:         in.Usuario,
		Lote:            in.Lote,
		Motivo:          in.Motivo,
		Nota:            in.Nota,
		TransferenciaID: in.TransferenciaID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}

	entrada := &entity.KardexEntrada{
		ProductoID:      in.ProductoID,
		Almacen:         in.Almacen,
		MovimientoID:    mov.ID,
		Tipo:            in.Tipo,
		Cantidad:        in.Cantidad,
		SaldoResultante: saldo.Cantidad + signo*in.Cantidad,
		Fecha:           fecha,
	}
	if err := kardexRepo.Append(entrada); err != nil {
		return nil, err
	}

	saldo.KardexID = entrada.ID
	saldo.Cantidad = entrada.SaldoResultante
	saldo.UpdatedAt = fecha
	if err := saldoRepo.Set(saldo); err != nil {
		return nil, err
	}

	return &MovimientoResult{
		MovimientoID:    mov.ID,
		SaldoResultante: entrada.SaldoResultante,
		Fecha:           fecha,
	}, nil
}
