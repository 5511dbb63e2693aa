package transferencia

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/application/inventario"
	"github.com/jcondori/kardex-api/internal/domain"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// TransferenciaUseCase orquesta el traslado de productos entre dos almacenes
// como flujo de tres pasos: solicitar (Pendiente), enviar (En tránsito) y
// recibir (Recibida). Los movimientos de kardex los genera a través del
// registrador de movimientos, una línea por transacción.
//
// El envío y la recepción procesan las líneas en modo mejor-esfuerzo: una
// línea rechazada (por ejemplo por stock insuficiente en origen) se reporta en
// el resultado y no impide procesar las demás ni la transición de estado.
type TransferenciaUseCase struct {
	txRunner     TxRunner
	trfRepo      repository.TransferenciaRepository
	productoRepo repository.ProductoRepository
	almacenRepo  repository.AlmacenRepository
	movimientos  *inventario.RegistrarMovimientoUseCase
}

// NewTransferenciaUseCase construye el caso de uso.
func NewTransferenciaUseCase(
	txRunner TxRunner,
	trfRepo repository.TransferenciaRepository,
	productoRepo repository.ProductoRepository,
	almacenRepo repository.AlmacenRepository,
	movimientos *inventario.RegistrarMovimientoUseCase,
) *TransferenciaUseCase {
	return &TransferenciaUseCase{
		txRunner:     txRunner,
		trfRepo:      trfRepo,
		productoRepo: productoRepo,
		almacenRepo:  almacenRepo,
		movimientos:  movimientos,
	}
}

// LineaInput una línea de producto en solicitar/enviar/recibir.
type LineaInput struct {
	ProductoID    string
	Cantidad      int
	Lote          string
	Observaciones string
}

// SolicitarInput entrada para crear una transferencia.
type SolicitarInput struct {
	AlmacenOrigen  string
	AlmacenDestino string
	Lineas         []LineaInput
	Creador        string
	Observaciones  string
}

// Solicitar crea la transferencia en estado Pendiente. No mueve stock: las
// cantidades solicitadas son una intención, el kardex recién se toca al
// enviar. Las líneas sin producto válido o con cantidad no positiva se
// descartan en silencio.
func (uc *TransferenciaUseCase) Solicitar(ctx context.Context, in SolicitarInput) (*dto.TransferenciaResponse, error) {
	if in.AlmacenOrigen == in.AlmacenDestino {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Lineas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	origen, err := uc.almacenRepo.GetByCodigo(in.AlmacenOrigen)
	if err != nil {
		return nil, err
	}
	if origen == nil || !origen.Activo {
		return nil, domain.ErrInvalidWarehouse
	}
	destino, err := uc.almacenRepo.GetByCodigo(in.AlmacenDestino)
	if err != nil {
		return nil, err
	}
	if destino == nil || !destino.Activo {
		return nil, domain.ErrInvalidWarehouse
	}

	now := time.Now().UTC()
	trf := &entity.Transferencia{
		ID:             uuid.New().String(),
		AlmacenOrigen:  in.AlmacenOrigen,
		AlmacenDestino: in.AlmacenDestino,
		Estado:         entity.EstadoPendiente,
		Creador:        in.Creador,
		Observaciones:  in.Observaciones,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var lineas []*entity.TransferenciaLinea
	for _, l := range in.Lineas {
		if l.ProductoID == "" || l.Cantidad <= 0 {
			continue
		}
		if !uc.productoActivo(l.ProductoID) {
			continue
		}
		lineas = append(lineas, &entity.TransferenciaLinea{
			TransferenciaID:    trf.ID,
			ProductoID:         l.ProductoID,
			CantidadSolicitada: l.Cantidad,
			Lote:               l.Lote,
			Observaciones:      l.Observaciones,
		})
	}

	err = uc.txRunner.RunTransferencia(ctx, func(
		_ repository.MovimientoRepository,
		_ repository.KardexRepository,
		_ repository.SaldoRepository,
		trfRepo repository.TransferenciaRepository,
	) error {
		return trfRepo.Create(trf, lineas)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(trf, lineas), nil
}

// Enviar registra la salida en el almacén origen (TRF-SAL, una transacción
// por línea) y pasa la transferencia a En tránsito. La transición ocurre
// aunque alguna línea haya fallado o se haya descartado; el detalle por línea
// va en el resultado.
func (uc *TransferenciaUseCase) Enviar(ctx context.Context, id, actor string, lineas []LineaInput) (*dto.ResultadoTransferenciaResponse, error) {
	trf, err := uc.trfRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trf == nil {
		return nil, domain.ErrTransferNotFound
	}
	if trf.Estado != entity.EstadoPendiente {
		return nil, domain.ErrInvalidState
	}
	// El origen pudo desactivarse después de solicitar; sin almacén activo no
	// salen movimientos.
	origen, err := uc.almacenRepo.GetByCodigo(trf.AlmacenOrigen)
	if err != nil {
		return nil, err
	}
	if origen == nil || !origen.Activo {
		return nil, domain.ErrInvalidWarehouse
	}

	var resultados []dto.LineaResultado
	for _, l := range lineas {
		if l.ProductoID == "" || l.Cantidad <= 0 {
			continue
		}
		if !uc.productoActivo(l.ProductoID) {
			continue
		}
		linea, err := uc.trfRepo.GetLinea(id, l.ProductoID)
		if err != nil {
			return nil, err
		}
		if linea == nil {
			// El producto no fue solicitado en esta transferencia.
			continue
		}

		resultado := dto.LineaResultado{IDProducto: l.ProductoID, Cantidad: l.Cantidad}
		err = uc.txRunner.RunTransferencia(ctx, func(
			movRepo repository.MovimientoRepository,
			kardexRepo repository.KardexRepository,
			saldoRepo repository.SaldoRepository,
			trfRepo repository.TransferenciaRepository,
		) error {
			res, err := uc.movimientos.RegistrarEnTx(movRepo, kardexRepo, saldoRepo, inventario.MovimientoInput{
				Tipo:            entity.TipoTransferenciaSalida,
				Almacen:         trf.AlmacenOrigen,
				ProductoID:      l.ProductoID,
				Cantidad:        l.Cantidad,
				Usuario:         actor,
				Lote:            l.Lote,
				TransferenciaID: trf.ID,
			})
			if err != nil {
				return err
			}
			resultado.IDMovimiento = res.MovimientoID
			return trfRepo.UpdateLineaEnviada(trf.ID, l.ProductoID, l.Cantidad, l.Lote)
		})
		if err != nil {
			resultado.Error = err.Error()
		}
		resultados = append(resultados, resultado)
	}

	if err := uc.trfRepo.UpdateEstado(trf.ID, entity.EstadoEnTransito); err != nil {
		return nil, err
	}
	return &dto.ResultadoTransferenciaResponse{
		ID:     trf.ID,
		Estado: entity.EstadoEnTransito,
		Lineas: resultados,
	}, nil
}

// Recibir registra la entrada en el almacén destino (TRF-ENT, una transacción
// por línea) y cierra la transferencia en Recibida. Se acepta una cantidad
// recibida distinta de la enviada, incluso mayor: la diferencia queda visible
// en la línea, no se ajusta aquí. Una cantidad cero deja constancia de la
// recepción sin generar movimiento. La transferencia termina en Recibida aun
// con líneas cortas o sin recibir.
func (uc *TransferenciaUseCase) Recibir(ctx context.Context, id, actor string, lineas []LineaInput) (*dto.ResultadoTransferenciaResponse, error) {
	trf, err := uc.trfRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trf == nil {
		return nil, domain.ErrTransferNotFound
	}
	if trf.Estado != entity.EstadoEnTransito {
		return nil, domain.ErrInvalidState
	}
	// Mismo criterio que al enviar: el destino debe seguir activo para
	// recibir movimientos.
	destino, err := uc.almacenRepo.GetByCodigo(trf.AlmacenDestino)
	if err != nil {
		return nil, err
	}
	if destino == nil || !destino.Activo {
		return nil, domain.ErrInvalidWarehouse
	}

	var resultados []dto.LineaResultado
	for _, l := range lineas {
		if l.ProductoID == "" || l.Cantidad < 0 {
			continue
		}
		if !uc.productoActivo(l.ProductoID) {
			continue
		}
		linea, err := uc.trfRepo.GetLinea(id, l.ProductoID)
		if err != nil {
			return nil, err
		}
		if linea == nil || linea.CantidadEnviada == nil {
			// Sin registro de envío no hay nada que recibir.
			continue
		}

		resultado := dto.LineaResultado{IDProducto: l.ProductoID, Cantidad: l.Cantidad}
		err = uc.txRunner.RunTransferencia(ctx, func(
			movRepo repository.MovimientoRepository,
			kardexRepo repository.KardexRepository,
			saldoRepo repository.SaldoRepository,
			trfRepo repository.TransferenciaRepository,
		) error {
			if l.Cantidad > 0 {
				res, err := uc.movimientos.RegistrarEnTx(movRepo, kardexRepo, saldoRepo, inventario.MovimientoInput{
					Tipo:            entity.TipoTransferenciaEntrada,
					Almacen:         trf.AlmacenDestino,
					ProductoID:      l.ProductoID,
					Cantidad:        l.Cantidad,
					Usuario:         actor,
					Lote:            l.Lote,
					TransferenciaID: trf.ID,
				})
				if err != nil {
					return err
				}
				resultado.IDMovimiento = res.MovimientoID
			}
			return trfRepo.UpdateLineaRecibida(trf.ID, l.ProductoID, l.Cantidad, l.Observaciones)
		})
		if err != nil {
			resultado.Error = err.Error()
		}
		resultados = append(resultados, resultado)
	}

	if err := uc.trfRepo.UpdateEstado(trf.ID, entity.EstadoRecibida); err != nil {
		return nil, err
	}
	return &dto.ResultadoTransferenciaResponse{
		ID:     trf.ID,
		Estado: entity.EstadoRecibida,
		Lineas: resultados,
	}, nil
}

// GetByID devuelve la transferencia con sus líneas.
func (uc *TransferenciaUseCase) GetByID(id string) (*dto.TransferenciaResponse, error) {
	trf, err := uc.trfRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trf == nil {
		return nil, domain.ErrTransferNotFound
	}
	lineas, err := uc.trfRepo.GetLineas(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(trf, lineas), nil
}

// List devuelve transferencias paginadas, sin líneas.
func (uc *TransferenciaUseCase) List(page dto.PageRequest) ([]dto.TransferenciaResponse, error) {
	page.DefaultPage()
	trfs, err := uc.trfRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferenciaResponse, 0, len(trfs))
	for _, t := range trfs {
		out = append(out, *uc.toResponse(t, nil))
	}
	return out, nil
}

func (uc *TransferenciaUseCase) productoActivo(id string) bool {
	p, err := uc.productoRepo.GetByID(id)
	return err == nil && p != nil && p.Activo
}

func (uc *TransferenciaUseCase) toResponse(t *entity.Transferencia, lineas []*entity.TransferenciaLinea) *dto.TransferenciaResponse {
	resp := &dto.TransferenciaResponse{
		ID:             t.ID,
		AlmacenOrigen:  t.AlmacenOrigen,
		AlmacenDestino: t.AlmacenDestino,
		Estado:         t.Estado,
		Creador:        t.Creador,
		Observaciones:  t.Observaciones,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.LineaTransferenciaResponse{
			IDProducto:         l.ProductoID,
			CantidadSolicitada: l.CantidadSolicitada,
			CantidadEnviada:    l.CantidadEnviada,
			CantidadRecibida:   l.CantidadRecibida,
			Lote:               l.Lote,
			Observaciones:      l.Observaciones,
		})
	}
	return resp
}
