package inventario

import (
	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/domain"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// ConsultaStockUseCase lado de lectura del inventario: saldos actuales e
// historial de kardex. No escribe nunca; lee el índice de última entrada en
// lugar de recorrer la historia.
type ConsultaStockUseCase struct {
	saldoRepo    repository.SaldoRepository
	kardexRepo   repository.KardexRepository
	productoRepo repository.ProductoRepository
	almacenRepo  repository.AlmacenRepository
}

// NewConsultaStockUseCase construye el caso de uso.
func NewConsultaStockUseCase(
	saldoRepo repository.SaldoRepository,
	kardexRepo repository.KardexRepository,
	productoRepo repository.ProductoRepository,
	almacenRepo repository.AlmacenRepository,
) *ConsultaStockUseCase {
	return &ConsultaStockUseCase{
		saldoRepo:    saldoRepo,
		kardexRepo:   kardexRepo,
		productoRepo: productoRepo,
		almacenRepo:  almacenRepo,
	}
}

// Saldo devuelve el stock actual de un producto en un almacén. Un par válido
// sin asientos devuelve 0, nunca error.
func (uc *ConsultaStockUseCase) Saldo(productoID, almacen string) (int, error) {
	a, err := uc.almacenRepo.GetByCodigo(almacen)
	if err != nil {
		return 0, err
	}
	if a == nil || !a.Activo {
		return 0, domain.ErrInvalidWarehouse
	}
	s, err := uc.saldoRepo.Get(productoID, almacen)
	if err != nil {
		return 0, err
	}
	return s.Cantidad, nil
}

// Stock devuelve los saldos de un almacén. Con productoID vacío devuelve una
// fila por cada producto activo (incluyendo los que aún no tienen asientos,
// con stock 0); con productoID devuelve solo esa fila.
func (uc *ConsultaStockUseCase) Stock(almacen, productoID string) ([]dto.StockItemResponse, error) {
	a, err := uc.almacenRepo.GetByCodigo(almacen)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.Activo {
		return nil, domain.ErrInvalidWarehouse
	}

	if productoID != "" {
		p, err := uc.productoRepo.GetByID(productoID)
		if err != nil {
			return nil, err
		}
		if p == nil || !p.Activo {
			return nil, domain.ErrInvalidProduct
		}
		s, err := uc.saldoRepo.Get(productoID, almacen)
		if err != nil {
			return nil, err
		}
		return []dto.StockItemResponse{{
			IDProducto:        p.ID,
			ProductoNombre:    p.Nombre,
			ProductoCategoria: p.Categoria,
			Almacen:           almacen,
			StockActual:       s.Cantidad,
		}}, nil
	}

	productos, err := uc.productoRepo.ListActivos()
	if err != nil {
		return nil, err
	}
	saldos, err := uc.saldoRepo.ListByAlmacen(almacen)
	if err != nil {
		return nil, err
	}
	porProducto := make(map[string]int, len(saldos))
	for _, s := range saldos {
		porProducto[s.ProductoID] = s.Cantidad
	}

	items := make([]dto.StockItemResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.StockItemResponse{
			IDProducto:        p.ID,
			ProductoNombre:    p.Nombre,
			ProductoCategoria: p.Categoria,
			Almacen:           almacen,
			StockActual:       porProducto[p.ID],
		})
	}
	return items, nil
}

// Kardex devuelve el historial de asientos de un par (producto, almacén) en
// orden (fecha, id) ascendente.
func (uc *ConsultaStockUseCase) Kardex(productoID, almacen string, page dto.PageRequest) ([]dto.KardexEntradaResponse, error) {
	a, err := uc.almacenRepo.GetByCodigo(almacen)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.Activo {
		return nil, domain.ErrInvalidWarehouse
	}
	page.DefaultPage()
	entradas, err := uc.kardexRepo.History(productoID, almacen, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KardexEntradaResponse, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, dto.KardexEntradaResponse{
			ID:              e.ID,
			IDProducto:      e.ProductoID,
			Almacen:         e.Almacen,
			IDMovimiento:    e.MovimientoID,
			Tipo:            e.Tipo,
			Cantidad:        e.Cantidad,
			SaldoResultante: e.SaldoResultante,
			Fecha:           e.Fecha,
		})
	}
	return out, nil
}
