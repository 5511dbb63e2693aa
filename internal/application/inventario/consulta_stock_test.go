package inventario_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/application/inventario"
	"github.com/jcondori/kardex-api/internal/domain"
	"github.com/jcondori/kardex-api/internal/domain/entity"
)

func newConsulta() (*inventario.ConsultaStockUseCase, *inventario.RegistrarMovimientoUseCase, *memStore) {
	store := newMemStore()
	productos, almacenes := catalogoDePrueba()
	registrar := inventario.NewRegistrarMovimientoUseCase(&fakeTxRunner{store: store}, productos, almacenes)
	consulta := inventario.NewConsultaStockUseCase(
		&fakeSaldoRepo{store: store},
		&fakeKardexRepo{store: store},
		productos,
		almacenes,
	)
	return consulta, registrar, store
}

func ingresar(t *testing.T, uc *inventario.RegistrarMovimientoUseCase, almacen, producto string, cantidad int) {
	t.Helper()
	_, err := uc.RegistrarMovimiento(context.Background(), inventario.MovimientoInput{
		Tipo: entity.TipoIngreso, Almacen: almacen, ProductoID: producto, Cantidad: cantidad, Usuario: "test",
	})
	require.NoError(t, err)
}

// Un par (producto, almacén) válido sin asientos consulta en 0, nunca en error.
func TestSaldo_ParSinAsientosEsCero(t *testing.T) {
	consulta, _, _ := newConsulta()

	saldo, err := consulta.Saldo("paracetamol", "LPZ")
	require.NoError(t, err)
	assert.Equal(t, 0, saldo)
}

func TestSaldo_AlmacenInvalido(t *testing.T) {
	consulta, _, _ := newConsulta()

	_, err := consulta.Saldo("paracetamol", "XXX")
	assert.ErrorIs(t, err, domain.ErrInvalidWarehouse)

	_, err = consulta.Saldo("paracetamol", "CER")
	assert.ErrorIs(t, err, domain.ErrInvalidWarehouse, "un almacén inactivo no se consulta")
}

// Stock sin producto devuelve una fila por producto activo, con 0 para los
// que no tienen asientos; los inactivos no aparecen.
func TestStock_ListadoCompletoDelAlmacen(t *testing.T) {
	consulta, registrar, _ := newConsulta()
	ingresar(t, registrar, "LPZ", "paracetamol", 80)

	items, err := consulta.Stock("LPZ", "")
	require.NoError(t, err)
	require.Len(t, items, 2, "solo los dos productos activos del catálogo")

	porProducto := make(map[string]dto.StockItemResponse, len(items))
	for _, it := range items {
		porProducto[it.IDProducto] = it
	}
	assert.Equal(t, 80, porProducto["paracetamol"].StockActual)
	assert.Equal(t, 0, porProducto["amoxicilina"].StockActual, "sin asientos, stock 0")
	assert.NotContains(t, porProducto, "descontinuado")
	assert.Equal(t, "Paracetamol 500mg", porProducto["paracetamol"].ProductoNombre)
}

func TestStock_ProductoPuntual(t *testing.T) {
	consulta, registrar, _ := newConsulta()
	ingresar(t, registrar, "LPZ", "paracetamol", 12)

	items, err := consulta.Stock("LPZ", "paracetamol")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 12, items[0].StockActual)

	_, err = consulta.Stock("LPZ", "descontinuado")
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)

	_, err = consulta.Stock("LPZ", "no-existe")
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
}

// El historial sale en orden cronológico con el saldo resultante por asiento.
func TestKardex_HistorialOrdenado(t *testing.T) {
	consulta, registrar, _ := newConsulta()
	ctx := context.Background()

	ingresar(t, registrar, "LPZ", "paracetamol", 100)
	_, err := registrar.RegistrarMovimiento(ctx, inventario.MovimientoInput{
		Tipo: entity.TipoEgreso, Almacen: "LPZ", ProductoID: "paracetamol", Cantidad: 30, Usuario: "test",
	})
	require.NoError(t, err)
	ingresar(t, registrar, "SCZ", "paracetamol", 999) // otro almacén: no debe aparecer

	entradas, err := consulta.Kardex("paracetamol", "LPZ", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, entradas, 2)

	assert.Equal(t, entity.TipoIngreso, entradas[0].Tipo)
	assert.Equal(t, 100, entradas[0].SaldoResultante)
	assert.Equal(t, entity.TipoEgreso, entradas[1].Tipo)
	assert.Equal(t, 70, entradas[1].SaldoResultante)
}

func TestKardex_Paginacion(t *testing.T) {
	consulta, registrar, _ := newConsulta()

	for i := 0; i < 5; i++ {
		ingresar(t, registrar, "LPZ", "paracetamol", 10)
	}

	pagina, err := consulta.Kardex("paracetamol", "LPZ", dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, pagina, 2)
	assert.Equal(t, 30, pagina[0].SaldoResultante, "el tercer asiento acumula 30")
	assert.Equal(t, 40, pagina[1].SaldoResultante)
}
