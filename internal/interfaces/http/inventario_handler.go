package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/application/inventario"
)

// InventarioHandler maneja las peticiones HTTP de movimientos y stock (protegido).
type InventarioHandler struct {
	movimientos *inventario.RegistrarMovimientoUseCase
	consulta    *inventario.ConsultaStockUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(movimientos *inventario.RegistrarMovimientoUseCase, consulta *inventario.ConsultaStockUseCase) *InventarioHandler {
	return &InventarioHandler{movimientos: movimientos, consulta: consulta}
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento de inventario
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "tipo, almacen, id_producto, cantidad; lote/motivo/nota/fecha opcionales"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *InventarioHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventario.MovimientoInput{
		Tipo:       in.Tipo,
		Almacen:    in.Almacen,
		ProductoID: in.IDProducto,
		Cantidad:   in.Cantidad,
		Usuario:    GetUsuario(c),
		Lote:       in.Lote,
		Motivo:     in.Motivo,
		Nota:       in.Nota,
	}
	if in.Fecha != nil {
		input.Fecha = *in.Fecha
	}
	res, err := h.movimientos.RegistrarMovimiento(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}
	movimientosRegistrados.WithLabelValues(in.Tipo).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.MovimientoResponse{
		ID:              res.MovimientoID,
		Tipo:            in.Tipo,
		Almacen:         in.Almacen,
		IDProducto:      in.IDProducto,
		Cantidad:        in.Cantidad,
		SaldoResultante: res.SaldoResultante,
		Lote:            in.Lote,
		Motivo:          in.Motivo,
		Nota:            in.Nota,
		Fecha:           res.Fecha,
	})
}

// Stock godoc
// @Summary      Stock actual por almacén (opcionalmente por producto)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        almacen      query  string  true   "Código del almacén"
// @Param        id_producto  query  string  false  "Filtrar por producto"
// @Success      200  {array}   dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *InventarioHandler) Stock(c *fiber.Ctx) error {
	almacen := c.Query("almacen")
	if almacen == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "almacen es requerido"})
	}
	items, err := h.consulta.Stock(almacen, c.Query("id_producto"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(items)
}

// Kardex godoc
// @Summary      Historial de kardex de un producto en un almacén
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        almacen      query  string  true  "Código del almacén"
// @Param        id_producto  query  string  true  "Producto"
// @Param        limit        query  int     false "Límite"  default(20)
// @Param        offset       query  int     false "Offset"  default(0)
// @Success      200  {array}   dto.KardexEntradaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *InventarioHandler) Kardex(c *fiber.Ctx) error {
	almacen := c.Query("almacen")
	productoID := c.Query("id_producto")
	if almacen == "" || productoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "almacen e id_producto son requeridos"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	entradas, err := h.consulta.Kardex(productoID, almacen, page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(entradas)
}
