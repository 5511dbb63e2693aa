package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/application/transferencia"
)

// TransferenciaHandler maneja el flujo de transferencias entre almacenes (protegido).
type TransferenciaHandler struct {
	uc *transferencia.TransferenciaUseCase
}

// NewTransferenciaHandler construye el handler.
func NewTransferenciaHandler(uc *transferencia.TransferenciaUseCase) *TransferenciaHandler {
	return &TransferenciaHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear transferencia (estado Pendiente)
// @Tags         transferencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearTransferenciaRequest  true  "almacen_origen, almacen_destino, productos"
// @Success      201   {object}  dto.TransferenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transferencias [post]
func (h *TransferenciaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearTransferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Solicitar(c.Context(), transferencia.SolicitarInput{
		AlmacenOrigen:  in.AlmacenOrigen,
		AlmacenDestino: in.AlmacenDestino,
		Lineas:         toLineas(in.Productos),
		Creador:        GetUsuario(c),
		Observaciones:  in.Observaciones,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	transferenciasPorEstado.WithLabelValues(res.Estado).Inc()
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Enviar godoc
// @Summary      Enviar transferencia (Pendiente → En tránsito)
// @Tags         transferencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transferencia"
// @Param        body  body  dto.EnviarTransferenciaRequest  true  "productos a enviar"
// @Success      200   {object}  dto.ResultadoTransferenciaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transferencias/{id}/enviar [post]
func (h *TransferenciaHandler) Enviar(c *fiber.Ctx) error {
	var in dto.EnviarTransferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Enviar(c.Context(), c.Params("id"), GetUsuario(c), toLineas(in.Productos))
	if err != nil {
		return errorJSON(c, err)
	}
	transferenciasPorEstado.WithLabelValues(res.Estado).Inc()
	return c.JSON(res)
}

// Recibir godoc
// @Summary      Recibir transferencia (En tránsito → Recibida)
// @Tags         transferencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transferencia"
// @Param        body  body  dto.RecibirTransferenciaRequest  true  "productos recibidos"
// @Success      200   {object}  dto.ResultadoTransferenciaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transferencias/{id}/recibir [post]
func (h *TransferenciaHandler) Recibir(c *fiber.Ctx) error {
	var in dto.RecibirTransferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Recibir(c.Context(), c.Params("id"), GetUsuario(c), toLineas(in.Productos))
	if err != nil {
		return errorJSON(c, err)
	}
	transferenciasPorEstado.WithLabelValues(res.Estado).Inc()
	return c.JSON(res)
}

// GetByID godoc
// @Summary      Obtener transferencia con sus líneas
// @Tags         transferencias
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transferencia"
// @Success      200  {object}  dto.TransferenciaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transferencias/{id} [get]
func (h *TransferenciaHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(res)
}

// List godoc
// @Summary      Listar transferencias
// @Tags         transferencias
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.TransferenciaResponse
// @Router       /api/transferencias [get]
func (h *TransferenciaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	res, err := h.uc.List(page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(res)
}

func toLineas(productos []dto.LineaTransferenciaRequest) []transferencia.LineaInput {
	lineas := make([]transferencia.LineaInput, 0, len(productos))
	for _, p := range productos {
		lineas = append(lineas, transferencia.LineaInput{
			ProductoID:    p.IDProducto,
			Cantidad:      p.Cantidad,
			Lote:          p.Lote,
			Observaciones: p.Observaciones,
		})
	}
	return lineas
}
