package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/application/usecase"
)

// AlmacenHandler maneja las peticiones HTTP para almacenes (protegido).
type AlmacenHandler struct {
	uc *usecase.AlmacenUseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(uc *usecase.AlmacenUseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// Create godoc
// @Summary      Crear almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearAlmacenRequest  true  "codigo y nombre"
// @Success      201   {object}  dto.AlmacenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/almacenes [post]
func (h *AlmacenHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCodigo godoc
// @Summary      Obtener almacén por código
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código del almacén"
// @Success      200  {object}  dto.AlmacenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{codigo} [get]
func (h *AlmacenHandler) GetByCodigo(c *fiber.Ctx) error {
	out, err := h.uc.GetByCodigo(c.Params("codigo"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "almacén no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar almacenes
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.AlmacenResponse
// @Router       /api/almacenes [get]
func (h *AlmacenHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
