package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcondori/kardex-api/internal/application/dto"
	"github.com/jcondori/kardex-api/internal/domain"
)

// errorJSON mapea errores de dominio a respuestas HTTP. Los rechazos de
// validación (incluido stock insuficiente) responden 400 con su código; a
// stock insuficiente se le agregan el saldo disponible y lo solicitado.
func errorJSON(c *fiber.Ctx, err error) error {
	var insuf *domain.InsufficientStockError
	if errors.As(err, &insuf) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:               "INSUFFICIENT_STOCK",
			Message:            err.Error(),
			StockActual:        &insuf.StockActual,
			CantidadSolicitada: &insuf.CantidadSolicitada,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidType):
		return badRequest(c, "INVALID_TYPE", err)
	case errors.Is(err, domain.ErrInvalidQuantity):
		return badRequest(c, "INVALID_QUANTITY", err)
	case errors.Is(err, domain.ErrInvalidWarehouse):
		return badRequest(c, "INVALID_WAREHOUSE", err)
	case errors.Is(err, domain.ErrInvalidProduct):
		return badRequest(c, "INVALID_PRODUCT", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return badRequest(c, "INSUFFICIENT_STOCK", err)
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "VALIDATION", err)
	case errors.Is(err, domain.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: err.Error()})
	case errors.Is(err, domain.ErrTransferNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TRANSFER_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
