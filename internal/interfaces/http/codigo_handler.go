package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/application/usecase"
	"github.com/construdata/pedidos-api/internal/domain"
)

// CodigoHandler maneja la emisión y verificación de códigos de validación (protegido).
type CodigoHandler struct {
	uc *usecase.CodigoUseCase
}

// NewCodigoHandler construye el handler.
func NewCodigoHandler(uc *usecase.CodigoUseCase) *CodigoHandler {
	return &CodigoHandler{uc: uc}
}

// Emitir godoc
// @Summary      Emitir código de validación
// @Tags         codigos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmitirCodigoRequest  true  "codigo (opcional), usuarioId"
// @Success      201   {object}  dto.CodigoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /codigo [post]
func (h *CodigoHandler) Emitir(c *fiber.Ctx) error {
	var in dto.EmitirCodigoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Emitir(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuarioId es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Verificar godoc
// @Summary      Validar y consumir código (un solo uso)
// @Tags         codigos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerificarCodigoRequest  true  "codigo, usuarioId"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /verificar_codigo [post]
func (h *CodigoHandler) Verificar(c *fiber.Ctx) error {
	var in dto.VerificarCodigoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.VerificarYConsumir(in); err != nil {
		if err == domain.ErrCodigoInvalido {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CODIGO_INVALIDO", Message: "código inválido o inactivo"})
		}
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo y usuarioId son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensajeResponse{Message: "código validado"})
}
