package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/application/usecase"
	"github.com/construdata/pedidos-api/internal/domain"
)

// EnvioHandler maneja el registro de despachos (protegido).
type EnvioHandler struct {
	uc *usecase.EnvioUseCase
}

// NewEnvioHandler construye el handler.
func NewEnvioHandler(uc *usecase.EnvioUseCase) *EnvioHandler {
	return &EnvioHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar envío
// @Tags         envios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarEnvioRequest  true  "fecha_envio, observacion, valorizado, facturado, pagado, codigo_pedido"
// @Success      201   {object}  dto.EnvioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /registrar_envio [post]
func (h *EnvioHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarEnvioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Registrar(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_envio y codigo_pedido son requeridos"})
		}
		if err == domain.ErrReferencia {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REFERENCIA", Message: "el código de pedido no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar envíos
// @Tags         envios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EnvioResponse
// @Router       /envios [get]
func (h *EnvioHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
