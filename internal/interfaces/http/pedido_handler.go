package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/application/usecase"
	"github.com/construdata/pedidos-api/internal/domain"
)

// PedidoHandler maneja el ciclo de vida del pedido (protegido).
type PedidoHandler struct {
	uc    *usecase.PedidoUseCase
	pdfUC *usecase.PedidoPDFUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase, pdfUC *usecase.PedidoPDFUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc, pdfUC: pdfUC}
}

// Listar godoc
// @Summary      Listar pedidos (proyección enriquecida)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        user  query  bool  false  "Solo los pedidos del usuario autenticado"
// @Success      200   {array}  dto.DetallePedidoResponse
// @Router       /pedidos [get]
func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	var idUsuario *int64
	if c.QueryBool("user") {
		id := GetUserID(c)
		if id == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado en el token"})
		}
		idUsuario = &id
	}
	out, err := h.uc.Listar(idUsuario)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Registrar godoc
// @Summary      Registrar pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarPedidoRequest  true  "Los 16 campos del pedido"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /registrar_pedido [post]
func (h *PedidoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Registrar(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los 16 campos del pedido son requeridos"})
		}
		// Violaciones de constraint (FK o código duplicado) se reportan como fallo de almacenamiento.
		if err == domain.ErrReferencia {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REFERENCIA", Message: "alguna referencia de catálogo no existe"})
		}
		if err == domain.ErrDuplicado {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "el código de pedido ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar pedido (parcial)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        codigo_pedido  path  string  true  "Código del pedido"
// @Param        body  body  dto.ActualizarPedidoRequest  true  "Subconjunto de campos"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /actualizar_pedido/{codigo_pedido} [put]
func (h *PedidoHandler) Actualizar(c *fiber.Ctx) error {
	codigo := c.Params("codigo_pedido")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "codigo_pedido es requerido"})
	}
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "el cuerpo no puede estar vacío"})
	}
	var in dto.ActualizarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(codigo, in)
	if err != nil {
		if err == domain.ErrPedidoNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		}
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
		}
		if err == domain.ErrReferencia {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REFERENCIA", Message: "alguna referencia de catálogo no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// HojaPedido godoc
// @Summary      Hoja de pedido en PDF
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        codigo_pedido  path  string  true  "Código del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/{codigo_pedido}/pdf [get]
func (h *PedidoHandler) HojaPedido(c *fiber.Ctx) error {
	codigo := c.Params("codigo_pedido")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "codigo_pedido es requerido"})
	}
	pdfBytes, err := h.pdfUC.Generar(c.Context(), codigo)
	if err != nil {
		if err == domain.ErrPedidoNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido_`+codigo+`.pdf"`)
	return c.Send(pdfBytes)
}
