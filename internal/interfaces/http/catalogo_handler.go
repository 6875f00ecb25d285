package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/application/usecase"
	"github.com/construdata/pedidos-api/internal/domain"
)

// CatalogoHandler maneja las lecturas y altas de catálogo (protegido).
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

func (h *CatalogoHandler) listar(c *fiber.Ctx, out any, err error) error {
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListarProyectos godoc
// @Summary  Listar proyectos
// @Tags     catalogo
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.ProyectoResponse
// @Router   /proyecto [get]
func (h *CatalogoHandler) ListarProyectos(c *fiber.Ctx) error {
	out, err := h.uc.ListarProyectos()
	return h.listar(c, out, err)
}

// ListarUsuarios godoc
// @Summary  Listar usuarios
// @Tags     catalogo
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.UsuarioResponse
// @Router   /usuario [get]
func (h *CatalogoHandler) ListarUsuarios(c *fiber.Ctx) error {
	out, err := h.uc.ListarUsuarios()
	return h.listar(c, out, err)
}

// ListarTransportes godoc
// @Summary  Listar transportes
// @Tags     catalogo
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.TransporteResponse
// @Router   /transporte [get]
func (h *CatalogoHandler) ListarTransportes(c *fiber.Ctx) error {
	out, err := h.uc.ListarTransportes()
	return h.listar(c, out, err)
}

// ListarOficinas godoc
// @Summary  Listar oficinas técnicas
// @Tags     catalogo
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.OficinaResponse
// @Router   /oficina_tecnica [get]
func (h *CatalogoHandler) ListarOficinas(c *fiber.Ctx) error {
	out, err := h.uc.ListarOficinas()
	return h.listar(c, out, err)
}

// ListarProductos godoc
// @Summary  Listar productos
// @Tags     catalogo
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.ProductoResponse
// @Router   /producto [get]
func (h *CatalogoHandler) ListarProductos(c *fiber.Ctx) error {
	out, err := h.uc.ListarProductos()
	return h.listar(c, out, err)
}

// ListarPersonas godoc
// @Summary  Listar personas
// @Tags     catalogo
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.PersonaResponse
// @Router   /personas [get]
func (h *CatalogoHandler) ListarPersonas(c *fiber.Ctx) error {
	out, err := h.uc.ListarPersonas()
	return h.listar(c, out, err)
}

// RegistrarProyecto godoc
// @Summary  Registrar proyecto
// @Tags     catalogo
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.RegistrarProyectoRequest  true  "id_proyecto_cup, nombre, suf"
// @Success  201   {object}  dto.ProyectoResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /registrar_proyecto [post]
func (h *CatalogoHandler) RegistrarProyecto(c *fiber.Ctx) error {
	var in dto.RegistrarProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarProyecto(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_proyecto_cup, nombre y suf son requeridos"})
		}
		if err == domain.ErrDuplicado {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "el código CUP ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarProducto godoc
// @Summary  Registrar producto
// @Tags     catalogo
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.RegistrarProductoRequest  true  "nombre, descripcion"
// @Success  201   {object}  dto.ProductoResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /registrar_producto [post]
func (h *CatalogoHandler) RegistrarProducto(c *fiber.Ctx) error {
	var in dto.RegistrarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarProducto(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarTransporte godoc
// @Summary  Registrar transporte
// @Tags     catalogo
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.RegistrarTransporteRequest  true  "empresa, placa"
// @Success  201   {object}  dto.TransporteResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /registrar_transporte [post]
func (h *CatalogoHandler) RegistrarTransporte(c *fiber.Ctx) error {
	var in dto.RegistrarTransporteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarTransporte(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empresa y placa son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarOficina godoc
// @Summary  Registrar oficina técnica
// @Tags     catalogo
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.RegistrarOficinaRequest  true  "especialidad, id_persona"
// @Success  201   {object}  dto.OficinaResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /registrar_oficina [post]
func (h *CatalogoHandler) RegistrarOficina(c *fiber.Ctx) error {
	var in dto.RegistrarOficinaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarOficina(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "especialidad e id_persona son requeridos"})
		}
		if err == domain.ErrReferencia {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REFERENCIA", Message: "la persona responsable no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarPersona godoc
// @Summary  Registrar persona
// @Tags     catalogo
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.RegistrarPersonaRequest  true  "nombre, correo, telefono, pais"
// @Success  201   {object}  dto.PersonaResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /registrar_persona [post]
func (h *CatalogoHandler) RegistrarPersona(c *fiber.Ctx) error {
	var in dto.RegistrarPersonaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarPersona(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, correo, telefono y pais son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
