package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construdata/pedidos-api/internal/application/auth"
	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/domain"
)

// AuthHandler maneja el registro de clientes y el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegistrarCliente godoc
// @Summary      Registrar cliente (Persona + Usuario)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarClienteRequest  true  "nombre, correo, telefono, pais, rol, contraseña"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /registrar_cliente [post]
func (h *AuthHandler) RegistrarCliente(c *fiber.Ctx) error {
	var in dto.RegistrarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Correo == "" || in.Telefono == "" || in.Pais == "" || in.Rol == "" || in.Contrasena == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, correo, telefono, pais, rol y contraseña son requeridos"})
	}
	out, err := h.uc.RegistrarCliente(c.Context(), in)
	if err != nil {
		if err == domain.ErrCorreoRegistrado {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CORREO_REGISTRADO", Message: "el correo ya está registrado"})
		}
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "correo, contraseña"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Correo == "" || in.Contrasena == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "correo y contraseña son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrUsuarioNotFound || err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_CREDENTIALS", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
