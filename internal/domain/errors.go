package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrPedidoNotFound    = errors.New("pedido no encontrado")
	ErrUsuarioNotFound   = errors.New("usuario no encontrado")
	ErrCorreoRegistrado  = errors.New("el correo ya está registrado")
	ErrEntradaInvalida   = errors.New("entrada inválida")
	ErrCodigoInvalido    = errors.New("código de validación inválido o inactivo")
	ErrDuplicado         = errors.New("recurso duplicado")
	ErrReferencia        = errors.New("referencia a catálogo inexistente")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
