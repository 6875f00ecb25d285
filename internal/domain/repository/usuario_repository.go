package repository

import "github.com/construdata/pedidos-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	// Create inserta el usuario y devuelve el ID generado.
	// Un correo duplicado devuelve ErrCorreoRegistrado.
	Create(usuario *entity.Usuario) (int64, error)
	// FindByCorreo devuelve nil, nil si el correo no está registrado.
	FindByCorreo(correo string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
}

// PersonaRepository define el puerto de persistencia para Persona.
type PersonaRepository interface {
	// Create inserta la persona y devuelve el ID generado.
	Create(persona *entity.Persona) (int64, error)
	// GetByID devuelve nil, nil si la persona no existe.
	GetByID(id int64) (*entity.Persona, error)
	List() ([]*entity.Persona, error)
}
