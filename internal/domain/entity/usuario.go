package entity

// Roles válidos para Usuario.
const (
	RolAdministrador = "administrador"
	RolCliente       = "cliente"
	RolOperador      = "operador"
)

// Usuario cuenta de acceso al sistema. Siempre referencia a una Persona (owns-one).
// El correo es único entre todos los usuarios.
type Usuario struct {
	ID             int64
	Correo         string
	ContrasenaHash string // bcrypt, nunca en texto plano después de persistir
	Rol            string
	IDPersona      int64
}
