package dto

// RegistrarClienteRequest entrada para el alta de cliente: crea Persona + Usuario
// en una sola transacción. La contraseña llega en texto y se hashea en el use case.
type RegistrarClienteRequest struct {
	Nombre     string `json:"nombre" validate:"required,min=1,max=50"`
	Correo     string `json:"correo" validate:"required,email"`
	Telefono   string `json:"telefono" validate:"required,max=15"`
	Pais       string `json:"pais" validate:"required,max=50"`
	Rol        string `json:"rol" validate:"required,oneof=administrador cliente operador"`
	Contrasena string `json:"contraseña" validate:"required,min=8"`
}

// ClienteResponse salida del registro de cliente (sin contraseña).
type ClienteResponse struct {
	IDUsuario int64  `json:"id_usuario"`
	IDPersona int64  `json:"id_persona"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Rol       string `json:"rol"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contraseña" validate:"required"`
}

// LoginResponse salida del login con el token JWT.
type LoginResponse struct {
	Token     string `json:"token"`
	IDUsuario int64  `json:"id_usuario"`
	Rol       string `json:"rol"`
	Nombre    string `json:"nombre"`
}
