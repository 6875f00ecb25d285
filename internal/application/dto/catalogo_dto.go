package dto

// RegistrarProyectoRequest entrada para registrar un proyecto (código CUP único).
type RegistrarProyectoRequest struct {
	IDProyectoCUP string `json:"id_proyecto_cup" validate:"required,max=30"`
	Nombre        string `json:"nombre" validate:"required,max=100"`
	SUF           string `json:"suf" validate:"required,max=30"`
}

// ProyectoResponse salida de un proyecto.
type ProyectoResponse struct {
	IDProyectoCUP string `json:"id_proyecto_cup"`
	Nombre        string `json:"nombre"`
	SUF           string `json:"suf"`
}

// RegistrarProductoRequest entrada para registrar un producto de catálogo.
type RegistrarProductoRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=100"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=255"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	IDProducto  int64  `json:"id_producto"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// RegistrarTransporteRequest entrada para registrar un transporte.
type RegistrarTransporteRequest struct {
	Empresa string `json:"empresa" validate:"required,max=100"`
	Placa   string `json:"placa" validate:"required,max=15"`
}

// TransporteResponse salida de un transporte.
type TransporteResponse struct {
	IDTransporte int64  `json:"id_transporte"`
	Empresa      string `json:"empresa"`
	Placa        string `json:"placa"`
}

// RegistrarOficinaRequest entrada para registrar una oficina técnica.
type RegistrarOficinaRequest struct {
	Especialidad string `json:"especialidad" validate:"required,max=100"`
	IDPersona    int64  `json:"id_persona" validate:"required"`
}

// OficinaResponse salida de una oficina técnica.
type OficinaResponse struct {
	IDOficina    int64  `json:"id_oficina"`
	Especialidad string `json:"especialidad"`
	IDPersona    int64  `json:"id_persona"`
}

// RegistrarPersonaRequest entrada para registrar una persona suelta (contactos de catálogo).
type RegistrarPersonaRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=50"`
	Correo   string `json:"correo" validate:"required,email"`
	Telefono string `json:"telefono" validate:"required,max=15"`
	Pais     string `json:"pais" validate:"required,max=50"`
}

// PersonaResponse salida de una persona.
type PersonaResponse struct {
	IDPersona int64  `json:"id_persona"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Pais      string `json:"pais"`
}

// UsuarioResponse salida de un usuario (sin hash de contraseña).
type UsuarioResponse struct {
	IDUsuario int64  `json:"id_usuario"`
	Correo    string `json:"correo"`
	Rol       string `json:"rol"`
	IDPersona int64  `json:"id_persona"`
}
