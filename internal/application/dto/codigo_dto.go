package dto

// EmitirCodigoRequest entrada para emitir un código de validación.
// Si codigo llega vacío, el servicio genera uno.
type EmitirCodigoRequest struct {
	Codigo    string `json:"codigo" validate:"omitempty,max=40"`
	IDUsuario int64  `json:"usuarioId" validate:"required"`
}

// VerificarCodigoRequest entrada para validar y consumir un código.
type VerificarCodigoRequest struct {
	Codigo    string `json:"codigo" validate:"required,max=40"`
	IDUsuario int64  `json:"usuarioId" validate:"required"`
}

// CodigoResponse salida de un código emitido.
type CodigoResponse struct {
	Codigo    string `json:"codigo"`
	IDUsuario int64  `json:"usuarioId"`
	Estado    string `json:"estado"`
}
