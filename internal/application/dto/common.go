package dto

// ErrorResponse cuerpo de error HTTP con código estable legible por máquina.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensajeResponse respuesta simple con mensaje legible.
type MensajeResponse struct {
	Message string `json:"message"`
}
