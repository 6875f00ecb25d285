package dto

// RegistrarEnvioRequest entrada para registrar un despacho de un pedido.
type RegistrarEnvioRequest struct {
	FechaEnvio   string `json:"fecha_envio" validate:"required"` // YYYY-MM-DD
	Observacion  string `json:"observacion" validate:"omitempty,max=255"`
	Valorizado   bool   `json:"valorizado"`
	Facturado    bool   `json:"facturado"`
	Pagado       bool   `json:"pagado"`
	CodigoPedido string `json:"codigo_pedido" validate:"required"`
}

// EnvioResponse salida de un envío.
type EnvioResponse struct {
	IDEnvio      int64  `json:"id_envio"`
	FechaEnvio   string `json:"fecha_envio"`
	Observacion  string `json:"observacion"`
	Valorizado   bool   `json:"valorizado"`
	Facturado    bool   `json:"facturado"`
	Pagado       bool   `json:"pagado"`
	CodigoPedido string `json:"codigo_pedido"`
}
