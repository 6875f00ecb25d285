package entity

import "time"

// Envio registro de despacho que referencia a un Pedido por su código.
type Envio struct {
	ID           int64
	FechaEnvio   time.Time
	Observacion  string
	Valorizado   bool
	Facturado    bool
	Pagado       bool
	CodigoPedido string
}
