package dto

import "github.com/shopspring/decimal"

// RegistrarPedidoRequest entrada para crear un pedido. Los 16 campos son obligatorios.
// Los numéricos son punteros para distinguir "ausente" de cero al validar.
type RegistrarPedidoRequest struct {
	CodigoPedido    string           `json:"codigo_pedido" validate:"required"`
	Fecha           string           `json:"fecha" validate:"required"` // YYYY-MM-DD
	Hora            string           `json:"hora" validate:"required"`  // HH:MM[:SS]
	Nivel           *int             `json:"nivel" validate:"required"`
	MetrosCuadrados *decimal.Decimal `json:"metros_cuadrados" validate:"required"`
	MetrosLineales  *decimal.Decimal `json:"metros_lineales" validate:"required"`
	Kilogramos      *decimal.Decimal `json:"kilogramos" validate:"required"`
	Frisos          *decimal.Decimal `json:"frisos" validate:"required"`
	Chatas          *decimal.Decimal `json:"chatas" validate:"required"`
	CodigoPlano     string           `json:"codigo_plano" validate:"required"`
	Planta          string           `json:"planta" validate:"required"`
	IDProyectoCUP   string           `json:"id_proyecto_cup" validate:"required"`
	IDProducto      *int64           `json:"id_producto" validate:"required"`
	IDUsuario       *int64           `json:"id_usuario" validate:"required"`
	IDTransporte    *int64           `json:"id_transporte" validate:"required"`
	IDOficina       *int64           `json:"id_oficina" validate:"required"`
}

// ActualizarPedidoRequest entrada para la actualización parcial de un pedido.
//
// Asimetría deliberada del producto: los escalares ausentes llegan como
// cero/vacío y sobreescriben; las FK ausentes (nil) conservan el valor actual.
type ActualizarPedidoRequest struct {
	Fecha           string          `json:"fecha"`
	Hora            string          `json:"hora"`
	Nivel           int             `json:"nivel"`
	MetrosCuadrados decimal.Decimal `json:"metros_cuadrados"`
	MetrosLineales  decimal.Decimal `json:"metros_lineales"`
	Kilogramos      decimal.Decimal `json:"kilogramos"`
	Frisos          decimal.Decimal `json:"frisos"`
	Chatas          decimal.Decimal `json:"chatas"`
	CodigoPlano     string          `json:"codigo_plano"`
	Planta          string          `json:"planta"`
	IDProyectoCUP   *string         `json:"id_proyecto_cup"`
	IDProducto      *int64          `json:"id_producto"`
	IDUsuario       *int64          `json:"id_usuario"`
	IDTransporte    *int64          `json:"id_transporte"`
	IDOficina       *int64          `json:"id_oficina"`
}

// PedidoResponse salida de un pedido persistido.
type PedidoResponse struct {
	CodigoPedido    string          `json:"codigo_pedido"`
	Fecha           string          `json:"fecha"`
	Hora            string          `json:"hora"`
	Nivel           int             `json:"nivel"`
	MetrosCuadrados decimal.Decimal `json:"metros_cuadrados"`
	MetrosLineales  decimal.Decimal `json:"metros_lineales"`
	Kilogramos      decimal.Decimal `json:"kilogramos"`
	Frisos          decimal.Decimal `json:"frisos"`
	Chatas          decimal.Decimal `json:"chatas"`
	CodigoPlano     string          `json:"codigo_plano"`
	Planta          string          `json:"planta"`
	IDProyectoCUP   string          `json:"id_proyecto_cup"`
	IDProducto      int64           `json:"id_producto"`
	IDUsuario       int64           `json:"id_usuario"`
	IDTransporte    int64           `json:"id_transporte"`
	IDOficina       int64           `json:"id_oficina"`
}

// DetallePedidoResponse proyección enriquecida para el listado de pedidos.
type DetallePedidoResponse struct {
	PedidoResponse
	NombreProyecto    string `json:"nombre_proyecto"`
	SUF               string `json:"suf"`
	NombreProducto    string `json:"nombre_producto"`
	Solicitante       string `json:"solicitante"`
	CorreoSolicitante string `json:"correo_solicitante"`
	EmpresaTransporte string `json:"empresa_transporte"`
	PlacaTransporte   string `json:"placa_transporte"`
	Especialidad      string `json:"especialidad"`
	Especialista      string `json:"especialista"`
}
