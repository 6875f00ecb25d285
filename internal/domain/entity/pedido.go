package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido solicitud de material de construcción ligada a un proyecto.
// CodigoPedido es la clave de negocio (única). Las cinco referencias a catálogo
// deben resolver a filas existentes antes de insertar (FK en la base de datos).
type Pedido struct {
	CodigoPedido    string
	Fecha           time.Time
	Hora            string
	Nivel           int
	MetrosCuadrados decimal.Decimal
	MetrosLineales  decimal.Decimal
	Kilogramos      decimal.Decimal
	Frisos          decimal.Decimal
	Chatas          decimal.Decimal
	CodigoPlano     string
	Planta          string
	IDProyectoCUP   string
	IDProducto      int64
	IDUsuario       int64
	IDTransporte    int64
	IDOficina       int64
}

// DetallePedido proyección enriquecida de un pedido: une proyecto, producto,
// usuario→persona (solicitante), transporte y oficina técnica→persona (especialista).
type DetallePedido struct {
	Pedido
	NombreProyecto    string
	SUF               string
	NombreProducto    string
	Solicitante       string
	CorreoSolicitante string
	EmpresaTransporte string
	PlacaTransporte   string
	Especialidad      string
	Especialista      string
}
