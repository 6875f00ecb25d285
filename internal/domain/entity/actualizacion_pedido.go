package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActualizacionPedido cambios para la actualización parcial de un pedido.
//
// La asimetría es deliberada y replica el comportamiento del producto:
// los campos escalares se sobreescriben siempre con el valor recibido (ausente =
// cero/vacío), mientras que las cinco referencias a catálogo son punteros y un
// nil significa "conservar el valor actual" (COALESCE en el UPDATE).
type ActualizacionPedido struct {
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
	IDProyectoCUP   *string
	IDProducto      *int64
	IDUsuario       *int64
	IDTransporte    *int64
	IDOficina       *int64
}
