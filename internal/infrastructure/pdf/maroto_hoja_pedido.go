// Package pdf implementa la generación de la hoja de pedido imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Código de pedido  │  Fecha + Hora                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROYECTO: nombre + SUF + código CUP                         │
//	│  SOLICITANTE / ESPECIALISTA: contactos                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: medidas (m², ml, kg, frisos, chatas)                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: plano, planta, nivel y transporte asignado          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/construdata/pedidos-api/internal/application/usecase"
	"github.com/construdata/pedidos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoHojaPedido implementa usecase.HojaPedidoGenerator usando Maroto v2.
type MarotoHojaPedido struct{}

// NewMarotoHojaPedido construye el generador.
func NewMarotoHojaPedido() *MarotoHojaPedido { return &MarotoHojaPedido{} }

var _ usecase.HojaPedidoGenerator = (*MarotoHojaPedido)(nil)

// GenerateHojaPedido genera el PDF de un pedido y devuelve sus bytes.
func (g *MarotoHojaPedido) GenerateHojaPedido(_ context.Context, d *entity.DetallePedido) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de Pedido "+d.CodigoPedido, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(proyectoRow(d))
	m.AddRows(contactosRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(medidasHeaderRow())
	m.AddRows(medidasValueRow(d))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(d))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de pedido: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: código de pedido (izq) y fecha + hora (der).
func headerRow(d *entity.DetallePedido) core.Row {
	fecha := d.Fecha.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("HOJA DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(d.CodigoPedido, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
			text.New("Hora: "+d.Hora, props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// proyectoRow: datos del proyecto de obra.
func proyectoRow(d *entity.DetallePedido) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROYECTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (SUF %s)   |   CUP: %s",
				d.NombreProyecto, d.SUF, d.IDProyectoCUP,
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// contactosRow: solicitante y especialista de la oficina técnica.
func contactosRow(d *entity.DetallePedido) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("SOLICITANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(d.Solicitante, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New(d.CorreoSolicitante, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("OFICINA TÉCNICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(d.Especialista, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New(d.Especialidad, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// medidasHeaderRow: cabecera de la tabla de medidas.
func medidasHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4),
		h("m²", 2),
		h("m lineales", 2),
		h("kg", 2),
		h("Frisos", 1),
		h("Chatas", 1),
	)
}

// medidasValueRow: valores de las medidas del pedido.
func medidasValueRow(d *entity.DetallePedido) core.Row {
	v := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(7).Add(
		v(d.NombreProducto, 4, align.Left),
		v(d.MetrosCuadrados.StringFixed(2), 2, align.Center),
		v(d.MetrosLineales.StringFixed(2), 2, align.Center),
		v(d.Kilogramos.StringFixed(2), 2, align.Center),
		v(d.Frisos.StringFixed(2), 1, align.Center),
		v(d.Chatas.StringFixed(2), 1, align.Center),
	)
}

// footerRow: plano, ubicación y transporte asignado.
func footerRow(d *entity.DetallePedido) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Plano: %s   |   Planta: %s   |   Nivel: %d",
				d.CodigoPlano, d.Planta, d.Nivel,
			), props.Text{Size: 9, Top: 2}),
			text.New(fmt.Sprintf("Transporte: %s (placa %s)",
				d.EmpresaTransporte, d.PlacaTransporte,
			), props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
	)
}
