// Package pdf genera el comprobante de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del comercio  │  N° Venta + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + DNI + Teléfono                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ComprobanteGenerator genera el comprobante de una venta usando Maroto v2.
type ComprobanteGenerator struct {
	comercio string // nombre que encabeza el comprobante
}

// NewComprobanteGenerator construye el generador.
func NewComprobanteGenerator(comercio string) *ComprobanteGenerator {
	if comercio == "" {
		comercio = "pos-ventas"
	}
	return &ComprobanteGenerator{comercio: comercio}
}

// Generar genera el PDF del comprobante y devuelve sus bytes.
func (g *ComprobanteGenerator) Generar(venta *entity.Venta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta", true).
		WithAuthor(g.comercio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(venta.Cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(venta.Detalles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(venta))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: comercio (izq) y N° de venta + fecha (der).
func (g *ComprobanteGenerator) headerRow(venta *entity.Venta) core.Row {
	fecha := ""
	if !venta.CreadaEn.IsZero() {
		fecha = venta.CreadaEn.Format("02/01/2006 15:04")
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.comercio, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+venta.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
			text.New(fecha, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del cliente de la venta.
func clienteRow(cliente *entity.Cliente) core.Row {
	nombre, dni, tel := "-", "-", "-"
	if cliente != nil {
		nombre, dni, tel = cliente.Nombre, cliente.DNI, cliente.Telefono
	}
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Cliente: "+nombre, props.Text{Size: 9, Top: 1}),
		),
		col.New(3).Add(
			text.New("DNI: "+dni, props.Text{Size: 9, Top: 1, Color: colorGray}),
		),
		col.New(3).Add(
			text.New("Tel: "+tel, props.Text{Size: 9, Top: 1, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(2).Add(text.New("Cant.", estilo)),
		col.New(6).Add(text.New("Producto", estilo)),
		col.New(2).Add(text.New("P. Unit", withAlign(estilo, align.Right))),
		col.New(2).Add(text.New("Subtotal", withAlign(estilo, align.Right))),
	)
}

func tableDetailRows(detalles []entity.DetalleVenta) []core.Row {
	rows := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", d.Cantidad), props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New(d.NombreProducto, props.Text{Size: 9, Top: 1})),
			col.New(2).Add(text.New(d.PrecioUnitario.StringFixed(2), props.Text{Size: 9, Top: 1, Align: align.Right})),
			col.New(2).Add(text.New(d.PrecioSubTotal.StringFixed(2), props.Text{Size: 9, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func totalRow(venta *entity.Venta) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(
			text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2}),
		),
		col.New(2).Add(
			text.New(venta.PrecioTotal.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

func withAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
