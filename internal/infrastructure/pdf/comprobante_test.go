package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

func ventaDemo() *entity.Venta {
	return &entity.Venta{
		ID:          "v1",
		PrecioTotal: decimal.NewFromFloat(7651.50),
		CreadaEn:    time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Cliente:     &entity.Cliente{Nombre: "Juan Pérez", DNI: "30111222", Telefono: "11-5555-0001"},
		Detalles: []entity.DetalleVenta{
			{NombreProducto: "Agua mineral 1.5L", Cantidad: 3, PrecioUnitario: decimal.NewFromFloat(850.50), PrecioSubTotal: decimal.NewFromFloat(2551.50)},
			{NombreProducto: "Yerba mate 500g", Cantidad: 1, PrecioUnitario: decimal.NewFromFloat(3400.25), PrecioSubTotal: decimal.NewFromFloat(3400.25)},
		},
	}
}

func TestGenerar_ProduceUnPDF(t *testing.T) {
	g := NewComprobanteGenerator("Almacén Demo")

	contenido, err := g.Generar(ventaDemo())
	require.NoError(t, err)
	require.NotEmpty(t, contenido)
	assert.Equal(t, "%PDF", string(contenido[:4]), "el contenido debe ser un PDF válido")
}

// Venta sin cliente ni detalles: el comprobante igual se emite, con "-" en
// los campos ausentes.
func TestGenerar_VentaMinima(t *testing.T) {
	g := NewComprobanteGenerator("")

	contenido, err := g.Generar(&entity.Venta{ID: "v2", PrecioTotal: decimal.Zero})
	require.NoError(t, err)
	assert.NotEmpty(t, contenido)
}
