package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta representa la cabecera de una venta registrada en el backend.
type Venta struct {
	ID          string
	IDCliente   string
	Cliente     *Cliente
	PrecioTotal decimal.Decimal
	CreadaEn    time.Time
	Detalles    []DetalleVenta
}

// DetalleVenta representa una línea de una venta.
type DetalleVenta struct {
	ID             string
	IDProducto     string
	NombreProducto string // denormalizado por el backend
	Cantidad       int
	PrecioUnitario decimal.Decimal
	PrecioSubTotal decimal.Decimal
}
