package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// VentaCabecera cabecera del payload de creación de venta.
type VentaCabecera struct {
	IDCliente   string          `json:"id_cliente"`
	PrecioTotal decimal.Decimal `json:"precioTotal"`
}

// DetalleVentaRequest línea del payload de creación de venta. IDVenta viaja
// vacío: el backend lo completa al persistir la cabecera.
type DetalleVentaRequest struct {
	PrecioSubTotal decimal.Decimal `json:"precioSubTotal"`
	Cantidad       int             `json:"cantidad"`
	IDProducto     string          `json:"id_producto"`
	IDVenta        string          `json:"id_venta"`
}

// CrearVentaRequest payload de POST /venta. Inmutable una vez enviado.
type CrearVentaRequest struct {
	Venta    VentaCabecera         `json:"venta"`
	Detalles []DetalleVentaRequest `json:"detalles"`
}

// ProductoVentaDTO producto denormalizado dentro de un detalle de venta.
type ProductoVentaDTO struct {
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

// DetalleVentaDTO línea de venta tal como la devuelve el backend.
type DetalleVentaDTO struct {
	IDDetalle      string            `json:"id_detalle"`
	Cantidad       FlexInt           `json:"cantidad"`
	PrecioSubTotal decimal.Decimal   `json:"precioSubTotal"`
	IDProducto     string            `json:"id_producto"`
	IDVenta        string            `json:"id_venta,omitempty"`
	Producto       *ProductoVentaDTO `json:"producto,omitempty"`
}

// VentaDTO venta completa tal como la devuelve el backend.
type VentaDTO struct {
	IDVenta     string            `json:"id_venta"`
	PrecioTotal decimal.Decimal   `json:"precioTotal"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	IDCliente   string            `json:"id_cliente"`
	Cliente     *ClienteDTO       `json:"cliente,omitempty"`
	Detalles    []DetalleVentaDTO `json:"detalles,omitempty"`
}

// ToEntity normaliza la venta al modelo de dominio (precios ya numéricos).
func (v VentaDTO) ToEntity() entity.Venta {
	out := entity.Venta{
		ID:          v.IDVenta,
		IDCliente:   v.IDCliente,
		PrecioTotal: v.PrecioTotal,
	}
	if v.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, v.CreatedAt); err == nil {
			out.CreadaEn = t
		}
	}
	if v.Cliente != nil {
		c := v.Cliente.ToEntity()
		out.Cliente = &c
	}
	for _, d := range v.Detalles {
		det := entity.DetalleVenta{
			ID:             d.IDDetalle,
			IDProducto:     d.IDProducto,
			Cantidad:       d.Cantidad.Int(),
			PrecioSubTotal: d.PrecioSubTotal,
		}
		if d.Producto != nil {
			det.NombreProducto = d.Producto.Nombre
			det.PrecioUnitario = d.Producto.Precio
		}
		out.Detalles = append(out.Detalles, det)
	}
	return out
}

// VentaFromEntity arma el DTO wire desde el dominio.
func VentaFromEntity(v entity.Venta) VentaDTO {
	out := VentaDTO{
		IDVenta:     v.ID,
		PrecioTotal: v.PrecioTotal,
		IDCliente:   v.IDCliente,
	}
	if !v.CreadaEn.IsZero() {
		out.CreatedAt = v.CreadaEn.Format(time.RFC3339)
	}
	if v.Cliente != nil {
		c := ClienteFromEntity(*v.Cliente)
		out.Cliente = &c
	}
	for _, d := range v.Detalles {
		det := DetalleVentaDTO{
			IDDetalle:      d.ID,
			Cantidad:       FlexInt(d.Cantidad),
			PrecioSubTotal: d.PrecioSubTotal,
			IDProducto:     d.IDProducto,
			IDVenta:        v.ID,
		}
		if d.NombreProducto != "" {
			det.Producto = &ProductoVentaDTO{Nombre: d.NombreProducto, Precio: d.PrecioUnitario}
		}
		out.Detalles = append(out.Detalles, det)
	}
	return out
}

// VentasToEntity normaliza una lista completa.
func VentasToEntity(dtos []VentaDTO) []entity.Venta {
	out := make([]entity.Venta, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ToEntity())
	}
	return out
}
