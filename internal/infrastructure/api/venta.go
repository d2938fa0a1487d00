package api

import (
	"context"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	appventa "github.com/jhoicas/pos-ventas/internal/application/venta"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

var _ appventa.VentaCreador = (*Client)(nil)

// CrearVenta POST /venta. El payload sale del carrito ya validado; el error
// del backend (p.ej. stock agotado por otra caja) se propaga textual.
func (c *Client) CrearVenta(ctx context.Context, in dto.CrearVentaRequest) (*entity.Venta, error) {
	var out dto.VentaDTO
	if err := c.post(ctx, "/venta", in, &out, "Error al registrar la venta"); err != nil {
		return nil, err
	}
	v := out.ToEntity()
	return &v, nil
}

// ListarVentas GET /venta, con normalización de precios anidados.
func (c *Client) ListarVentas(ctx context.Context) ([]entity.Venta, error) {
	var out []dto.VentaDTO
	if err := c.get(ctx, "/venta", &out, "Error al cargar las ventas"); err != nil {
		return nil, err
	}
	return dto.VentasToEntity(out), nil
}

// VentaPorID GET /venta/:id.
func (c *Client) VentaPorID(ctx context.Context, id string) (*entity.Venta, error) {
	var out dto.VentaDTO
	if err := c.get(ctx, "/venta/"+id, &out, "Error al obtener la venta"); err != nil {
		return nil, err
	}
	v := out.ToEntity()
	return &v, nil
}

// EliminarVenta DELETE /venta/:id.
func (c *Client) EliminarVenta(ctx context.Context, id string) error {
	return c.delete(ctx, "/venta/"+id, "Error al eliminar la venta")
}
