package venta

import (
	"context"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// VentaCreador envía la venta al backend.
type VentaCreador interface {
	CrearVenta(ctx context.Context, in dto.CrearVentaRequest) (*entity.Venta, error)
}

// CatalogoFuente expone el snapshot de productos más reciente y permite
// refrescarlo. La revalidación pre-envío usa el snapshot, no la red.
type CatalogoFuente interface {
	Productos() []entity.Producto
	Refrescar(ctx context.Context) error
}

// Sesion expone lo que el flujo de venta necesita saber del usuario activo.
type Sesion interface {
	EstaAutenticado() bool
	Usuario() *entity.Usuario
}
