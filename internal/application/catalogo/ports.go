package catalogo

import (
	"context"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// API operaciones del catálogo contra el backend. Sin reintentos ni caché:
// el único estado local es el snapshot en memoria del use case.
type API interface {
	ListarProductos(ctx context.Context) ([]entity.Producto, error)
	ProductoPorID(ctx context.Context, id string) (*entity.Producto, error)
	CrearProducto(ctx context.Context, in dto.CrearProductoRequest) (*entity.Producto, error)
	ActualizarProducto(ctx context.Context, id string, in dto.CrearProductoRequest) (*entity.Producto, error)
	EliminarProducto(ctx context.Context, id string) error

	ListarCategorias(ctx context.Context) ([]entity.Categoria, error)
	ListarMarcas(ctx context.Context) ([]entity.Marca, error)
	ListarProveedores(ctx context.Context) ([]entity.Proveedor, error)
	CrearCategoria(ctx context.Context, nombre string) (*entity.Categoria, error)
	CrearMarca(ctx context.Context, nombre string) (*entity.Marca, error)
	CrearProveedor(ctx context.Context, nombre string) (*entity.Proveedor, error)
}

// Sesion lo que el catálogo necesita para el gating por rol.
type Sesion interface {
	EsAdmin() bool
}
