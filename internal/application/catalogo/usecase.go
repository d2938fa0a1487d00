// Package catalogo mantiene el snapshot en memoria de productos y tablas de
// referencia, y el CRUD de catálogo con gating por rol admin.
package catalogo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/pkg/texto"
)

// UseCase sostiene el snapshot de productos más reciente. El snapshot solo
// cambia por Cargar/Refrescar; las mutaciones de catálogo no lo tocan de
// forma implícita.
type UseCase struct {
	api    API
	sesion Sesion

	productos []entity.Producto
}

// NewUseCase construye el caso de uso con snapshot vacío.
func NewUseCase(api API, sesion Sesion) *UseCase {
	return &UseCase{api: api, sesion: sesion}
}

// Cargar trae el catálogo completo y lo deja como snapshot vigente.
func (uc *UseCase) Cargar(ctx context.Context) error {
	productos, err := uc.api.ListarProductos(ctx)
	if err != nil {
		return err
	}
	uc.productos = productos
	return nil
}

// Refrescar es el re-fetch explícito post-venta (o a pedido del usuario).
func (uc *UseCase) Refrescar(ctx context.Context) error {
	return uc.Cargar(ctx)
}

// Productos devuelve el snapshot vigente (puede estar vacío si nunca se cargó).
func (uc *UseCase) Productos() []entity.Producto {
	return uc.productos
}

// BuscarPorID busca en el snapshot, sin ir a la red.
func (uc *UseCase) BuscarPorID(id string) (entity.Producto, bool) {
	for _, p := range uc.productos {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Producto{}, false
}

// FiltroStock criterios de la consulta de stock. Los campos vacíos no filtran.
type FiltroStock struct {
	Nombre    string
	Categoria string
	Marca     string
	Proveedor string
	PrecioMin decimal.Decimal
	PrecioMax decimal.Decimal
}

// FiltrarStock aplica el filtro sobre el snapshot, insensible a tildes y
// mayúsculas en los campos de texto.
func (uc *UseCase) FiltrarStock(f FiltroStock) []entity.Producto {
	out := make([]entity.Producto, 0, len(uc.productos))
	for _, p := range uc.productos {
		if f.Nombre != "" && !texto.Contiene(p.Nombre, f.Nombre) {
			continue
		}
		if f.Categoria != "" && (p.Categoria == nil || !texto.Contiene(p.Categoria.Nombre, f.Categoria)) {
			continue
		}
		if f.Marca != "" && (p.Marca == nil || !texto.Contiene(p.Marca.Nombre, f.Marca)) {
			continue
		}
		if f.Proveedor != "" && (p.Proveedor == nil || !texto.Contiene(p.Proveedor.Nombre, f.Proveedor)) {
			continue
		}
		if !f.PrecioMin.IsZero() && p.Precio.LessThan(f.PrecioMin) {
			continue
		}
		if !f.PrecioMax.IsZero() && p.Precio.GreaterThan(f.PrecioMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ── Mutaciones (solo admin) ───────────────────────────────────────────────────

func (uc *UseCase) requiereAdmin() error {
	if !uc.sesion.EsAdmin() {
		return domain.ErrProhibido
	}
	return nil
}

// CrearProducto alta de producto. No refresca el snapshot: el refresh es
// responsabilidad explícita del llamador (Refrescar).
func (uc *UseCase) CrearProducto(ctx context.Context, in dto.CrearProductoRequest) (*entity.Producto, error) {
	if err := uc.requiereAdmin(); err != nil {
		return nil, err
	}
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrValidacion)
	}
	if in.Precio.IsNegative() || in.Stock < 0 {
		return nil, fmt.Errorf("%w: precio y stock no pueden ser negativos", domain.ErrValidacion)
	}
	return uc.api.CrearProducto(ctx, in)
}

// ActualizarProducto edición parcial de producto.
func (uc *UseCase) ActualizarProducto(ctx context.Context, id string, in dto.CrearProductoRequest) (*entity.Producto, error) {
	if err := uc.requiereAdmin(); err != nil {
		return nil, err
	}
	if in.Precio.IsNegative() || in.Stock < 0 {
		return nil, fmt.Errorf("%w: precio y stock no pueden ser negativos", domain.ErrValidacion)
	}
	return uc.api.ActualizarProducto(ctx, id, in)
}

// EliminarProducto baja de producto.
func (uc *UseCase) EliminarProducto(ctx context.Context, id string) error {
	if err := uc.requiereAdmin(); err != nil {
		return err
	}
	return uc.api.EliminarProducto(ctx, id)
}

// ── Tablas de referencia ──────────────────────────────────────────────────────

// Categorias lista las categorías (lectura, cualquier rol).
func (uc *UseCase) Categorias(ctx context.Context) ([]entity.Categoria, error) {
	return uc.api.ListarCategorias(ctx)
}

// Marcas lista las marcas.
func (uc *UseCase) Marcas(ctx context.Context) ([]entity.Marca, error) {
	return uc.api.ListarMarcas(ctx)
}

// Proveedores lista los proveedores.
func (uc *UseCase) Proveedores(ctx context.Context) ([]entity.Proveedor, error) {
	return uc.api.ListarProveedores(ctx)
}

// CrearCategoria alta de categoría (solo admin).
func (uc *UseCase) CrearCategoria(ctx context.Context, nombre string) (*entity.Categoria, error) {
	if err := uc.requiereAdmin(); err != nil {
		return nil, err
	}
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrValidacion)
	}
	return uc.api.CrearCategoria(ctx, nombre)
}

// CrearMarca alta de marca (solo admin).
func (uc *UseCase) CrearMarca(ctx context.Context, nombre string) (*entity.Marca, error) {
	if err := uc.requiereAdmin(); err != nil {
		return nil, err
	}
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrValidacion)
	}
	return uc.api.CrearMarca(ctx, nombre)
}

// CrearProveedor alta de proveedor (solo admin).
func (uc *UseCase) CrearProveedor(ctx context.Context, nombre string) (*entity.Proveedor, error) {
	if err := uc.requiereAdmin(); err != nil {
		return nil, err
	}
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrValidacion)
	}
	return uc.api.CrearProveedor(ctx, nombre)
}
