package api

import (
	"context"

	"github.com/jhoicas/pos-ventas/internal/application/catalogo"
	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

var _ catalogo.API = (*Client)(nil)

// ListarProductos GET /producto. El backend lista precio como string
// numérico; la normalización a decimal ocurre en el DTO.
func (c *Client) ListarProductos(ctx context.Context) ([]entity.Producto, error) {
	var out []dto.ProductoDTO
	if err := c.get(ctx, "/producto", &out, "Error al cargar los productos"); err != nil {
		return nil, err
	}
	return dto.ProductosToEntity(out), nil
}

// ProductoPorID GET /producto/:id.
func (c *Client) ProductoPorID(ctx context.Context, id string) (*entity.Producto, error) {
	var out dto.ProductoDTO
	if err := c.get(ctx, "/producto/"+id, &out, "Error al obtener el producto"); err != nil {
		return nil, err
	}
	p := out.ToEntity()
	return &p, nil
}

// CrearProducto POST /producto.
func (c *Client) CrearProducto(ctx context.Context, in dto.CrearProductoRequest) (*entity.Producto, error) {
	var out dto.ProductoDTO
	if err := c.post(ctx, "/producto", in, &out, "Error al registrar producto"); err != nil {
		return nil, err
	}
	p := out.ToEntity()
	return &p, nil
}

// ActualizarProducto PATCH /producto/:id.
func (c *Client) ActualizarProducto(ctx context.Context, id string, in dto.CrearProductoRequest) (*entity.Producto, error) {
	var out dto.ProductoDTO
	if err := c.patch(ctx, "/producto/"+id, in, &out, "Error al actualizar producto"); err != nil {
		return nil, err
	}
	p := out.ToEntity()
	return &p, nil
}

// EliminarProducto DELETE /producto/:id.
func (c *Client) EliminarProducto(ctx context.Context, id string) error {
	return c.delete(ctx, "/producto/"+id, "Error al eliminar producto")
}

// ListarCategorias GET /categoria.
func (c *Client) ListarCategorias(ctx context.Context) ([]entity.Categoria, error) {
	var out []dto.CategoriaDTO
	if err := c.get(ctx, "/categoria", &out, "Error al cargar categorías"); err != nil {
		return nil, err
	}
	categorias := make([]entity.Categoria, 0, len(out))
	for _, d := range out {
		categorias = append(categorias, entity.Categoria{ID: d.IDCategoria, Nombre: d.Nombre})
	}
	return categorias, nil
}

// ListarMarcas GET /marca.
func (c *Client) ListarMarcas(ctx context.Context) ([]entity.Marca, error) {
	var out []dto.MarcaDTO
	if err := c.get(ctx, "/marca", &out, "Error al cargar marcas"); err != nil {
		return nil, err
	}
	marcas := make([]entity.Marca, 0, len(out))
	for _, d := range out {
		marcas = append(marcas, entity.Marca{ID: d.IDMarca, Nombre: d.Nombre})
	}
	return marcas, nil
}

// ListarProveedores GET /proveedor.
func (c *Client) ListarProveedores(ctx context.Context) ([]entity.Proveedor, error) {
	var out []dto.ProveedorDTO
	if err := c.get(ctx, "/proveedor", &out, "Error al cargar proveedores"); err != nil {
		return nil, err
	}
	proveedores := make([]entity.Proveedor, 0, len(out))
	for _, d := range out {
		proveedores = append(proveedores, entity.Proveedor{ID: d.IDProveedor, Nombre: d.Nombre})
	}
	return proveedores, nil
}

// CrearCategoria POST /categoria.
func (c *Client) CrearCategoria(ctx context.Context, nombre string) (*entity.Categoria, error) {
	var out dto.CategoriaDTO
	if err := c.post(ctx, "/categoria", dto.NombreRequest{Nombre: nombre}, &out, "Error al registrar categoría"); err != nil {
		return nil, err
	}
	return &entity.Categoria{ID: out.IDCategoria, Nombre: out.Nombre}, nil
}

// CrearMarca POST /marca.
func (c *Client) CrearMarca(ctx context.Context, nombre string) (*entity.Marca, error) {
	var out dto.MarcaDTO
	if err := c.post(ctx, "/marca", dto.NombreRequest{Nombre: nombre}, &out, "Error al registrar marca"); err != nil {
		return nil, err
	}
	return &entity.Marca{ID: out.IDMarca, Nombre: out.Nombre}, nil
}

// CrearProveedor POST /proveedor.
func (c *Client) CrearProveedor(ctx context.Context, nombre string) (*entity.Proveedor, error) {
	var out dto.ProveedorDTO
	if err := c.post(ctx, "/proveedor", dto.NombreRequest{Nombre: nombre}, &out, "Error al registrar proveedor"); err != nil {
		return nil, err
	}
	return &entity.Proveedor{ID: out.IDProveedor, Nombre: out.Nombre}, nil
}
