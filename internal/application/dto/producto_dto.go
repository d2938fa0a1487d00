package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// ProductoDTO producto tal como viaja por el wire. El backend lista precio
// como string numérico y stock a veces como número: decimal.Decimal y FlexInt
// absorben ambas formas al deserializar.
type ProductoDTO struct {
	IDProducto  string          `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       FlexInt         `json:"stock"`
	Imagen      string          `json:"imagen,omitempty"`
	Categoria   *CategoriaDTO   `json:"categoria,omitempty"`
	Marca       *MarcaDTO       `json:"marca,omitempty"`
	Proveedor   *ProveedorDTO   `json:"proveedor,omitempty"`
}

// CategoriaDTO tabla de referencia.
type CategoriaDTO struct {
	IDCategoria string `json:"id_categoria"`
	Nombre      string `json:"nombre"`
}

// MarcaDTO tabla de referencia.
type MarcaDTO struct {
	IDMarca string `json:"id_marca"`
	Nombre  string `json:"nombre"`
}

// ProveedorDTO tabla de referencia.
type ProveedorDTO struct {
	IDProveedor string `json:"id_proveedor"`
	Nombre      string `json:"nombre"`
}

// CrearProductoRequest alta/edición de producto (solo admin).
type CrearProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock" validate:"min=0"`
	Imagen      string          `json:"imagen,omitempty"`
	IDCategoria string          `json:"id_categoria,omitempty"`
	IDMarca     string          `json:"id_marca,omitempty"`
	IDProveedor string          `json:"id_proveedor,omitempty"`
}

// NombreRequest alta/edición de tablas de referencia (categoría, marca, proveedor).
type NombreRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// ToEntity normaliza el DTO al modelo de dominio.
func (p ProductoDTO) ToEntity() entity.Producto {
	out := entity.Producto{
		ID:          p.IDProducto,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock.Int(),
		Imagen:      p.Imagen,
	}
	if p.Categoria != nil {
		out.Categoria = &entity.Categoria{ID: p.Categoria.IDCategoria, Nombre: p.Categoria.Nombre}
	}
	if p.Marca != nil {
		out.Marca = &entity.Marca{ID: p.Marca.IDMarca, Nombre: p.Marca.Nombre}
	}
	if p.Proveedor != nil {
		out.Proveedor = &entity.Proveedor{ID: p.Proveedor.IDProveedor, Nombre: p.Proveedor.Nombre}
	}
	return out
}

// ProductoFromEntity arma el DTO wire desde el dominio. El precio sale como
// string numérico (serialización por defecto de decimal), igual que el
// backend de producción.
func ProductoFromEntity(p entity.Producto) ProductoDTO {
	out := ProductoDTO{
		IDProducto:  p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       FlexInt(p.Stock),
		Imagen:      p.Imagen,
	}
	if p.Categoria != nil {
		out.Categoria = &CategoriaDTO{IDCategoria: p.Categoria.ID, Nombre: p.Categoria.Nombre}
	}
	if p.Marca != nil {
		out.Marca = &MarcaDTO{IDMarca: p.Marca.ID, Nombre: p.Marca.Nombre}
	}
	if p.Proveedor != nil {
		out.Proveedor = &ProveedorDTO{IDProveedor: p.Proveedor.ID, Nombre: p.Proveedor.Nombre}
	}
	return out
}

// ProductosToEntity normaliza una lista completa.
func ProductosToEntity(dtos []ProductoDTO) []entity.Producto {
	out := make([]entity.Producto, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ToEntity())
	}
	return out
}
