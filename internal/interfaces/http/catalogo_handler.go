package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/memoria"
)

// CatalogoHandler CRUD de producto, categoría, marca y proveedor del stub.
type CatalogoHandler struct {
	repo *memoria.CatalogoRepo
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(repo *memoria.CatalogoRepo) *CatalogoHandler {
	return &CatalogoHandler{repo: repo}
}

// ListarProductos GET /producto.
func (h *CatalogoHandler) ListarProductos(c *fiber.Ctx) error {
	productos := h.repo.ListarProductos()
	out := make([]dto.ProductoDTO, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoFromEntity(p))
	}
	return c.JSON(out)
}

// ProductoPorID GET /producto/:id.
func (h *CatalogoHandler) ProductoPorID(c *fiber.Ctx) error {
	p := h.repo.ProductoPorID(c.Params("id"))
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "producto no encontrado"})
	}
	return c.JSON(dto.ProductoFromEntity(*p))
}

// aEntidadProducto resuelve las referencias de catálogo del request.
func (h *CatalogoHandler) aEntidadProducto(in dto.CrearProductoRequest) entity.Producto {
	p := entity.Producto{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Stock:       in.Stock,
		Imagen:      in.Imagen,
	}
	if in.IDCategoria != "" {
		for _, cat := range h.repo.ListarCategorias() {
			if cat.ID == in.IDCategoria {
				copia := cat
				p.Categoria = &copia
			}
		}
	}
	if in.IDMarca != "" {
		for _, m := range h.repo.ListarMarcas() {
			if m.ID == in.IDMarca {
				copia := m
				p.Marca = &copia
			}
		}
	}
	if in.IDProveedor != "" {
		for _, prov := range h.repo.ListarProveedores() {
			if prov.ID == in.IDProveedor {
				copia := prov
				p.Proveedor = &copia
			}
		}
	}
	return p
}

// CrearProducto POST /producto (solo admin).
func (h *CatalogoHandler) CrearProducto(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "nombre es requerido"})
	}
	if in.Precio.IsNegative() || in.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "precio y stock no pueden ser negativos"})
	}
	creado := h.repo.CrearProducto(h.aEntidadProducto(in))
	return c.Status(fiber.StatusCreated).JSON(dto.ProductoFromEntity(creado))
}

// ActualizarProducto PATCH /producto/:id (solo admin).
func (h *CatalogoHandler) ActualizarProducto(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	actualizado, err := h.repo.ActualizarProducto(c.Params("id"), h.aEntidadProducto(in))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "producto no encontrado"})
	}
	return c.JSON(dto.ProductoFromEntity(*actualizado))
}

// EliminarProducto DELETE /producto/:id (solo admin).
func (h *CatalogoHandler) EliminarProducto(c *fiber.Ctx) error {
	if err := h.repo.EliminarProducto(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "producto no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Tablas de referencia ──────────────────────────────────────────────────────

// ListarCategorias GET /categoria.
func (h *CatalogoHandler) ListarCategorias(c *fiber.Ctx) error {
	categorias := h.repo.ListarCategorias()
	out := make([]dto.CategoriaDTO, 0, len(categorias))
	for _, cat := range categorias {
		out = append(out, dto.CategoriaDTO{IDCategoria: cat.ID, Nombre: cat.Nombre})
	}
	return c.JSON(out)
}

// CrearCategoria POST /categoria (solo admin).
func (h *CatalogoHandler) CrearCategoria(c *fiber.Ctx) error {
	var in dto.NombreRequest
	if err := c.BodyParser(&in); err != nil || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "nombre es requerido"})
	}
	cat := h.repo.CrearCategoria(in.Nombre)
	return c.Status(fiber.StatusCreated).JSON(dto.CategoriaDTO{IDCategoria: cat.ID, Nombre: cat.Nombre})
}

// ListarMarcas GET /marca.
func (h *CatalogoHandler) ListarMarcas(c *fiber.Ctx) error {
	marcas := h.repo.ListarMarcas()
	out := make([]dto.MarcaDTO, 0, len(marcas))
	for _, m := range marcas {
		out = append(out, dto.MarcaDTO{IDMarca: m.ID, Nombre: m.Nombre})
	}
	return c.JSON(out)
}

// CrearMarca POST /marca (solo admin).
func (h *CatalogoHandler) CrearMarca(c *fiber.Ctx) error {
	var in dto.NombreRequest
	if err := c.BodyParser(&in); err != nil || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "nombre es requerido"})
	}
	m := h.repo.CrearMarca(in.Nombre)
	return c.Status(fiber.StatusCreated).JSON(dto.MarcaDTO{IDMarca: m.ID, Nombre: m.Nombre})
}

// ListarProveedores GET /proveedor.
func (h *CatalogoHandler) ListarProveedores(c *fiber.Ctx) error {
	proveedores := h.repo.ListarProveedores()
	out := make([]dto.ProveedorDTO, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, dto.ProveedorDTO{IDProveedor: p.ID, Nombre: p.Nombre})
	}
	return c.JSON(out)
}

// CrearProveedor POST /proveedor (solo admin).
func (h *CatalogoHandler) CrearProveedor(c *fiber.Ctx) error {
	var in dto.NombreRequest
	if err := c.BodyParser(&in); err != nil || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "nombre es requerido"})
	}
	p := h.repo.CrearProveedor(in.Nombre)
	return c.Status(fiber.StatusCreated).JSON(dto.ProveedorDTO{IDProveedor: p.ID, Nombre: p.Nombre})
}
