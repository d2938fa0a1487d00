package memoria

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// CatalogoRepo repositorio en memoria de productos y tablas de referencia.
type CatalogoRepo struct {
	mu          sync.RWMutex
	productos   []*entity.Producto
	categorias  []*entity.Categoria
	marcas      []*entity.Marca
	proveedores []*entity.Proveedor
}

// NewCatalogoRepo construye el repositorio vacío.
func NewCatalogoRepo() *CatalogoRepo {
	return &CatalogoRepo{}
}

// ListarProductos devuelve copias de todos los productos.
func (r *CatalogoRepo) ListarProductos() []entity.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out
}

// ProductoPorID devuelve una copia del producto; nil si no existe.
func (r *CatalogoRepo) ProductoPorID(id string) *entity.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.productos {
		if p.ID == id {
			copia := *p
			return &copia
		}
	}
	return nil
}

// CrearProducto da de alta un producto con ID nuevo.
func (r *CatalogoRepo) CrearProducto(p entity.Producto) entity.Producto {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.New().String()
	copia := p
	r.productos = append(r.productos, &copia)
	return p
}

// ActualizarProducto reemplaza los campos editables; ErrNotFound si no existe.
func (r *CatalogoRepo) ActualizarProducto(id string, p entity.Producto) (*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, actual := range r.productos {
		if actual.ID == id {
			actual.Nombre = p.Nombre
			actual.Descripcion = p.Descripcion
			actual.Precio = p.Precio
			actual.Stock = p.Stock
			actual.Imagen = p.Imagen
			if p.Categoria != nil {
				actual.Categoria = p.Categoria
			}
			if p.Marca != nil {
				actual.Marca = p.Marca
			}
			if p.Proveedor != nil {
				actual.Proveedor = p.Proveedor
			}
			copia := *actual
			return &copia, nil
		}
	}
	return nil, domain.ErrNotFound
}

// EliminarProducto baja de producto; ErrNotFound si no existe.
func (r *CatalogoRepo) EliminarProducto(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.productos {
		if p.ID == id {
			r.productos = append(r.productos[:i], r.productos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Descuento es una línea de descuento de stock para DescontarStockLote.
type Descuento struct {
	IDProducto string
	Cantidad   int
}

// DescontarStockLote valida y descuenta todas las líneas bajo el mismo lock:
// si alguna no alcanza, ninguna se descuenta. Devuelve copias de los
// productos previas al descuento, en el orden de las líneas. Falla con
// StockExcedidoError (stock vigente incluido) o ErrNotFound.
func (r *CatalogoRepo) DescontarStockLote(lineas []Descuento) ([]entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	afectados := make([]*entity.Producto, 0, len(lineas))
	reservado := make(map[*entity.Producto]int, len(lineas))
	for _, l := range lineas {
		var p *entity.Producto
		for _, candidato := range r.productos {
			if candidato.ID == l.IDProducto {
				p = candidato
				break
			}
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		// El mismo producto puede repetirse entre líneas: el chequeo
		// descuenta lo ya reservado por las anteriores.
		disponible := p.Stock - reservado[p]
		if l.Cantidad > disponible {
			return nil, &domain.StockExcedidoError{Nombre: p.Nombre, StockActual: disponible}
		}
		reservado[p] += l.Cantidad
		afectados = append(afectados, p)
	}
	copias := make([]entity.Producto, len(lineas))
	for i, l := range lineas {
		copias[i] = *afectados[i]
		afectados[i].Stock -= l.Cantidad
	}
	return copias, nil
}

// ── Tablas de referencia ──────────────────────────────────────────────────────

// ListarCategorias devuelve copias de las categorías.
func (r *CatalogoRepo) ListarCategorias() []entity.Categoria {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out
}

// CrearCategoria alta con ID nuevo.
func (r *CatalogoRepo) CrearCategoria(nombre string) entity.Categoria {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := &entity.Categoria{ID: uuid.New().String(), Nombre: nombre}
	r.categorias = append(r.categorias, c)
	return *c
}

// ListarMarcas devuelve copias de las marcas.
func (r *CatalogoRepo) ListarMarcas() []entity.Marca {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Marca, 0, len(r.marcas))
	for _, m := range r.marcas {
		out = append(out, *m)
	}
	return out
}

// CrearMarca alta con ID nuevo.
func (r *CatalogoRepo) CrearMarca(nombre string) entity.Marca {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := &entity.Marca{ID: uuid.New().String(), Nombre: nombre}
	r.marcas = append(r.marcas, m)
	return *m
}

// ListarProveedores devuelve copias de los proveedores.
func (r *CatalogoRepo) ListarProveedores() []entity.Proveedor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Proveedor, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		out = append(out, *p)
	}
	return out
}

// CrearProveedor alta con ID nuevo.
func (r *CatalogoRepo) CrearProveedor(nombre string) entity.Proveedor {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := &entity.Proveedor{ID: uuid.New().String(), Nombre: nombre}
	r.proveedores = append(r.proveedores, p)
	return *p
}
