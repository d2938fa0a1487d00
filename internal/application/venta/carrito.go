// Package venta implementa el armado del carrito y el registro de la venta
// contra el backend.
package venta

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// LineaCarrito es la selección de un producto dentro de la venta en curso.
// Nombre y Precio se denormalizan al insertar; StockTope es el techo local
// de cantidad, refrescado con el snapshot más reciente cada vez que el mismo
// producto vuelve a agregarse con éxito. Un agregado rechazado no lo toca:
// bajar el tope por debajo de la cantidad rompería el rango de Cantidad, y
// la revalidación contra el snapshot fresco ocurre igual al registrar.
type LineaCarrito struct {
	IDProducto string
	Nombre     string
	Precio     decimal.Decimal
	Cantidad   int // siempre en [1, StockTope]
	StockTope  int
}

// Subtotal de la línea (precio × cantidad).
func (l LineaCarrito) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// Carrito mantiene la selección de productos de una venta en curso, una
// línea por producto. Solo se muta a través de sus métodos.
type Carrito struct {
	lineas []LineaCarrito // orden de inserción
}

// NewCarrito construye un carrito vacío.
func NewCarrito() *Carrito {
	return &Carrito{}
}

func (c *Carrito) buscar(idProducto string) *LineaCarrito {
	for i := range c.lineas {
		if c.lineas[i].IDProducto == idProducto {
			return &c.lineas[i]
		}
	}
	return nil
}

// Agregar suma una unidad del producto. Si ya está en el carrito y la
// cantidad alcanzó el stock del snapshot recibido, se rechaza sin mutar;
// si no está y el producto no tiene stock, también se rechaza.
func (c *Carrito) Agregar(p entity.Producto) error {
	if linea := c.buscar(p.ID); linea != nil {
		if linea.Cantidad >= p.Stock {
			return &domain.StockExcedidoError{Nombre: p.Nombre, StockActual: p.Stock}
		}
		// El tope se refresca con el stock más reciente conocido.
		linea.StockTope = p.Stock
		linea.Cantidad++
		return nil
	}
	if p.Stock <= 0 {
		return &domain.StockExcedidoError{Nombre: p.Nombre, StockActual: p.Stock}
	}
	c.lineas = append(c.lineas, LineaCarrito{
		IDProducto: p.ID,
		Nombre:     p.Nombre,
		Precio:     p.Precio,
		Cantidad:   1,
		StockTope:  p.Stock,
	})
	return nil
}

// CambiarCantidad fija la cantidad de una línea, acotada a [1, StockTope].
// Valores no positivos se corrigen a 1. Nunca elimina la línea (para eso
// está Quitar); si el producto no está en el carrito es un no-op.
func (c *Carrito) CambiarCantidad(idProducto string, cantidad int) {
	linea := c.buscar(idProducto)
	if linea == nil {
		return
	}
	if cantidad > linea.StockTope {
		cantidad = linea.StockTope
	}
	// El piso va último: la cantidad resultante nunca baja de 1.
	if cantidad < 1 {
		cantidad = 1
	}
	linea.Cantidad = cantidad
}

// Quitar elimina la línea del producto; no-op si no está.
func (c *Carrito) Quitar(idProducto string) {
	for i := range c.lineas {
		if c.lineas[i].IDProducto == idProducto {
			c.lineas = append(c.lineas[:i], c.lineas[i+1:]...)
			return
		}
	}
}

// Total recalcula Σ precio × cantidad en cada llamada; carrito vacío es 0.
// No se guarda aparte para evitar que derive del estado real.
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lineas {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Vaciar descarta todas las líneas (tras una venta exitosa o reset explícito).
func (c *Carrito) Vaciar() {
	c.lineas = nil
}

// Vacio reporta si no hay líneas.
func (c *Carrito) Vacio() bool { return len(c.lineas) == 0 }

// Cantidad devuelve la cantidad seleccionada del producto (0 si no está).
func (c *Carrito) Cantidad(idProducto string) int {
	if l := c.buscar(idProducto); l != nil {
		return l.Cantidad
	}
	return 0
}

// Lineas devuelve una copia de las líneas en orden de inserción.
func (c *Carrito) Lineas() []LineaCarrito {
	out := make([]LineaCarrito, len(c.lineas))
	copy(out, c.lineas)
	return out
}
