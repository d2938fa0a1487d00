package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrAutenticacion         = errors.New("credenciales inválidas o sesión expirada")
	ErrNoAutenticado         = errors.New("no se encontró información del usuario; inicia sesión nuevamente")
	ErrProhibido             = errors.New("operación reservada al rol admin")
	ErrValidacion            = errors.New("entrada inválida")
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrClienteNoSeleccionado = errors.New("seleccioná un cliente antes de registrar la venta")
	ErrCarritoVacio          = errors.New("agregá al menos un producto al carrito")
	ErrStockInsuficiente     = errors.New("stock insuficiente")
	ErrVentaEnCurso          = errors.New("ya hay un envío de venta en curso")
	ErrRed                   = errors.New("error de red al contactar el backend")
)

// StockExcedidoError indica que la cantidad pedida supera el stock conocido
// de un producto. Nombra el producto y el stock vigente al momento del chequeo.
type StockExcedidoError struct {
	Nombre      string
	StockActual int
}

func (e *StockExcedidoError) Error() string {
	return fmt.Sprintf("la cantidad de %s supera el stock actual (%d)", e.Nombre, e.StockActual)
}

// Unwrap permite errors.Is(err, ErrStockInsuficiente).
func (e *StockExcedidoError) Unwrap() error { return ErrStockInsuficiente }

// ProductoEliminadoError indica que un producto del carrito ya no existe en el catálogo.
type ProductoEliminadoError struct {
	Nombre string
}

func (e *ProductoEliminadoError) Error() string {
	return fmt.Sprintf("el producto %s ya no existe", e.Nombre)
}

func (e *ProductoEliminadoError) Unwrap() error { return ErrNotFound }

// BackendError envuelve una respuesta no-2xx del backend, preservando el mensaje
// del servidor textual cuando está presente.
type BackendError struct {
	Status  int
	Mensaje string
}

func (e *BackendError) Error() string { return e.Mensaje }
