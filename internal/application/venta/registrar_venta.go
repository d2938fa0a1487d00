package venta

import (
	"context"
	"sync/atomic"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// RegistrarVentaUseCase orquesta una venta en curso: carrito, cliente
// seleccionado y filtro de búsqueda, con envío al backend al confirmar.
type RegistrarVentaUseCase struct {
	sesion   Sesion
	carrito  *Carrito
	ventas   VentaCreador
	catalogo CatalogoFuente
	log      *logger.Logger

	cliente *entity.Cliente
	filtro  string
	enVuelo atomic.Bool // guarda contra doble envío de la misma venta
}

// NewRegistrarVentaUseCase construye el flujo con un carrito vacío.
func NewRegistrarVentaUseCase(sesion Sesion, ventas VentaCreador, catalogo CatalogoFuente, log *logger.Logger) *RegistrarVentaUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RegistrarVentaUseCase{
		sesion:   sesion,
		carrito:  NewCarrito(),
		ventas:   ventas,
		catalogo: catalogo,
		log:      log,
	}
}

// Carrito expone el carrito de la venta en curso.
func (uc *RegistrarVentaUseCase) Carrito() *Carrito { return uc.carrito }

// SeleccionarCliente fija el cliente de la venta (referencia, nunca se muta).
func (uc *RegistrarVentaUseCase) SeleccionarCliente(c *entity.Cliente) { uc.cliente = c }

// ClienteSeleccionado devuelve el cliente actual (nil si no hay).
func (uc *RegistrarVentaUseCase) ClienteSeleccionado() *entity.Cliente { return uc.cliente }

// FijarFiltro guarda el texto de búsqueda de clientes de la pantalla.
func (uc *RegistrarVentaUseCase) FijarFiltro(f string) { uc.filtro = f }

// Filtro devuelve el texto de búsqueda vigente.
func (uc *RegistrarVentaUseCase) Filtro() string { return uc.filtro }

// Descartar abandona la venta en curso sin efectos colaterales (equivale a
// salir de la pantalla): vacía carrito, cliente y filtro.
func (uc *RegistrarVentaUseCase) Descartar() {
	uc.carrito.Vaciar()
	uc.cliente = nil
	uc.filtro = ""
}

// Registrar valida y envía la venta. Las precondiciones se chequean en orden
// y la primera que falla aborta sin tocar la red:
//
//  1. sesión autenticada
//  2. cliente seleccionado
//  3. carrito no vacío
//  4. cada línea revalidada contra el snapshot de catálogo más reciente
//     (el producto sigue existiendo y la cantidad no supera su stock)
//
// Con éxito del backend se vacía el carrito, se deselecciona el cliente, se
// limpia el filtro y se refresca el catálogo. Con falla el estado queda
// intacto para reintentar; el mensaje del backend se propaga textual.
func (uc *RegistrarVentaUseCase) Registrar(ctx context.Context) (*entity.Venta, error) {
	if !uc.enVuelo.CompareAndSwap(false, true) {
		return nil, domain.ErrVentaEnCurso
	}
	defer uc.enVuelo.Store(false)

	if !uc.sesion.EstaAutenticado() {
		return nil, domain.ErrNoAutenticado
	}
	if uc.cliente == nil {
		return nil, domain.ErrClienteNoSeleccionado
	}
	if uc.carrito.Vacio() {
		return nil, domain.ErrCarritoVacio
	}

	// Revalidación contra el último snapshot conocido. El diseño es optimista:
	// entre snapshot y envío el stock puede cambiar, y esa ventana la cubre el
	// chequeo de stock del propio backend.
	porID := make(map[string]entity.Producto)
	for _, p := range uc.catalogo.Productos() {
		porID[p.ID] = p
	}
	lineas := uc.carrito.Lineas()
	for _, l := range lineas {
		vigente, ok := porID[l.IDProducto]
		if !ok {
			return nil, &domain.ProductoEliminadoError{Nombre: l.Nombre}
		}
		if l.Cantidad > vigente.Stock {
			return nil, &domain.StockExcedidoError{Nombre: l.Nombre, StockActual: vigente.Stock}
		}
	}

	payload := dto.CrearVentaRequest{
		Venta: dto.VentaCabecera{
			IDCliente:   uc.cliente.ID,
			PrecioTotal: uc.carrito.Total(),
		},
		Detalles: make([]dto.DetalleVentaRequest, 0, len(lineas)),
	}
	for _, l := range lineas {
		payload.Detalles = append(payload.Detalles, dto.DetalleVentaRequest{
			PrecioSubTotal: l.Subtotal(),
			Cantidad:       l.Cantidad,
			IDProducto:     l.IDProducto,
			IDVenta:        "",
		})
	}

	creada, err := uc.ventas.CrearVenta(ctx, payload)
	if err != nil {
		// Carrito y cliente quedan intactos para que el usuario ajuste y reintente.
		return nil, err
	}

	uc.log.Info().
		Str("id_venta", creada.ID).
		Str("id_cliente", payload.Venta.IDCliente).
		Str("usuario", uc.sesion.Usuario().Email).
		Str("total", payload.Venta.PrecioTotal.StringFixed(2)).
		Msg("venta registrada")

	uc.carrito.Vaciar()
	uc.cliente = nil
	uc.filtro = ""
	if err := uc.catalogo.Refrescar(ctx); err != nil {
		// La venta ya quedó registrada; un refresh fallido solo deja el
		// snapshot viejo hasta el próximo intento.
		uc.log.Warn().Err(err).Msg("no se pudo refrescar el catálogo tras la venta")
	}
	return creada, nil
}
