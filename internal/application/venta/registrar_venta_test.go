package venta

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type sesionFake struct {
	autenticado bool
	usuario     *entity.Usuario
}

func (s *sesionFake) EstaAutenticado() bool    { return s.autenticado }
func (s *sesionFake) Usuario() *entity.Usuario { return s.usuario }

type ventasFake struct {
	llamadas int
	recibido dto.CrearVentaRequest
	venta    *entity.Venta
	err      error
}

func (v *ventasFake) CrearVenta(_ context.Context, in dto.CrearVentaRequest) (*entity.Venta, error) {
	v.llamadas++
	v.recibido = in
	if v.err != nil {
		return nil, v.err
	}
	return v.venta, nil
}

type catalogoFake struct {
	productos []entity.Producto
	refrescos int
	errRefr   error
}

func (c *catalogoFake) Productos() []entity.Producto { return c.productos }
func (c *catalogoFake) Refrescar(context.Context) error {
	c.refrescos++
	return c.errRefr
}

func sesionActiva() *sesionFake {
	return &sesionFake{
		autenticado: true,
		usuario:     &entity.Usuario{ID: "u1", Nombre: "Vendedor", Email: "v@pos.local", Rol: entity.RolVendedor},
	}
}

// flujoListo devuelve un use case con sesión activa, cliente seleccionado y
// dos líneas en el carrito (2×Agua $20 + 1×Leche $25 = $65).
func flujoListo(t *testing.T, ventas VentaCreador, catalogo *catalogoFake) *RegistrarVentaUseCase {
	t.Helper()
	uc := NewRegistrarVentaUseCase(sesionActiva(), ventas, catalogo, nil)
	uc.SeleccionarCliente(&entity.Cliente{ID: "c1", Nombre: "Juan Pérez", DNI: "30111222"})
	uc.FijarFiltro("juan")

	agua := producto("p1", "Agua", 20, 10)
	leche := producto("p2", "Leche", 25, 10)
	require.NoError(t, uc.Carrito().Agregar(agua))
	require.NoError(t, uc.Carrito().Agregar(agua))
	require.NoError(t, uc.Carrito().Agregar(leche))
	return uc
}

func catalogoCon(productos ...entity.Producto) *catalogoFake {
	return &catalogoFake{productos: productos}
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones: se chequean en orden y abortan sin tocar la red
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_SinSesion_AbortaSinRed(t *testing.T) {
	ventas := &ventasFake{}
	uc := NewRegistrarVentaUseCase(&sesionFake{}, ventas, catalogoCon(), nil)
	uc.SeleccionarCliente(&entity.Cliente{ID: "c1"})
	require.NoError(t, uc.Carrito().Agregar(producto("p1", "Agua", 20, 5)))

	_, err := uc.Registrar(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
	assert.Zero(t, ventas.llamadas, "sin sesión no debe haber viaje de red")
}

func TestRegistrar_SinCliente_AbortaSinRed(t *testing.T) {
	ventas := &ventasFake{}
	uc := NewRegistrarVentaUseCase(sesionActiva(), ventas, catalogoCon(), nil)
	require.NoError(t, uc.Carrito().Agregar(producto("p1", "Agua", 20, 5)))

	_, err := uc.Registrar(context.Background())
	assert.ErrorIs(t, err, domain.ErrClienteNoSeleccionado)
	assert.Zero(t, ventas.llamadas)
}

func TestRegistrar_CarritoVacio_AbortaSinRed(t *testing.T) {
	ventas := &ventasFake{}
	uc := NewRegistrarVentaUseCase(sesionActiva(), ventas, catalogoCon(), nil)
	uc.SeleccionarCliente(&entity.Cliente{ID: "c1"})

	_, err := uc.Registrar(context.Background())
	assert.ErrorIs(t, err, domain.ErrCarritoVacio)
	assert.Zero(t, ventas.llamadas)
}

// La revalidación contra el snapshot detecta productos eliminados.
func TestRegistrar_ProductoEliminadoDelCatalogo_Aborta(t *testing.T) {
	ventas := &ventasFake{}
	catalogo := catalogoCon(producto("p1", "Agua", 20, 10)) // p2 ya no existe
	uc := flujoListo(t, ventas, catalogo)

	_, err := uc.Registrar(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var elim *domain.ProductoEliminadoError
	require.ErrorAs(t, err, &elim)
	assert.Equal(t, "Leche", elim.Nombre)
	assert.Zero(t, ventas.llamadas)
	assert.False(t, uc.Carrito().Vacio(), "el carrito queda intacto para corregir")
}

// La revalidación detecta stock menor que la cantidad pedida.
func TestRegistrar_StockBajoElPedido_Aborta(t *testing.T) {
	ventas := &ventasFake{}
	catalogo := catalogoCon(
		producto("p1", "Agua", 20, 1), // pedimos 2
		producto("p2", "Leche", 25, 10),
	)
	uc := flujoListo(t, ventas, catalogo)

	_, err := uc.Registrar(context.Background())
	var stockErr *domain.StockExcedidoError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Agua", stockErr.Nombre)
	assert.Equal(t, 1, stockErr.StockActual)
	assert.Zero(t, ventas.llamadas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Payload y efectos de éxito/falla
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_Exito_PayloadYLimpieza(t *testing.T) {
	ventas := &ventasFake{venta: &entity.Venta{ID: "v1", PrecioTotal: decimal.NewFromInt(65)}}
	catalogo := catalogoCon(
		producto("p1", "Agua", 20, 10),
		producto("p2", "Leche", 25, 10),
	)
	uc := flujoListo(t, ventas, catalogo)

	creada, err := uc.Registrar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", creada.ID)

	// Forma del payload: cabecera con cliente y total, una línea por producto.
	req := ventas.recibido
	assert.Equal(t, "c1", req.Venta.IDCliente)
	assert.True(t, decimal.NewFromInt(65).Equal(req.Venta.PrecioTotal))
	require.Len(t, req.Detalles, 2)
	assert.Equal(t, "p1", req.Detalles[0].IDProducto)
	assert.Equal(t, 2, req.Detalles[0].Cantidad)
	assert.True(t, decimal.NewFromInt(40).Equal(req.Detalles[0].PrecioSubTotal))
	assert.Equal(t, "p2", req.Detalles[1].IDProducto)
	assert.Equal(t, 1, req.Detalles[1].Cantidad)
	assert.Empty(t, req.Detalles[0].IDVenta, "id_venta viaja vacío; lo completa el backend")

	// Con éxito se limpia todo el estado de la venta y se refresca el catálogo.
	assert.True(t, uc.Carrito().Vacio())
	assert.Nil(t, uc.ClienteSeleccionado())
	assert.Empty(t, uc.Filtro())
	assert.Equal(t, 1, catalogo.refrescos)
}

func TestRegistrar_FallaDelBackend_EstadoIntacto(t *testing.T) {
	ventas := &ventasFake{err: &domain.BackendError{Status: 409, Mensaje: "Agua no tiene stock suficiente"}}
	catalogo := catalogoCon(
		producto("p1", "Agua", 20, 10),
		producto("p2", "Leche", 25, 10),
	)
	uc := flujoListo(t, ventas, catalogo)

	_, err := uc.Registrar(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Agua no tiene stock suficiente", "el mensaje del backend se propaga textual")

	// Nada se limpia: el usuario ajusta y reintenta.
	assert.False(t, uc.Carrito().Vacio())
	assert.NotNil(t, uc.ClienteSeleccionado())
	assert.Equal(t, "juan", uc.Filtro())
	assert.Zero(t, catalogo.refrescos)
}

// Un refresh fallido tras el éxito no convierte la venta en error.
func TestRegistrar_Exito_RefreshFallidoNoEsError(t *testing.T) {
	ventas := &ventasFake{venta: &entity.Venta{ID: "v1"}}
	catalogo := catalogoCon(
		producto("p1", "Agua", 20, 10),
		producto("p2", "Leche", 25, 10),
	)
	catalogo.errRefr = domain.ErrRed
	uc := flujoListo(t, ventas, catalogo)

	creada, err := uc.Registrar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", creada.ID)
	assert.True(t, uc.Carrito().Vacio(), "la limpieza ocurre aunque el refresh falle")
}

// ventasBloqueante frena CrearVenta hasta que el test lo libere, para poder
// observar el estado "envío en vuelo".
type ventasBloqueante struct {
	entro    chan struct{}
	liberar  chan struct{}
	llamadas int
}

func (v *ventasBloqueante) CrearVenta(context.Context, dto.CrearVentaRequest) (*entity.Venta, error) {
	v.llamadas++
	close(v.entro)
	<-v.liberar
	return &entity.Venta{ID: "v1"}, nil
}

func TestRegistrar_EnvioEnVuelo_RechazaSegundoIntento(t *testing.T) {
	ventas := &ventasBloqueante{entro: make(chan struct{}), liberar: make(chan struct{})}
	catalogo := catalogoCon(
		producto("p1", "Agua", 20, 10),
		producto("p2", "Leche", 25, 10),
	)
	uc := flujoListo(t, ventas, catalogo)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Registrar(context.Background())
		done <- err
	}()
	<-ventas.entro // el primer envío está en vuelo

	_, err := uc.Registrar(context.Background())
	assert.ErrorIs(t, err, domain.ErrVentaEnCurso)

	close(ventas.liberar)
	require.NoError(t, <-done)
	assert.Equal(t, 1, ventas.llamadas, "el backend debe recibir exactamente un envío")
}

func TestDescartar_LimpiaSinEfectos(t *testing.T) {
	ventas := &ventasFake{}
	uc := flujoListo(t, ventas, catalogoCon())

	uc.Descartar()
	assert.True(t, uc.Carrito().Vacio())
	assert.Nil(t, uc.ClienteSeleccionado())
	assert.Empty(t, uc.Filtro())
	assert.Zero(t, ventas.llamadas, "descartar nunca toca la red")
}
