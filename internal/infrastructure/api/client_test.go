package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
)

func clienteDePrueba(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil, opts...), srv
}

// El backend serializa precio como string numérico y stock puede llegar como
// número o como string; ambos deben normalizarse.
func TestListarProductos_CoercionNumerica(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/producto", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id_producto":"p1","nombre":"Agua","precio":"850.50","stock":24},
			{"id_producto":"p2","nombre":"Leche","precio":"1200","stock":"12"}
		]`))
	})

	productos, err := c.ListarProductos(context.Background())
	require.NoError(t, err)
	require.Len(t, productos, 2)
	assert.Equal(t, "850.50", productos[0].Precio.StringFixed(2))
	assert.Equal(t, 24, productos[0].Stock)
	assert.Equal(t, 12, productos[1].Stock, "stock como string numérico debe coercionarse")
}

func TestDo_EnviaBearerToken(t *testing.T) {
	var recibido string
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		recibido = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, WithTokenSource(func() string { return "tok-1" }))

	_, err := c.ListarProductos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", recibido)
}

// El mensaje del backend se extrae de {message}; sin cuerpo útil va el
// mensaje genérico de la operación.
func TestDo_ErrorDelBackend_PropagaMensaje(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Agua no tiene stock suficiente"}`))
	})

	_, err := c.ListarProductos(context.Background())
	require.Error(t, err)

	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusConflict, backendErr.Status)
	assert.Equal(t, "Agua no tiene stock suficiente", backendErr.Mensaje)
}

func TestDo_ErrorSinCuerpo_UsaFallback(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ListarProductos(context.Background())
	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Error al cargar los productos", backendErr.Mensaje)
}

// Un 401 con el token de la sesión dispara la invalidación global.
func TestDo_401ConTokenDeSesion_InvalidaSesion(t *testing.T) {
	invalidado := false
	token := "tok-1"
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	},
		WithTokenSource(func() string { return token }),
		WithOnNoAutorizado(func() { invalidado = true }),
	)

	_, err := c.ListarProductos(context.Background())
	assert.ErrorIs(t, err, domain.ErrAutenticacion)
	assert.True(t, invalidado, "el 401 debe invalidar la sesión")
}

// Un 401 al validar un token ajeno (probe de login) no debe tocar la sesión
// vigente: solo el token de la propia sesión la invalida.
func TestObtenerPerfil_401ConTokenAjeno_NoInvalidaSesion(t *testing.T) {
	invalidado := false
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	},
		WithTokenSource(func() string { return "tok-de-la-sesion" }),
		WithOnNoAutorizado(func() { invalidado = true }),
	)

	_, err := c.ObtenerPerfil(context.Background(), "tok-nuevo-invalido")
	assert.ErrorIs(t, err, domain.ErrAutenticacion)
	assert.False(t, invalidado, "un probe con token ajeno no invalida la sesión previa")
}

func TestDo_FallaDeTransporte_EsErrRed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // el puerto ya no escucha
	c := New(srv.URL, time.Second, nil)

	_, err := c.ListarProductos(context.Background())
	assert.ErrorIs(t, err, domain.ErrRed)
}

func TestLogin_DevuelveAccessToken(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login es una petición pública")
		w.Write([]byte(`{"access_token":"tok-nuevo"}`))
	})

	resp, err := c.Login(context.Background(), dto.LoginRequest{Email: "a@pos.local", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "tok-nuevo", resp.AccessToken)
}

func TestCrearVenta_EnviaPayloadYParseaRespuesta(t *testing.T) {
	var cuerpo []byte
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/venta", r.URL.Path)
		cuerpo, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id_venta":"v1","precioTotal":"65","createdAt":"2026-08-31T12:00:00Z"}`))
	}, WithTokenSource(func() string { return "tok-1" }))

	req := dto.CrearVentaRequest{
		Venta: dto.VentaCabecera{IDCliente: "c1"},
		Detalles: []dto.DetalleVentaRequest{
			{Cantidad: 2, IDProducto: "p1"},
		},
	}
	venta, err := c.CrearVenta(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "v1", venta.ID)
	assert.Equal(t, "65.00", venta.PrecioTotal.StringFixed(2))

	assert.Contains(t, string(cuerpo), `"id_cliente":"c1"`)
	assert.Contains(t, string(cuerpo), `"id_producto":"p1"`)
	assert.Contains(t, string(cuerpo), `"id_venta":""`, "id_venta viaja vacío en el alta")
}
