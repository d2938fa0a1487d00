package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

type perfilesFake struct {
	porToken map[string]*entity.Usuario
	llamadas int
}

func (p *perfilesFake) ObtenerPerfil(_ context.Context, token string) (*entity.Usuario, error) {
	p.llamadas++
	if u, ok := p.porToken[token]; ok {
		return u, nil
	}
	return nil, domain.ErrAutenticacion
}

type tokensFake struct {
	token    string
	guardado int
	errSave  error
}

func (t *tokensFake) Cargar() (string, error) { return t.token, nil }
func (t *tokensFake) Guardar(token string) error {
	if t.errSave != nil {
		return t.errSave
	}
	t.guardado++
	t.token = token
	return nil
}
func (t *tokensFake) Limpiar() error {
	t.token = ""
	return nil
}

func admin() *entity.Usuario {
	return &entity.Usuario{ID: "u1", Nombre: "Admin", Email: "admin@pos.local", Rol: entity.RolAdmin}
}

func TestRestaurar_TokenValido_ReanudaSesion(t *testing.T) {
	perfiles := &perfilesFake{porToken: map[string]*entity.Usuario{"tok-1": admin()}}
	tokens := &tokensFake{token: "tok-1"}
	s := NewStore(perfiles, tokens, nil)

	s.Restaurar(context.Background())

	assert.True(t, s.EstaAutenticado())
	assert.True(t, s.EsAdmin())
	assert.Equal(t, "tok-1", s.Token())
	require.NotNil(t, s.Usuario())
	assert.Equal(t, "admin@pos.local", s.Usuario().Email)
}

// Un token persistido rechazado degrada en silencio a "sin sesión" y limpia
// el archivo para no reintentar en cada arranque.
func TestRestaurar_TokenRechazado_DegradaYLimpia(t *testing.T) {
	perfiles := &perfilesFake{porToken: map[string]*entity.Usuario{}}
	tokens := &tokensFake{token: "tok-vencido"}
	s := NewStore(perfiles, tokens, nil)

	s.Restaurar(context.Background())

	assert.False(t, s.EstaAutenticado())
	assert.Empty(t, s.Token())
	assert.Empty(t, tokens.token, "el token persistido inválido debe limpiarse")
}

func TestRestaurar_SinTokenPersistido_NoConsultaPerfil(t *testing.T) {
	perfiles := &perfilesFake{}
	s := NewStore(perfiles, &tokensFake{}, nil)

	s.Restaurar(context.Background())

	assert.False(t, s.EstaAutenticado())
	assert.Zero(t, perfiles.llamadas, "sin token no debe haber viaje de red")
}

func TestIniciarSesion_Exito_PersisteUnaVez(t *testing.T) {
	perfiles := &perfilesFake{porToken: map[string]*entity.Usuario{"tok-1": admin()}}
	tokens := &tokensFake{}
	s := NewStore(perfiles, tokens, nil)

	require.NoError(t, s.IniciarSesion(context.Background(), "tok-1"))

	assert.True(t, s.EstaAutenticado())
	assert.Equal(t, 1, tokens.guardado, "exactamente una escritura del token")
	assert.Equal(t, "tok-1", tokens.token)
}

// Un token nuevo inválido no debe pisar la sesión vigente.
func TestIniciarSesion_TokenInvalido_NoTocaLaSesionPrevia(t *testing.T) {
	perfiles := &perfilesFake{porToken: map[string]*entity.Usuario{"tok-1": admin()}}
	tokens := &tokensFake{}
	s := NewStore(perfiles, tokens, nil)
	require.NoError(t, s.IniciarSesion(context.Background(), "tok-1"))

	err := s.IniciarSesion(context.Background(), "tok-malo")
	assert.ErrorIs(t, err, domain.ErrAutenticacion)

	assert.True(t, s.EstaAutenticado(), "la sesión previa sigue viva")
	assert.Equal(t, "tok-1", s.Token())
	assert.Equal(t, "tok-1", tokens.token, "el token persistido no cambia")
}

func TestIniciarSesion_FallaAlPersistir_NoPueblaLaSesion(t *testing.T) {
	perfiles := &perfilesFake{porToken: map[string]*entity.Usuario{"tok-1": admin()}}
	tokens := &tokensFake{errSave: assert.AnError}
	s := NewStore(perfiles, tokens, nil)

	err := s.IniciarSesion(context.Background(), "tok-1")
	require.Error(t, err)
	assert.False(t, s.EstaAutenticado(), "sin persistencia no hay sesión a medias")
}

func TestCerrarSesion_EsIdempotente(t *testing.T) {
	perfiles := &perfilesFake{porToken: map[string]*entity.Usuario{"tok-1": admin()}}
	tokens := &tokensFake{}
	s := NewStore(perfiles, tokens, nil)
	require.NoError(t, s.IniciarSesion(context.Background(), "tok-1"))

	s.CerrarSesion()
	s.CerrarSesion() // repetir no debe fallar ni cambiar nada

	assert.False(t, s.EstaAutenticado())
	assert.False(t, s.EsAdmin())
	assert.Nil(t, s.Usuario())
	assert.Empty(t, tokens.token)
}

func TestEsAdmin_VendedorNoEsAdmin(t *testing.T) {
	vendedor := &entity.Usuario{ID: "u2", Rol: entity.RolVendedor}
	perfiles := &perfilesFake{porToken: map[string]*entity.Usuario{"tok-2": vendedor}}
	s := NewStore(perfiles, &tokensFake{}, nil)
	require.NoError(t, s.IniciarSesion(context.Background(), "tok-2"))

	assert.True(t, s.EstaAutenticado())
	assert.False(t, s.EsAdmin())
}
