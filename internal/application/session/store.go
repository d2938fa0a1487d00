// Package session mantiene la sesión del usuario activo: token opaco +
// perfil. Es estado de un solo dueño (un terminal, una sesión); no requiere
// sincronización entre goroutines.
package session

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// PerfilFetcher obtiene el perfil del usuario con un token dado.
type PerfilFetcher interface {
	ObtenerPerfil(ctx context.Context, token string) (*entity.Usuario, error)
}

// TokenStore persiste el token entre ejecuciones (único estado persistido del cliente).
type TokenStore interface {
	Cargar() (string, error)
	Guardar(token string) error
	Limpiar() error
}

// Store es la sesión con ciclo de vida explícito: Restaurar al arrancar,
// IniciarSesion tras el login, CerrarSesion al salir o ante un 401.
type Store struct {
	perfiles PerfilFetcher
	tokens   TokenStore
	log      *logger.Logger

	token   string
	usuario *entity.Usuario
}

// NewStore construye la sesión (vacía hasta Restaurar o IniciarSesion).
func NewStore(perfiles PerfilFetcher, tokens TokenStore, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{perfiles: perfiles, tokens: tokens, log: log}
}

// Restaurar intenta reanudar la sesión con el token persistido. Nunca retorna
// error al llamador: cualquier falla (token expirado, backend caído) degrada
// en silencio a "sin sesión" y limpia el token persistido.
func (s *Store) Restaurar(ctx context.Context) {
	token, err := s.tokens.Cargar()
	if err != nil || token == "" {
		return
	}
	usuario, err := s.perfiles.ObtenerPerfil(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("token persistido inválido; se limpia")
		_ = s.tokens.Limpiar()
		return
	}
	s.token = token
	s.usuario = usuario
}

// IniciarSesion valida el token obteniendo el perfil y, solo si el perfil
// llega bien, persiste el token (exactamente una escritura) y puebla la
// sesión. Ante falla no se toca el estado previo.
func (s *Store) IniciarSesion(ctx context.Context, token string) error {
	usuario, err := s.perfiles.ObtenerPerfil(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAutenticacion, err)
	}
	if err := s.tokens.Guardar(token); err != nil {
		return fmt.Errorf("persistir token: %w", err)
	}
	s.token = token
	s.usuario = usuario
	return nil
}

// CerrarSesion limpia la sesión y el token persistido. Idempotente.
func (s *Store) CerrarSesion() {
	s.token = ""
	s.usuario = nil
	_ = s.tokens.Limpiar()
}

// EstaAutenticado es true solo con token y perfil presentes; el estado
// parcial (token sin perfil) nunca cuenta como autenticado.
func (s *Store) EstaAutenticado() bool {
	return s.token != "" && s.usuario != nil
}

// EsAdmin predicado puro sobre la sesión actual; false sin sesión.
func (s *Store) EsAdmin() bool {
	return s.usuario != nil && s.usuario.Rol == entity.RolAdmin
}

// Usuario devuelve el perfil actual (nil sin sesión).
func (s *Store) Usuario() *entity.Usuario { return s.usuario }

// Token devuelve el token actual ("" sin sesión). Lo usa el cliente REST
// para el header Authorization.
func (s *Store) Token() string { return s.token }
