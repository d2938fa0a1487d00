// Package memoria implementa los repositorios en memoria del backend de
// desarrollo (cmd/stubapi). Todo protegido por mutex: el stub sirve varias
// conexiones a la vez.
package memoria

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// Usuario usuario del stub, con hash bcrypt de la contraseña.
type Usuario struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string
	Rol          entity.Rol
}

// UsuariosRepo repositorio de usuarios del stub.
type UsuariosRepo struct {
	mu       sync.RWMutex
	porEmail map[string]*Usuario
}

// NewUsuariosRepo construye el repositorio vacío.
func NewUsuariosRepo() *UsuariosRepo {
	return &UsuariosRepo{porEmail: make(map[string]*Usuario)}
}

// Crear da de alta un usuario; email duplicado retorna ErrDuplicado.
func (r *UsuariosRepo) Crear(nombre, email, passwordHash string, rol entity.Rol) (*Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clave := strings.ToLower(email)
	if _, ok := r.porEmail[clave]; ok {
		return nil, domain.ErrDuplicado
	}
	u := &Usuario{
		ID:           uuid.New().String(),
		Nombre:       nombre,
		Email:        email,
		PasswordHash: passwordHash,
		Rol:          rol,
	}
	r.porEmail[clave] = u
	return u, nil
}

// PorEmail busca por email (case-insensitive); nil si no existe.
func (r *UsuariosRepo) PorEmail(email string) *Usuario {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.porEmail[strings.ToLower(email)]
}
