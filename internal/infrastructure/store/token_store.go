// Package store persiste el token de sesión entre ejecuciones del terminal.
// Es el único estado persistido del cliente: un string, clave-valor plano.
package store

import (
	"os"
	"strings"

	"github.com/jhoicas/pos-ventas/internal/application/session"
)

var _ session.TokenStore = (*TokenFile)(nil)

// TokenFile guarda el token en un archivo con permisos 0600.
type TokenFile struct {
	path string
}

// NewTokenFile construye el store sobre la ruta dada.
func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

// Cargar lee el token persistido. Archivo ausente no es error: significa
// "sin sesión previa".
func (s *TokenFile) Cargar() (string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// Guardar escribe el token (una escritura por login exitoso).
func (s *TokenFile) Guardar(token string) error {
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Limpiar elimina el token persistido. Idempotente.
func (s *TokenFile) Limpiar() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
