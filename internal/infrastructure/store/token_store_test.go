package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFile_CicloCompleto(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), ".pos-token")
	tf := NewTokenFile(ruta)

	// Archivo ausente no es un error: simplemente no hay sesión previa.
	token, err := tf.Cargar()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, tf.Guardar("tok-1"))
	token, err = tf.Cargar()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// El token es una credencial: solo lectura/escritura del dueño.
	info, err := os.Stat(ruta)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, tf.Limpiar())
	token, err = tf.Cargar()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Limpiar sin archivo es idempotente.
	require.NoError(t, tf.Limpiar())
}

func TestTokenFile_GuardarSobrescribe(t *testing.T) {
	tf := NewTokenFile(filepath.Join(t.TempDir(), ".pos-token"))

	require.NoError(t, tf.Guardar("viejo"))
	require.NoError(t, tf.Guardar("nuevo"))

	token, err := tf.Cargar()
	require.NoError(t, err)
	assert.Equal(t, "nuevo", token)
}
