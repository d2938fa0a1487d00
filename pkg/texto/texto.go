// Package texto tiene helpers de normalización para búsquedas
// insensibles a mayúsculas y tildes.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitaDiacriticos descompone (NFD), elimina las marcas combinantes y recompone.
var quitaDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza para comparación: minúsculas, sin tildes, sin espacios de borde.
// "Pérez" y "perez" comparan iguales.
func Fold(s string) string {
	out, _, err := transform.String(quitaDiacriticos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Contiene reporta si s contiene sub, comparando con Fold.
// Sub vacío siempre matchea.
func Contiene(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}
