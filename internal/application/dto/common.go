package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// ErrorResponse cuerpo de error del backend. El campo message es el que el
// cliente muestra textual al usuario cuando está presente.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MensajeResponse respuesta genérica {message} (forgot/reset password).
type MensajeResponse struct {
	Message string `json:"message"`
}

// FlexInt es un entero que acepta en el JSON tanto número como string numérico.
// El backend devuelve stock y cantidades en tipos mezclados según el endpoint.
type FlexInt int

// UnmarshalJSON acepta 3, "3" y "3.0"; null se interpreta como 0.
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if v, err := strconv.Atoi(string(b)); err == nil {
		*n = FlexInt(v)
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("valor entero inválido: %s", b)
	}
	*n = FlexInt(int(f))
	return nil
}

// Int devuelve el valor como int nativo.
func (n FlexInt) Int() int { return int(n) }
