package api

import (
	"context"
	"net/http"

	appauth "github.com/jhoicas/pos-ventas/internal/application/auth"
	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/application/session"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// Verificación en tiempo de compilación de los puertos que cubre el cliente.
var (
	_ appauth.API           = (*Client)(nil)
	_ session.PerfilFetcher = (*Client)(nil)
)

// Login POST /auth/login (público).
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &out, "Error en el login"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register POST /auth/register (público).
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", in, nil, "Error en el registro")
}

// ForgotPassword POST /auth/forgot-password; devuelve el mensaje del backend.
func (c *Client) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) (string, error) {
	var out dto.MensajeResponse
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", "", in, &out, "Error al solicitar recuperación"); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ResetPassword POST /auth/reset-password.
func (c *Client) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) (string, error) {
	var out dto.MensajeResponse
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", "", in, &out, "Error al restablecer contraseña"); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ObtenerPerfil GET /auth/profile con un token explícito (la sesión valida
// tokens que todavía no son "el token vigente").
func (c *Client) ObtenerPerfil(ctx context.Context, token string) (*entity.Usuario, error) {
	var out dto.PerfilResponse
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &out, "Error al obtener perfil"); err != nil {
		return nil, err
	}
	return out.ToUsuario(), nil
}
