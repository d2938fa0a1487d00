// Package auth implementa los flujos de autenticación del terminal:
// login, registro y recuperación de contraseña.
package auth

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/application/session"
	"github.com/jhoicas/pos-ventas/internal/domain"
)

// API endpoints públicos de auth del backend.
type API interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) error
	ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) (string, error)
}

// UseCase flujos de autenticación. Tras un login exitoso delega en la sesión
// la validación del token y su persistencia.
type UseCase struct {
	api      API
	sesion   *session.Store
	validate *validator.Validate
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, sesion *session.Store) *UseCase {
	return &UseCase{api: api, sesion: sesion, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// IniciarSesion hace login con email/password y puebla la sesión con el
// token recibido. El token solo se persiste si el perfil se obtiene bien.
func (uc *UseCase) IniciarSesion(ctx context.Context, email, password string) error {
	in := dto.LoginRequest{Email: email, Password: password}
	if err := uc.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidacion, err)
	}
	resp, err := uc.api.Login(ctx, in)
	if err != nil {
		return err
	}
	return uc.sesion.IniciarSesion(ctx, resp.AccessToken)
}

// Registrar da de alta un usuario nuevo. La coincidencia de contraseñas se
// valida acá, sin viaje de red.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegisterRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidacion, err)
	}
	return uc.api.Register(ctx, in)
}

// OlvidoContrasena solicita el mail de recuperación; devuelve el mensaje del backend.
func (uc *UseCase) OlvidoContrasena(ctx context.Context, email string) (string, error) {
	in := dto.ForgotPasswordRequest{Email: email}
	if err := uc.validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidacion, err)
	}
	return uc.api.ForgotPassword(ctx, in)
}

// RestablecerContrasena consume el token de recuperación.
func (uc *UseCase) RestablecerContrasena(ctx context.Context, in dto.ResetPasswordRequest) (string, error) {
	if err := uc.validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidacion, err)
	}
	return uc.api.ResetPassword(ctx, in)
}
