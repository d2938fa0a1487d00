package dto

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// LoginRequest credenciales para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse respuesta de login: token opaco para el cliente.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// RegisterRequest datos para POST /auth/register.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ForgotPasswordRequest datos para POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest datos para POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// PerfilResponse perfil devuelto por GET /auth/profile.
type PerfilResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ToUsuario convierte el perfil al modelo de dominio.
func (p PerfilResponse) ToUsuario() *entity.Usuario {
	return &entity.Usuario{
		ID:     p.ID,
		Nombre: p.Name,
		Email:  p.Email,
		Rol:    entity.Rol(p.Role),
	}
}
