package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/memoria"
	"github.com/jhoicas/pos-ventas/pkg/jwt"
)

// AuthHandler endpoints públicos de autenticación del stub.
type AuthHandler struct {
	usuarios *memoria.UsuariosRepo
	jwtCfg   JWTConfig
}

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// NewAuthHandler construye el handler.
func NewAuthHandler(usuarios *memoria.UsuariosRepo, jwtCfg JWTConfig) *AuthHandler {
	return &AuthHandler{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login POST /auth/login → {access_token}.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	u := h.usuarios.PorEmail(in.Email)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "email o contraseña incorrectos"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "email o contraseña incorrectos"})
	}
	token, err := jwt.Generate(h.jwtCfg.Secret, u.ID, u.Nombre, u.Email, string(u.Rol), h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{AccessToken: token})
}

// Register POST /auth/register. Los registros nuevos entran como vendedor.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "name, email y password son requeridos"})
	}
	if in.Password != in.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "las contraseñas no coinciden"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if _, err := h.usuarios.Crear(in.Name, in.Email, string(hash), entity.RolVendedor); err != nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "el email ya está registrado"})
	}
	return c.SendStatus(fiber.StatusCreated)
}

// ForgotPassword POST /auth/forgot-password. El stub no manda mails: responde
// el mensaje de cortesía que el front muestra.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "email requerido"})
	}
	return c.JSON(dto.MensajeResponse{Message: "Si el email existe, se envió un enlace de recuperación"})
}

// ResetPassword POST /auth/reset-password. El stub acepta cualquier token no
// vacío: no hay mails de por medio, solo se valida la forma del request.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	if in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "token requerido"})
	}
	if in.Password != in.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "las contraseñas no coinciden"})
	}
	return c.JSON(dto.MensajeResponse{Message: "Contraseña actualizada"})
}

// Profile GET /auth/profile (protegido). Sirve el perfil desde los claims.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "token requerido"})
	}
	return c.JSON(dto.PerfilResponse{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	})
}
