package entity

// Rol es el rol de un usuario del sistema. Enum cerrado: el backend solo
// emite admin y vendedor.
type Rol string

const (
	RolAdmin    Rol = "admin"
	RolVendedor Rol = "vendedor"
)

// Valido reporta si el rol es uno de los conocidos.
func (r Rol) Valido() bool {
	switch r {
	case RolAdmin, RolVendedor:
		return true
	}
	return false
}

// Usuario representa el perfil del usuario autenticado (GET /auth/profile).
type Usuario struct {
	ID     string
	Nombre string
	Email  string
	Rol    Rol
}
