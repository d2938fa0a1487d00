package dto

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// ClienteDTO cliente tal como viaja por el wire.
type ClienteDTO struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	DNI      string `json:"dni"`
	Telefono string `json:"telefono,omitempty"`
}

// NuevoClienteRequest alta de cliente. El DNI es único; el backend responde
// 409 ante duplicados.
type NuevoClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Telefono string `json:"telefono,omitempty"`
	DNI      string `json:"dni" validate:"required"`
}

// ToEntity convierte al modelo de dominio.
func (c ClienteDTO) ToEntity() entity.Cliente {
	return entity.Cliente{ID: c.ID, Nombre: c.Nombre, DNI: c.DNI, Telefono: c.Telefono}
}

// ClienteFromEntity arma el DTO wire desde el dominio.
func ClienteFromEntity(c entity.Cliente) ClienteDTO {
	return ClienteDTO{ID: c.ID, Nombre: c.Nombre, DNI: c.DNI, Telefono: c.Telefono}
}

// ClientesToEntity convierte una lista completa.
func ClientesToEntity(dtos []ClienteDTO) []entity.Cliente {
	out := make([]entity.Cliente, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ToEntity())
	}
	return out
}
