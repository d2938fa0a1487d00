package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/memoria"
)

// ClienteHandler CRUD de clientes del stub.
type ClienteHandler struct {
	repo *memoria.ClientesRepo
}

// NewClienteHandler construye el handler.
func NewClienteHandler(repo *memoria.ClientesRepo) *ClienteHandler {
	return &ClienteHandler{repo: repo}
}

// Listar GET /cliente.
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	clientes := h.repo.Listar()
	out := make([]dto.ClienteDTO, 0, len(clientes))
	for _, cl := range clientes {
		out = append(out, dto.ClienteFromEntity(cl))
	}
	return c.JSON(out)
}

// PorID GET /cliente/:id.
func (h *ClienteHandler) PorID(c *fiber.Ctx) error {
	cl := h.repo.PorID(c.Params("id"))
	if cl == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "cliente no encontrado"})
	}
	return c.JSON(dto.ClienteFromEntity(*cl))
}

// Crear POST /cliente. El DNI es único: 409 ante duplicados.
func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.NuevoClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.DNI == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "nombre y dni son requeridos"})
	}
	creado, err := h.repo.Crear(entity.Cliente{Nombre: in.Nombre, DNI: in.DNI, Telefono: in.Telefono})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "ya existe un cliente con ese dni"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "error al crear el cliente"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ClienteFromEntity(*creado))
}

// Actualizar PATCH /cliente/:id.
func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.NuevoClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	actualizado, err := h.repo.Actualizar(c.Params("id"), entity.Cliente{Nombre: in.Nombre, DNI: in.DNI, Telefono: in.Telefono})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "ya existe un cliente con ese dni"})
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "cliente no encontrado"})
	}
	return c.JSON(dto.ClienteFromEntity(*actualizado))
}

// Eliminar DELETE /cliente/:id.
func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.repo.Eliminar(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "cliente no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
