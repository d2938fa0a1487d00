package api

import (
	"context"

	appcliente "github.com/jhoicas/pos-ventas/internal/application/cliente"
	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

var _ appcliente.API = (*Client)(nil)

// ListarClientes GET /cliente.
func (c *Client) ListarClientes(ctx context.Context) ([]entity.Cliente, error) {
	var out []dto.ClienteDTO
	if err := c.get(ctx, "/cliente", &out, "Error al cargar los clientes"); err != nil {
		return nil, err
	}
	return dto.ClientesToEntity(out), nil
}

// ClientePorID GET /cliente/:id.
func (c *Client) ClientePorID(ctx context.Context, id string) (*entity.Cliente, error) {
	var out dto.ClienteDTO
	if err := c.get(ctx, "/cliente/"+id, &out, "Error al obtener el cliente"); err != nil {
		return nil, err
	}
	cl := out.ToEntity()
	return &cl, nil
}

// CrearCliente POST /cliente. El backend responde 409 ante DNI duplicado.
func (c *Client) CrearCliente(ctx context.Context, in dto.NuevoClienteRequest) (*entity.Cliente, error) {
	var out dto.ClienteDTO
	if err := c.post(ctx, "/cliente", in, &out, "Error al registrar cliente"); err != nil {
		return nil, err
	}
	cl := out.ToEntity()
	return &cl, nil
}

// ActualizarCliente PATCH /cliente/:id.
func (c *Client) ActualizarCliente(ctx context.Context, id string, in dto.NuevoClienteRequest) (*entity.Cliente, error) {
	var out dto.ClienteDTO
	if err := c.patch(ctx, "/cliente/"+id, in, &out, "Error al actualizar cliente"); err != nil {
		return nil, err
	}
	cl := out.ToEntity()
	return &cl, nil
}

// EliminarCliente DELETE /cliente/:id.
func (c *Client) EliminarCliente(ctx context.Context, id string) error {
	return c.delete(ctx, "/cliente/"+id, "Error al eliminar cliente")
}
