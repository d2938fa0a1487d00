package cliente

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

type apiFake struct {
	clientes []entity.Cliente
	creados  int
}

func (a *apiFake) ListarClientes(context.Context) ([]entity.Cliente, error) { return a.clientes, nil }
func (a *apiFake) ClientePorID(_ context.Context, id string) (*entity.Cliente, error) {
	for _, c := range a.clientes {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (a *apiFake) CrearCliente(_ context.Context, in dto.NuevoClienteRequest) (*entity.Cliente, error) {
	a.creados++
	return &entity.Cliente{ID: "nuevo", Nombre: in.Nombre, DNI: in.DNI}, nil
}
func (a *apiFake) ActualizarCliente(_ context.Context, id string, in dto.NuevoClienteRequest) (*entity.Cliente, error) {
	return &entity.Cliente{ID: id, Nombre: in.Nombre, DNI: in.DNI}, nil
}
func (a *apiFake) EliminarCliente(context.Context, string) error { return nil }

func clientesDemo() []entity.Cliente {
	return []entity.Cliente{
		{ID: "c1", Nombre: "Juan Pérez", DNI: "30111222"},
		{ID: "c2", Nombre: "María Gómez", DNI: "28999888"},
		{ID: "c3", Nombre: "Pedro Pérez", DNI: "30555666"},
	}
}

func TestFiltrar_PorDNI(t *testing.T) {
	out := Filtrar(clientesDemo(), "301", FiltroDNI)
	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].ID)
	assert.Equal(t, "c3", out[1].ID)
}

func TestFiltrar_PorNombre_InsensibleATildes(t *testing.T) {
	out := Filtrar(clientesDemo(), "perez", FiltroNombre)
	require.Len(t, out, 2)

	out = Filtrar(clientesDemo(), "GÓMEZ", FiltroNombre)
	require.Len(t, out, 1)
	assert.Equal(t, "c2", out[0].ID)
}

func TestFiltrar_VacioDevuelveTodo(t *testing.T) {
	assert.Len(t, Filtrar(clientesDemo(), "", FiltroDNI), 3)
	assert.Len(t, Filtrar(clientesDemo(), "   ", FiltroDNI), 3, "solo espacios equivale a filtro vacío")
}

func TestCrear_ValidaAntesDeLaRed(t *testing.T) {
	api := &apiFake{}
	uc := NewUseCase(api)

	_, err := uc.Crear(context.Background(), dto.NuevoClienteRequest{Nombre: "", DNI: "123"})
	assert.ErrorIs(t, err, domain.ErrValidacion)
	assert.Zero(t, api.creados, "un request inválido no viaja al backend")

	_, err = uc.Crear(context.Background(), dto.NuevoClienteRequest{Nombre: "Juan", DNI: ""})
	assert.ErrorIs(t, err, domain.ErrValidacion)

	creado, err := uc.Crear(context.Background(), dto.NuevoClienteRequest{Nombre: "Juan", DNI: "123"})
	require.NoError(t, err)
	assert.Equal(t, "nuevo", creado.ID)
	assert.Equal(t, 1, api.creados)
}

func TestActualizarYEliminar_RequierenID(t *testing.T) {
	uc := NewUseCase(&apiFake{})

	_, err := uc.Actualizar(context.Background(), "", dto.NuevoClienteRequest{Nombre: "Juan", DNI: "123"})
	assert.ErrorIs(t, err, domain.ErrValidacion)

	assert.ErrorIs(t, uc.Eliminar(context.Background(), ""), domain.ErrValidacion)
	assert.NoError(t, uc.Eliminar(context.Background(), "c1"))
}
