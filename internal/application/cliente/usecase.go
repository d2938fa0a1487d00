// Package cliente implementa el registro de clientes: listado, filtro y CRUD.
package cliente

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/pkg/texto"
)

// TipoFiltro campo por el que se filtra el listado de clientes.
type TipoFiltro string

const (
	FiltroDNI    TipoFiltro = "dni"
	FiltroNombre TipoFiltro = "nombre"
)

// API operaciones del registro de clientes contra el backend.
type API interface {
	ListarClientes(ctx context.Context) ([]entity.Cliente, error)
	ClientePorID(ctx context.Context, id string) (*entity.Cliente, error)
	CrearCliente(ctx context.Context, in dto.NuevoClienteRequest) (*entity.Cliente, error)
	ActualizarCliente(ctx context.Context, id string, in dto.NuevoClienteRequest) (*entity.Cliente, error)
	EliminarCliente(ctx context.Context, id string) error
}

// UseCase registro de clientes. La validación de formularios corre acá,
// antes de cualquier llamada de red; la unicidad del DNI la garantiza el
// backend (409).
type UseCase struct {
	api      API
	validate *validator.Validate
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API) *UseCase {
	return &UseCase{api: api, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Listar trae todos los clientes.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Cliente, error) {
	return uc.api.ListarClientes(ctx)
}

// PorID trae un cliente puntual.
func (uc *UseCase) PorID(ctx context.Context, id string) (*entity.Cliente, error) {
	return uc.api.ClientePorID(ctx, id)
}

// Filtrar aplica el filtro por dni o nombre sobre una lista ya cargada,
// insensible a tildes y mayúsculas. Filtro vacío devuelve todo.
func Filtrar(clientes []entity.Cliente, filtro string, tipo TipoFiltro) []entity.Cliente {
	if texto.Fold(filtro) == "" {
		return clientes
	}
	out := make([]entity.Cliente, 0, len(clientes))
	for _, c := range clientes {
		var campo string
		switch tipo {
		case FiltroNombre:
			campo = c.Nombre
		default:
			campo = c.DNI
		}
		if texto.Contiene(campo, filtro) {
			out = append(out, c)
		}
	}
	return out
}

// Crear valida y da de alta un cliente.
func (uc *UseCase) Crear(ctx context.Context, in dto.NuevoClienteRequest) (*entity.Cliente, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidacion, err)
	}
	return uc.api.CrearCliente(ctx, in)
}

// Actualizar valida y edita un cliente existente.
func (uc *UseCase) Actualizar(ctx context.Context, id string, in dto.NuevoClienteRequest) (*entity.Cliente, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrValidacion)
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidacion, err)
	}
	return uc.api.ActualizarCliente(ctx, id, in)
}

// Eliminar borra un cliente.
func (uc *UseCase) Eliminar(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrValidacion)
	}
	return uc.api.EliminarCliente(ctx, id)
}
