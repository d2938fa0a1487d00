package memoria

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// ClientesRepo repositorio en memoria de clientes. El DNI es único.
type ClientesRepo struct {
	mu       sync.RWMutex
	clientes []*entity.Cliente
}

// NewClientesRepo construye el repositorio vacío.
func NewClientesRepo() *ClientesRepo {
	return &ClientesRepo{}
}

// Listar devuelve copias de todos los clientes.
func (r *ClientesRepo) Listar() []entity.Cliente {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out
}

// PorID devuelve una copia del cliente; nil si no existe.
func (r *ClientesRepo) PorID(id string) *entity.Cliente {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clientes {
		if c.ID == id {
			copia := *c
			return &copia
		}
	}
	return nil
}

// Crear alta de cliente; DNI repetido retorna ErrDuplicado.
func (r *ClientesRepo) Crear(c entity.Cliente) (*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existente := range r.clientes {
		if existente.DNI == c.DNI {
			return nil, domain.ErrDuplicado
		}
	}
	c.ID = uuid.New().String()
	copia := c
	r.clientes = append(r.clientes, &copia)
	return &c, nil
}

// Actualizar edita nombre/teléfono/dni; ErrNotFound si no existe, ErrDuplicado
// si el DNI nuevo choca con otro cliente.
func (r *ClientesRepo) Actualizar(id string, c entity.Cliente) (*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otro := range r.clientes {
		if otro.ID != id && otro.DNI == c.DNI {
			return nil, domain.ErrDuplicado
		}
	}
	for _, actual := range r.clientes {
		if actual.ID == id {
			actual.Nombre = c.Nombre
			actual.DNI = c.DNI
			actual.Telefono = c.Telefono
			copia := *actual
			return &copia, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Eliminar baja de cliente; ErrNotFound si no existe.
func (r *ClientesRepo) Eliminar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clientes {
		if c.ID == id {
			r.clientes = append(r.clientes[:i], r.clientes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
