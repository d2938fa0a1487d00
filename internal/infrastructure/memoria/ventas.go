package memoria

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// VentasRepo repositorio en memoria de ventas registradas.
type VentasRepo struct {
	mu     sync.RWMutex
	ventas []*entity.Venta
}

// NewVentasRepo construye el repositorio vacío.
func NewVentasRepo() *VentasRepo {
	return &VentasRepo{}
}

// Crear persiste la venta asignando IDs de cabecera y detalles.
func (r *VentasRepo) Crear(v entity.Venta) *entity.Venta {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = uuid.New().String()
	v.CreadaEn = time.Now()
	for i := range v.Detalles {
		v.Detalles[i].ID = uuid.New().String()
	}
	copia := v
	r.ventas = append(r.ventas, &copia)
	return &v
}

// Listar devuelve copias de todas las ventas.
func (r *VentasRepo) Listar() []entity.Venta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out
}

// PorID devuelve una copia de la venta; nil si no existe.
func (r *VentasRepo) PorID(id string) *entity.Venta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.ventas {
		if v.ID == id {
			copia := *v
			return &copia
		}
	}
	return nil
}

// Eliminar baja de venta; ErrNotFound si no existe.
func (r *VentasRepo) Eliminar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.ventas {
		if v.ID == id {
			r.ventas = append(r.ventas[:i], r.ventas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
