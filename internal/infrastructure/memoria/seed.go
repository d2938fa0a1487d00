package memoria

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// Repos agrupa los repositorios del stub.
type Repos struct {
	Usuarios *UsuariosRepo
	Catalogo *CatalogoRepo
	Clientes *ClientesRepo
	Ventas   *VentasRepo
}

// NewRepos construye todos los repositorios vacíos.
func NewRepos() *Repos {
	return &Repos{
		Usuarios: NewUsuariosRepo(),
		Catalogo: NewCatalogoRepo(),
		Clientes: NewClientesRepo(),
		Ventas:   NewVentasRepo(),
	}
}

// Seed carga datos de demostración: dos usuarios (admin@pos.local / admin123,
// vendedor@pos.local / venta123), catálogo chico y un par de clientes.
func (r *Repos) Seed() error {
	for _, u := range []struct {
		nombre, email, pass string
		rol                 entity.Rol
	}{
		{"Administrador", "admin@pos.local", "admin123", entity.RolAdmin},
		{"Vendedor Demo", "vendedor@pos.local", "venta123", entity.RolVendedor},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.pass), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := r.Usuarios.Crear(u.nombre, u.email, string(hash), u.rol); err != nil {
			return err
		}
	}

	bebidas := r.Catalogo.CrearCategoria("Bebidas")
	almacen := r.Catalogo.CrearCategoria("Almacén")
	marca := r.Catalogo.CrearMarca("La Serenísima")
	proveedor := r.Catalogo.CrearProveedor("Distribuidora Norte")

	r.Catalogo.CrearProducto(entity.Producto{
		Nombre:    "Agua mineral 1.5L",
		Precio:    decimal.NewFromFloat(850.50),
		Stock:     24,
		Categoria: &bebidas,
		Proveedor: &proveedor,
	})
	r.Catalogo.CrearProducto(entity.Producto{
		Nombre:    "Leche entera 1L",
		Precio:    decimal.NewFromFloat(1200),
		Stock:     12,
		Categoria: &almacen,
		Marca:     &marca,
		Proveedor: &proveedor,
	})
	r.Catalogo.CrearProducto(entity.Producto{
		Nombre:    "Yerba mate 500g",
		Precio:    decimal.NewFromFloat(3400.25),
		Stock:     3,
		Categoria: &almacen,
	})

	if _, err := r.Clientes.Crear(entity.Cliente{Nombre: "Juan Pérez", DNI: "30111222", Telefono: "11-5555-0001"}); err != nil {
		return err
	}
	if _, err := r.Clientes.Crear(entity.Cliente{Nombre: "María Gómez", DNI: "28999888", Telefono: "11-5555-0002"}); err != nil {
		return err
	}
	return nil
}
