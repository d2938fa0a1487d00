package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/memoria"
)

// RouterDeps dependencias para el router del stub.
type RouterDeps struct {
	Repos *memoria.Repos
	JWT   JWTConfig
}

// Router registra las rutas del backend de desarrollo. El contrato (paths,
// payloads y códigos de estado) es el que consume el cliente de este módulo.
func Router(app *fiber.App, deps RouterDeps) {
	soloAdmin := RequireRole(string(entity.RolAdmin))

	// Auth (público)
	authHandler := NewAuthHandler(deps.Repos.Usuarios, deps.JWT)
	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWT.Secret))
	protected.Get("/auth/profile", authHandler.Profile)

	// Catálogo: lectura para cualquier usuario autenticado, escritura solo admin
	catalogoHandler := NewCatalogoHandler(deps.Repos.Catalogo)
	productos := protected.Group("/producto")
	productos.Get("/", catalogoHandler.ListarProductos)
	productos.Get("/:id", catalogoHandler.ProductoPorID)
	productos.Post("/", soloAdmin, catalogoHandler.CrearProducto)
	productos.Patch("/:id", soloAdmin, catalogoHandler.ActualizarProducto)
	productos.Delete("/:id", soloAdmin, catalogoHandler.EliminarProducto)

	categorias := protected.Group("/categoria")
	categorias.Get("/", catalogoHandler.ListarCategorias)
	categorias.Post("/", soloAdmin, catalogoHandler.CrearCategoria)

	marcas := protected.Group("/marca")
	marcas.Get("/", catalogoHandler.ListarMarcas)
	marcas.Post("/", soloAdmin, catalogoHandler.CrearMarca)

	proveedores := protected.Group("/proveedor")
	proveedores.Get("/", catalogoHandler.ListarProveedores)
	proveedores.Post("/", soloAdmin, catalogoHandler.CrearProveedor)

	// Clientes (protegido)
	clienteHandler := NewClienteHandler(deps.Repos.Clientes)
	clientes := protected.Group("/cliente")
	clientes.Get("/", clienteHandler.Listar)
	clientes.Get("/:id", clienteHandler.PorID)
	clientes.Post("/", clienteHandler.Crear)
	clientes.Patch("/:id", clienteHandler.Actualizar)
	clientes.Delete("/:id", clienteHandler.Eliminar)

	// Ventas (protegido)
	ventaHandler := NewVentaHandler(deps.Repos.Ventas, deps.Repos.Clientes, deps.Repos.Catalogo)
	ventas := protected.Group("/venta")
	ventas.Post("/", ventaHandler.Crear)
	ventas.Get("/", ventaHandler.Listar)
	ventas.Get("/:id", ventaHandler.PorID)
	ventas.Delete("/:id", soloAdmin, ventaHandler.Eliminar)
}
