package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	appauth "github.com/jhoicas/pos-ventas/internal/application/auth"
	appcatalogo "github.com/jhoicas/pos-ventas/internal/application/catalogo"
	appcliente "github.com/jhoicas/pos-ventas/internal/application/cliente"
	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/application/session"
	appventa "github.com/jhoicas/pos-ventas/internal/application/venta"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/api"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/store"
	"github.com/jhoicas/pos-ventas/pkg/config"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// terminal agrupa el estado del punto de venta interactivo.
type terminal struct {
	in     *bufio.Reader
	sesion *session.Store
	auth   *appauth.UseCase
	cat    *appcatalogo.UseCase
	cli    *appcliente.UseCase
	venta  *appventa.RegistrarVentaUseCase
	pdf    *pdf.ComprobanteGenerator
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "warn", // la salida del terminal es la UI; el log queda para problemas
	})

	tokens := store.NewTokenFile(cfg.API.TokenPath)

	// La sesión y el cliente REST se refieren mutuamente: el cliente toma el
	// token de la sesión y un 401 con ese token la invalida.
	var sesion *session.Store
	apiClient := api.New(cfg.API.BaseURL, cfg.API.Timeout(), log,
		api.WithTokenSource(func() string { return sesion.Token() }),
		api.WithOnNoAutorizado(func() { sesion.CerrarSesion() }),
	)
	sesion = session.NewStore(apiClient, tokens, log)

	catalogoUC := appcatalogo.NewUseCase(apiClient, sesion)
	t := &terminal{
		in:     bufio.NewReader(os.Stdin),
		sesion: sesion,
		auth:   appauth.NewUseCase(apiClient, sesion),
		cat:    catalogoUC,
		cli:    appcliente.NewUseCase(apiClient),
		venta:  appventa.NewRegistrarVentaUseCase(sesion, apiClient, catalogoUC, log),
		pdf:    pdf.NewComprobanteGenerator(cfg.App.Name),
	}

	ctx := context.Background()
	sesion.Restaurar(ctx)
	if sesion.EstaAutenticado() {
		fmt.Printf("Sesión restaurada: %s (%s)\n", sesion.Usuario().Nombre, sesion.Usuario().Rol)
		if err := t.cat.Cargar(ctx); err != nil {
			fmt.Println(err)
		}
	}

	t.loop(ctx)
}

func (t *terminal) loop(ctx context.Context) {
	fmt.Println("Punto de venta. Escriba 'ayuda' para ver los comandos.")
	for {
		fmt.Print("> ")
		linea, err := t.in.ReadString('\n')
		if err != nil {
			return
		}
		campos := strings.Fields(linea)
		if len(campos) == 0 {
			continue
		}
		cmd, args := campos[0], campos[1:]

		cctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		switch cmd {
		case "ayuda":
			t.ayuda()
		case "login":
			t.login(cctx)
		case "registrar":
			t.registrar(cctx)
		case "logout":
			t.sesion.CerrarSesion()
			t.venta.Descartar()
			fmt.Println("Sesión cerrada.")
		case "perfil":
			t.perfil()
		case "productos":
			t.productos(cctx, strings.Join(args, " "))
		case "clientes":
			t.clientes(cctx, strings.Join(args, " "))
		case "cliente":
			t.seleccionarCliente(cctx, args)
		case "agregar":
			t.agregar(args)
		case "cantidad":
			t.cantidad(args)
		case "quitar":
			t.quitar(args)
		case "carrito":
			t.mostrarCarrito()
		case "vender":
			t.vender(cctx)
		case "descartar":
			t.venta.Descartar()
			fmt.Println("Venta descartada.")
		case "salir":
			cancel()
			return
		default:
			fmt.Println("Comando desconocido. Escriba 'ayuda'.")
		}
		cancel()
	}
}

func (t *terminal) ayuda() {
	fmt.Print(`Comandos:
  login                   iniciar sesión
  registrar               dar de alta un usuario
  logout                  cerrar sesión
  perfil                  mostrar el usuario activo
  productos [texto]       listar/filtrar el catálogo
  clientes [texto]        listar/filtrar clientes por dni
  cliente <id>            seleccionar el cliente de la venta
  agregar <id_producto>   sumar una unidad al carrito
  cantidad <id> <n>       fijar la cantidad de una línea
  quitar <id_producto>    quitar una línea
  carrito                 mostrar la venta en curso
  vender                  registrar la venta y emitir comprobante
  descartar               abandonar la venta en curso
  salir
`)
}

func (t *terminal) leer(prompt string) string {
	fmt.Print(prompt)
	linea, _ := t.in.ReadString('\n')
	return strings.TrimSpace(linea)
}

func (t *terminal) login(ctx context.Context) {
	email := t.leer("Email: ")
	password := t.leer("Contraseña: ")
	if err := t.auth.IniciarSesion(ctx, email, password); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Bienvenido, %s (%s)\n", t.sesion.Usuario().Nombre, t.sesion.Usuario().Rol)
	if err := t.cat.Cargar(ctx); err != nil {
		fmt.Println(err)
	}
}

func (t *terminal) registrar(ctx context.Context) {
	in := dto.RegisterRequest{
		Name:  t.leer("Nombre: "),
		Email: t.leer("Email: "),
	}
	in.Password = t.leer("Contraseña: ")
	in.ConfirmPassword = t.leer("Repetir contraseña: ")
	if err := t.auth.Registrar(ctx, in); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Usuario creado. Inicie sesión con 'login'.")
}

func (t *terminal) perfil() {
	if !t.sesion.EstaAutenticado() {
		fmt.Println("Sin sesión.")
		return
	}
	u := t.sesion.Usuario()
	fmt.Printf("%s <%s> rol=%s\n", u.Nombre, u.Email, u.Rol)
}

func (t *terminal) productos(ctx context.Context, filtro string) {
	if len(t.cat.Productos()) == 0 {
		if err := t.cat.Cargar(ctx); err != nil {
			fmt.Println(err)
			return
		}
	}
	productos := t.cat.FiltrarStock(appcatalogo.FiltroStock{Nombre: filtro})
	for _, p := range productos {
		fmt.Printf("%-36s  %-24s  $%-10s  stock %d\n", p.ID, p.Nombre, p.Precio.StringFixed(2), p.Stock)
	}
	if len(productos) == 0 {
		fmt.Println("Sin resultados.")
	}
}

func (t *terminal) clientes(ctx context.Context, filtro string) {
	lista, err := t.cli.Listar(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	t.venta.FijarFiltro(filtro)
	for _, c := range appcliente.Filtrar(lista, filtro, appcliente.FiltroDNI) {
		fmt.Printf("%-36s  %-24s  dni %s\n", c.ID, c.Nombre, c.DNI)
	}
}

func (t *terminal) seleccionarCliente(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Uso: cliente <id>")
		return
	}
	c, err := t.cli.PorID(ctx, args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	t.venta.SeleccionarCliente(c)
	fmt.Printf("Cliente seleccionado: %s (dni %s)\n", c.Nombre, c.DNI)
}

func (t *terminal) agregar(args []string) {
	if len(args) != 1 {
		fmt.Println("Uso: agregar <id_producto>")
		return
	}
	p, ok := t.cat.BuscarPorID(args[0])
	if !ok {
		fmt.Println("Producto no encontrado en el catálogo.")
		return
	}
	if err := t.venta.Carrito().Agregar(p); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s x%d en el carrito.\n", p.Nombre, t.venta.Carrito().Cantidad(p.ID))
}

func (t *terminal) cantidad(args []string) {
	if len(args) != 2 {
		fmt.Println("Uso: cantidad <id_producto> <n>")
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("La cantidad debe ser un número.")
		return
	}
	t.venta.Carrito().CambiarCantidad(args[0], n)
	t.mostrarCarrito()
}

func (t *terminal) quitar(args []string) {
	if len(args) != 1 {
		fmt.Println("Uso: quitar <id_producto>")
		return
	}
	t.venta.Carrito().Quitar(args[0])
	t.mostrarCarrito()
}

func (t *terminal) mostrarCarrito() {
	lineas := t.venta.Carrito().Lineas()
	if len(lineas) == 0 {
		fmt.Println("Carrito vacío.")
		return
	}
	for _, l := range lineas {
		fmt.Printf("%-24s  %d x $%s = $%s\n", l.Nombre, l.Cantidad, l.Precio.StringFixed(2), l.Subtotal().StringFixed(2))
	}
	if c := t.venta.ClienteSeleccionado(); c != nil {
		fmt.Printf("Cliente: %s (dni %s)\n", c.Nombre, c.DNI)
	}
	fmt.Printf("Total: $%s\n", t.venta.Carrito().Total().StringFixed(2))
}

func (t *terminal) vender(ctx context.Context) {
	venta, err := t.venta.Registrar(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Venta %s registrada. Total $%s\n", venta.ID, venta.PrecioTotal.StringFixed(2))

	contenido, err := t.pdf.Generar(venta)
	if err != nil {
		fmt.Println("No se pudo generar el comprobante:", err)
		return
	}
	nombre := "comprobante-" + venta.ID + ".pdf"
	if err := os.WriteFile(nombre, contenido, 0o644); err != nil {
		fmt.Println("No se pudo guardar el comprobante:", err)
		return
	}
	fmt.Println("Comprobante:", nombre)
}
