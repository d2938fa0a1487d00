package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/memoria"
)

// VentaHandler alta y consulta de ventas del stub. El alta valida cliente y
// stock contra los repositorios en memoria igual que lo haría el backend real.
type VentaHandler struct {
	ventas   *memoria.VentasRepo
	clientes *memoria.ClientesRepo
	catalogo *memoria.CatalogoRepo
}

// NewVentaHandler construye el handler.
func NewVentaHandler(ventas *memoria.VentasRepo, clientes *memoria.ClientesRepo, catalogo *memoria.CatalogoRepo) *VentaHandler {
	return &VentaHandler{ventas: ventas, clientes: clientes, catalogo: catalogo}
}

// Crear POST /venta. Descuenta stock por línea; ante stock insuficiente
// responde 409 con el stock vigente en el mensaje.
func (h *VentaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	if in.Venta.IDCliente == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "id_cliente es requerido"})
	}
	if len(in.Detalles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "la venta no tiene detalles"})
	}
	cliente := h.clientes.PorID(in.Venta.IDCliente)
	if cliente == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "cliente no encontrado"})
	}

	descuentos := make([]memoria.Descuento, 0, len(in.Detalles))
	for _, d := range in.Detalles {
		if d.Cantidad < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cantidad debe ser al menos 1"})
		}
		descuentos = append(descuentos, memoria.Descuento{IDProducto: d.IDProducto, Cantidad: d.Cantidad})
	}
	// El lote valida y descuenta bajo el mismo lock: o se descuenta todo o nada.
	productos, err := h.catalogo.DescontarStockLote(descuentos)
	if err != nil {
		var stockErr *domain.StockExcedidoError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Message: stockErr.Nombre + " no tiene stock suficiente",
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "producto no encontrado"})
	}

	venta := entity.Venta{
		IDCliente:   cliente.ID,
		Cliente:     cliente,
		PrecioTotal: in.Venta.PrecioTotal,
	}
	total := decimal.Zero
	for i, d := range in.Detalles {
		venta.Detalles = append(venta.Detalles, entity.DetalleVenta{
			IDProducto:     d.IDProducto,
			NombreProducto: productos[i].Nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: productos[i].Precio,
			PrecioSubTotal: d.PrecioSubTotal,
		})
		total = total.Add(d.PrecioSubTotal)
	}
	if venta.PrecioTotal.IsZero() {
		venta.PrecioTotal = total
	}
	creada := h.ventas.Crear(venta)
	return c.Status(fiber.StatusCreated).JSON(dto.VentaFromEntity(*creada))
}

// Listar GET /venta.
func (h *VentaHandler) Listar(c *fiber.Ctx) error {
	ventas := h.ventas.Listar()
	out := make([]dto.VentaDTO, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, dto.VentaFromEntity(v))
	}
	return c.JSON(out)
}

// PorID GET /venta/:id.
func (h *VentaHandler) PorID(c *fiber.Ctx) error {
	v := h.ventas.PorID(c.Params("id"))
	if v == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "venta no encontrada"})
	}
	return c.JSON(dto.VentaFromEntity(*v))
}

// Eliminar DELETE /venta/:id (solo admin).
func (h *VentaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.ventas.Eliminar(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "venta no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
