package entity

import "github.com/shopspring/decimal"

// Producto representa un snapshot del producto tal como lo sirve el catálogo.
// Precio y Stock se normalizan a numérico al entrar al modelo (el backend los
// puede devolver como string numérico). El snapshot nunca se muta localmente;
// solo se reemplaza por re-fetch.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal // nunca negativo
	Stock       int             // nunca negativo
	Imagen      string
	Categoria   *Categoria // opcional
	Marca       *Marca     // opcional
	Proveedor   *Proveedor // opcional
}

// Categoria tabla de referencia del catálogo.
type Categoria struct {
	ID     string
	Nombre string
}

// Marca tabla de referencia del catálogo.
type Marca struct {
	ID     string
	Nombre string
}

// Proveedor tabla de referencia del catálogo.
type Proveedor struct {
	ID     string
	Nombre string
}
