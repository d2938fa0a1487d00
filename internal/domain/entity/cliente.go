package entity

// Cliente representa un cliente del registro. El flujo de venta lo selecciona
// (referencia), nunca lo muta; el DNI es único y lo garantiza el backend.
type Cliente struct {
	ID       string
	Nombre   string
	DNI      string
	Telefono string
}
