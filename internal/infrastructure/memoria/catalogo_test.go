package memoria

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

func repoConProductos(t *testing.T, productos ...entity.Producto) *CatalogoRepo {
	t.Helper()
	repo := NewCatalogoRepo()
	for _, p := range productos {
		repo.CrearProducto(p)
	}
	return repo
}

func productoDemo(nombre string, stock int) entity.Producto {
	return entity.Producto{
		Nombre: nombre,
		Precio: decimal.NewFromInt(100),
		Stock:  stock,
	}
}

func TestCatalogoRepo_DescontarStockLote_DescuentaTodo(t *testing.T) {
	repo := repoConProductos(t, productoDemo("Agua", 10), productoDemo("Leche", 5))
	lista := repo.ListarProductos()

	previos, err := repo.DescontarStockLote([]Descuento{
		{IDProducto: lista[0].ID, Cantidad: 4},
		{IDProducto: lista[1].ID, Cantidad: 5},
	})
	require.NoError(t, err)

	// Las copias devueltas conservan el stock previo al descuento.
	require.Len(t, previos, 2)
	assert.Equal(t, 10, previos[0].Stock)
	assert.Equal(t, 5, previos[1].Stock)

	assert.Equal(t, 6, repo.ProductoPorID(lista[0].ID).Stock)
	assert.Equal(t, 0, repo.ProductoPorID(lista[1].ID).Stock)
}

// Si una línea no alcanza, ninguna se descuenta.
func TestCatalogoRepo_DescontarStockLote_FallaSinDescontarNada(t *testing.T) {
	repo := repoConProductos(t, productoDemo("Agua", 10), productoDemo("Leche", 1))
	lista := repo.ListarProductos()

	_, err := repo.DescontarStockLote([]Descuento{
		{IDProducto: lista[0].ID, Cantidad: 4},
		{IDProducto: lista[1].ID, Cantidad: 2},
	})
	require.Error(t, err)

	var stockErr *domain.StockExcedidoError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Leche", stockErr.Nombre)
	assert.Equal(t, 1, stockErr.StockActual)

	assert.Equal(t, 10, repo.ProductoPorID(lista[0].ID).Stock, "la línea previa no debe quedar descontada")
	assert.Equal(t, 1, repo.ProductoPorID(lista[1].ID).Stock)
}

func TestCatalogoRepo_DescontarStockLote_ProductoInexistente(t *testing.T) {
	repo := repoConProductos(t, productoDemo("Agua", 10))
	lista := repo.ListarProductos()

	_, err := repo.DescontarStockLote([]Descuento{
		{IDProducto: lista[0].ID, Cantidad: 1},
		{IDProducto: "fantasma", Cantidad: 1},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, repo.ProductoPorID(lista[0].ID).Stock)
}

// Varias líneas del mismo producto se validan de forma acumulada.
func TestCatalogoRepo_DescontarStockLote_ProductoRepetido(t *testing.T) {
	repo := repoConProductos(t, productoDemo("Agua", 5))
	id := repo.ListarProductos()[0].ID

	_, err := repo.DescontarStockLote([]Descuento{
		{IDProducto: id, Cantidad: 3},
		{IDProducto: id, Cantidad: 3},
	})
	require.Error(t, err)
	var stockErr *domain.StockExcedidoError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.StockActual, "la segunda línea ve el stock menos lo reservado")
	assert.Equal(t, 5, repo.ProductoPorID(id).Stock)
}

// Dos ventas concurrentes por el mismo stock: gana exactamente una, el stock
// nunca queda negativo ni a medio descontar.
func TestCatalogoRepo_DescontarStockLote_Concurrente(t *testing.T) {
	repo := repoConProductos(t, productoDemo("Agua", 3))
	id := repo.ListarProductos()[0].ID

	var wg sync.WaitGroup
	resultados := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, resultados[i] = repo.DescontarStockLote([]Descuento{{IDProducto: id, Cantidad: 2}})
		}(i)
	}
	wg.Wait()

	exitos := 0
	for _, err := range resultados {
		if err == nil {
			exitos++
		} else {
			assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
		}
	}
	assert.Equal(t, 1, exitos)
	assert.Equal(t, 1, repo.ProductoPorID(id).Stock)
}
