package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"ferreteria-elsol.ar/web/internal/catalog"
)

func testResolver() Resolver {
	products := map[string]catalog.Product{
		"martillo": {ID: "martillo", Name: "Martillo", Price: 899.99, Stock: 25},
		"taladro":  {ID: "taladro", Name: "Taladro", Price: 3499.99, Stock: 2},
	}
	return func(id string) (catalog.Product, bool) {
		p, ok := products[id]
		return p, ok
	}
}

func TestAddCreatesAndIncrements(t *testing.T) {
	t.Parallel()

	var c Cart
	resolve := testResolver()

	require.NoError(t, c.Add("martillo", 2, resolve))
	require.Len(t, c.Entries, 1)
	require.Equal(t, 2, c.Entries[0].Quantity)
	require.Equal(t, 899.99, c.Entries[0].Price)

	// same product merges into the existing entry
	require.NoError(t, c.Add("martillo", 3, resolve))
	require.Len(t, c.Entries, 1)
	require.Equal(t, 5, c.Entries[0].Quantity)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	var c Cart
	require.NoError(t, c.Add("martillo", 0, testResolver()))
	require.Equal(t, 1, c.Entries[0].Quantity)

	require.NoError(t, c.Add("martillo", -4, testResolver()))
	require.Equal(t, 2, c.Entries[0].Quantity)
}

func TestAddUnknownProduct(t *testing.T) {
	t.Parallel()

	var c Cart
	err := c.Add("fantasma", 1, testResolver())
	require.ErrorIs(t, err, ErrUnknownProduct)
	require.Empty(t, c.Entries)
}

func TestAddEnforcesStock(t *testing.T) {
	t.Parallel()

	var c Cart
	resolve := testResolver()

	err := c.Add("taladro", 3, resolve)
	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, 2, stockErr.Stock)
	require.Empty(t, c.Entries)

	// incrementing past stock fails and leaves the entry untouched
	require.NoError(t, c.Add("taladro", 2, resolve))
	err = c.Add("taladro", 1, resolve)
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, 2, c.Entries[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	var c Cart
	resolve := testResolver()
	require.NoError(t, c.Add("martillo", 2, resolve))

	require.NoError(t, c.UpdateQuantity("martillo", 7, resolve))
	require.Equal(t, 7, c.Entries[0].Quantity)

	// above stock: error, quantity unchanged
	var stockErr *StockError
	require.ErrorAs(t, c.UpdateQuantity("martillo", 26, resolve), &stockErr)
	require.Equal(t, 7, c.Entries[0].Quantity)

	// zero removes the entry
	require.NoError(t, c.UpdateQuantity("martillo", 0, resolve))
	require.Empty(t, c.Entries)

	// no entry to update
	require.ErrorIs(t, c.UpdateQuantity("martillo", 1, resolve), ErrUnknownProduct)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	var c Cart
	resolve := testResolver()
	require.NoError(t, c.Add("martillo", 1, resolve))
	require.NoError(t, c.Add("taladro", 1, resolve))

	c.Remove("martillo")
	require.Len(t, c.Entries, 1)
	require.Equal(t, "taladro", c.Entries[0].ProductID)

	// removing something absent is a no-op
	c.Remove("fantasma")
	require.Len(t, c.Entries, 1)
}

func TestTotalUsesLivePricesAndSkipsStaleEntries(t *testing.T) {
	t.Parallel()

	var c Cart
	resolve := testResolver()
	require.NoError(t, c.Add("martillo", 2, resolve))
	require.NoError(t, c.Add("taladro", 1, resolve))

	require.InDelta(t, 2*899.99+3499.99, c.Total(resolve), 0.001)

	// a product dropped from the catalog contributes zero, even though the
	// entry still carries its captured price
	c.Entries = append(c.Entries, Entry{ProductID: "retirado", Quantity: 4, Price: 100})
	require.InDelta(t, 2*899.99+3499.99, c.Total(resolve), 0.001)
}

func TestItemCountAndClear(t *testing.T) {
	t.Parallel()

	var c Cart
	resolve := testResolver()
	require.NoError(t, c.Add("martillo", 3, resolve))
	require.NoError(t, c.Add("taladro", 2, resolve))
	require.Equal(t, 5, c.ItemCount())

	c.Clear()
	require.Zero(t, c.ItemCount())
	require.Empty(t, c.Entries)
}

func TestCartSurvivesJSONRoundTrip(t *testing.T) {
	t.Parallel()

	var c Cart
	require.NoError(t, c.Add("martillo", 2, testResolver()))

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"productId":"martillo"`)

	var back Cart
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, c, back)
}
