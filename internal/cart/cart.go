package cart

import (
	"errors"
	"fmt"

	"ferreteria-elsol.ar/web/internal/catalog"
)

// ErrUnknownProduct is returned when a mutation references a product that is
// not in the current catalog.
var ErrUnknownProduct = errors.New("cart: producto no encontrado")

// StockError signals that a mutation would push an entry past the product's
// current stock. It carries the limit so handlers can surface it.
type StockError struct {
	ProductID string
	Stock     int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("cart: stock insuficiente para %s (máximo %d)", e.ProductID, e.Stock)
}

// Resolver looks a product up by id in the live catalog.
type Resolver func(id string) (catalog.Product, bool)

// Entry is one pending purchase line: product reference, quantity, and the
// price captured when the product was first added.
type Entry struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Cart is the ordered entry list, at most one entry per product. The zero
// value is an empty, usable cart.
type Cart struct {
	Entries []Entry `json:"entries"`
}

func (c *Cart) find(productID string) *Entry {
	for i := range c.Entries {
		if c.Entries[i].ProductID == productID {
			return &c.Entries[i]
		}
	}
	return nil
}

// Add creates or increments the entry for productID. It fails when the
// product is unknown or when the resulting quantity would exceed the
// product's current stock, leaving the cart unchanged.
func (c *Cart) Add(productID string, quantity int, resolve Resolver) error {
	if quantity <= 0 {
		quantity = 1
	}
	product, ok := resolve(productID)
	if !ok {
		return ErrUnknownProduct
	}
	if quantity > product.Stock {
		return &StockError{ProductID: productID, Stock: product.Stock}
	}
	if entry := c.find(productID); entry != nil {
		if entry.Quantity+quantity > product.Stock {
			return &StockError{ProductID: productID, Stock: product.Stock}
		}
		entry.Quantity += quantity
		return nil
	}
	c.Entries = append(c.Entries, Entry{
		ProductID: productID,
		Quantity:  quantity,
		Price:     product.Price,
	})
	return nil
}

// Remove unconditionally drops the entry for productID if present.
func (c *Cart) Remove(productID string) {
	for i := range c.Entries {
		if c.Entries[i].ProductID == productID {
			c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the entry quantity. Zero or negative delegates to
// Remove; a quantity above current stock fails and leaves the entry as is.
func (c *Cart) UpdateQuantity(productID string, quantity int, resolve Resolver) error {
	if quantity <= 0 {
		c.Remove(productID)
		return nil
	}
	entry := c.find(productID)
	if entry == nil {
		return ErrUnknownProduct
	}
	product, ok := resolve(productID)
	if !ok {
		return ErrUnknownProduct
	}
	if quantity > product.Stock {
		return &StockError{ProductID: productID, Stock: product.Stock}
	}
	entry.Quantity = quantity
	return nil
}

// Total sums current product price times quantity over all entries whose
// product still resolves; stale entries contribute zero.
func (c *Cart) Total(resolve Resolver) float64 {
	var total float64
	for _, entry := range c.Entries {
		if product, ok := resolve(entry.ProductID); ok {
			total += product.Price * float64(entry.Quantity)
		}
	}
	return total
}

// ItemCount sums entry quantities.
func (c *Cart) ItemCount() int {
	var count int
	for _, entry := range c.Entries {
		count += entry.Quantity
	}
	return count
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Entries = nil
}
