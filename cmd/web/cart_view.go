package main

import (
	"ferreteria-elsol.ar/web/internal/cart"
	"ferreteria-elsol.ar/web/internal/catalog"
	"ferreteria-elsol.ar/web/internal/format"
)

// CartPageView aggregates the cart page data.
type CartPageView struct {
	Lines    []CartLine
	Empty    bool
	Count    int
	Total    string
	RawTotal float64
}

// CartLine is one row of the cart table. Unresolved lines reference a
// product that dropped out of the catalog since it was added; they render a
// placeholder and contribute nothing to the total.
type CartLine struct {
	ProductID  string
	Name       string
	Image      string
	Code       string
	Quantity   int
	MaxQty     int
	UnitPrice  string
	LineTotal  string
	Unresolved bool
}

// CartSummaryView backs the header badge fragment.
type CartSummaryView struct {
	Count int
	Total string
}

// buildCartPageView resolves every entry against the live catalog: prices
// come from the current product list, not the captured entry price.
func buildCartPageView(c *cart.Cart, resolve func(string) (catalog.Product, bool)) CartPageView {
	view := CartPageView{
		Count: c.ItemCount(),
		Empty: len(c.Entries) == 0,
	}
	for _, entry := range c.Entries {
		line := CartLine{
			ProductID: entry.ProductID,
			Quantity:  entry.Quantity,
		}
		if p, ok := resolve(entry.ProductID); ok {
			line.Name = p.Name
			line.Image = p.Image
			line.Code = p.Code
			line.MaxQty = p.Stock
			line.UnitPrice = format.Price(p.Price)
			line.LineTotal = format.Price(p.Price * float64(entry.Quantity))
		} else {
			line.Name = "Producto no encontrado"
			line.Image = catalog.PlaceholderImage
			line.Unresolved = true
		}
		view.Lines = append(view.Lines, line)
	}
	view.RawTotal = c.Total(resolve)
	view.Total = format.Price(view.RawTotal)
	return view
}

func buildCartSummary(c *cart.Cart, resolve func(string) (catalog.Product, bool)) CartSummaryView {
	return CartSummaryView{
		Count: c.ItemCount(),
		Total: format.Price(c.Total(resolve)),
	}
}
