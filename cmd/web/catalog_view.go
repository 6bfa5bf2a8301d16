package main

import (
	"net/url"

	"ferreteria-elsol.ar/web/internal/catalog"
	"ferreteria-elsol.ar/web/internal/format"
)

// CatalogView aggregates everything the grid page and its fragment need.
type CatalogView struct {
	Filters        []CategoryFilter
	Search         string
	Cards          []ProductCard
	Carousel       CarouselView
	Query          string
	ActiveCategory string
	CSRFToken      string
}

// CategoryFilter is one control in the category bar.
type CategoryFilter struct {
	Slug   string
	Label  string
	Active bool
}

// ProductCard is the grid card view model for one product.
type ProductCard struct {
	ID            string
	Name          string
	Description   string
	Image         string
	Code          string
	Stock         int
	Price         string
	Featured      bool
	Category      string
	AllCategories string
	StockLabel    string
	StockClass    string
	SoldOut       bool
}

// CarouselView drives the featured slider. When Hidden is set the container
// is omitted entirely instead of rendering an empty track.
type CarouselView struct {
	Hidden   bool
	Slides   []ProductCard
	PerPage  int
	Interval int // autoplay interval in ms
}

func buildProductCard(p catalog.Product) ProductCard {
	tier := p.Tier()
	return ProductCard{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Image:         p.Image,
		Code:          p.Code,
		Stock:         p.Stock,
		Price:         format.Price(p.Price),
		Featured:      p.Featured,
		Category:      p.Category,
		AllCategories: joinCategories(p),
		StockLabel:    tier.Label(),
		StockClass:    tier.Class(),
		SoldOut:       p.Stock == 0,
	}
}

func joinCategories(p catalog.Product) string {
	if len(p.AllCategories) == 0 {
		return p.Category
	}
	out := ""
	for i, c := range p.AllCategories {
		if i > 0 {
			out += ","
		}
		out += c
	}
	return out
}

// buildCatalogView projects the product list through the composed filter and
// assembles the filter bar, grid, and carousel.
func buildCatalogView(products []catalog.Product, filter catalog.Filter) CatalogView {
	view := CatalogView{Search: filter.Query}

	selected := filter.Category
	if selected == "" {
		selected = catalog.CategoryAll
	}
	view.ActiveCategory = selected
	for _, slug := range catalog.Categories {
		view.Filters = append(view.Filters, CategoryFilter{
			Slug:   slug,
			Label:  catalog.CategoryName(slug),
			Active: slug == selected,
		})
	}

	for _, p := range catalog.Apply(products, filter) {
		view.Cards = append(view.Cards, buildProductCard(p))
	}

	view.Carousel = buildCarouselView(products)
	view.Query = filterQuery(filter)
	return view
}

func buildCarouselView(products []catalog.Product) CarouselView {
	featured := catalog.FeaturedProducts(products)
	if len(featured) == 0 {
		return CarouselView{Hidden: true}
	}
	view := CarouselView{
		PerPage:  min(3, len(featured)),
		Interval: 3000,
	}
	for _, p := range featured {
		view.Slides = append(view.Slides, buildProductCard(p))
	}
	return view
}

func filterQuery(f catalog.Filter) string {
	q := url.Values{}
	if f.Query != "" {
		q.Set("buscar", f.Query)
	}
	if f.Category != "" && f.Category != catalog.CategoryAll {
		q.Set("categoria", f.Category)
	}
	return q.Encode()
}
