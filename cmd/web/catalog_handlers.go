package main

import (
	"net/http"

	"ferreteria-elsol.ar/web/internal/catalog"
	mw "ferreteria-elsol.ar/web/internal/middleware"
)

func filterFromQuery(r *http.Request) catalog.Filter {
	return catalog.Filter{
		Query:    r.URL.Query().Get("buscar"),
		Category: r.URL.Query().Get("categoria"),
	}
}

// catalogView builds the grid view model with the session CSRF token the
// add-to-cart forms need.
func (a *app) catalogView(r *http.Request, filter catalog.Filter) CatalogView {
	view := buildCatalogView(a.catalog.Products(r.Context()), filter)
	view.CSRFToken = mw.GetSession(r).CSRFToken
	return view
}

// HomeHandler renders the landing page: hero, featured carousel, and the
// full grid with filter controls.
func (a *app) HomeHandler(w http.ResponseWriter, r *http.Request) {
	vm := a.pageData(r, a.cfg.StoreName)
	vm.Catalog = a.catalogView(r, catalog.Filter{})
	a.renderPage(w, r, "home", vm)
}

// ProductsHandler renders the grid page with the composed text/category
// filter applied.
func (a *app) ProductsHandler(w http.ResponseWriter, r *http.Request) {
	vm := a.pageData(r, "Productos")
	vm.Catalog = a.catalogView(r, filterFromQuery(r))
	a.renderPage(w, r, "productos", vm)
}

// ProductsGridFrag re-renders just the grid for live search and category
// switches.
func (a *app) ProductsGridFrag(w http.ResponseWriter, r *http.Request) {
	view := a.catalogView(r, filterFromQuery(r))

	push := "/productos"
	if view.Query != "" {
		push += "?" + view.Query
	}
	w.Header().Set("HX-Push-Url", push)
	a.renderTemplate(w, r, "frag_grid", view)
}

// RefreshCatalogHandler forces a reload from the remote sheet (useful when
// stock was just updated) and sends the visitor back to the grid.
func (a *app) RefreshCatalogHandler(w http.ResponseWriter, r *http.Request) {
	a.catalog.Refresh(r.Context())
	s := mw.GetSession(r)
	s.AddFlash("Catálogo actualizado", "info")

	if mw.IsHTMX(r.Context()) {
		a.renderTemplate(w, r, "frag_grid", a.catalogView(r, filterFromQuery(r)))
		return
	}
	http.Redirect(w, r, "/productos", http.StatusSeeOther)
}
