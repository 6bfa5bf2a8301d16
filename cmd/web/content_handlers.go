package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ferreteria-elsol.ar/web/internal/content"
)

// ContentPageHandler serves static info pages rendered from local markdown.
func (a *app) ContentPageHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := a.pages.Get(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		a.log.Error("content page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	vm := a.pageData(r, page.Title)
	vm.Content = page
	a.renderPage(w, r, "pagina", vm)
}
