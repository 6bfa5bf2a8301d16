package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ferreteria-elsol.ar/web/internal/cart"
	mw "ferreteria-elsol.ar/web/internal/middleware"
)

// CartHandler renders the cart page.
func (a *app) CartHandler(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	vm := a.pageData(r, "Carrito")
	vm.Cart = buildCartPageView(&s.Cart, a.resolver(r))
	a.renderPage(w, r, "carrito", vm)
}

// CartSummaryFrag renders the count/total badge fragment.
func (a *app) CartSummaryFrag(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	a.renderTemplate(w, r, "frag_cart_summary", buildCartSummary(&s.Cart, a.resolver(r)))
}

// CartAddHandler adds a product to the session cart. Stock violations and
// unknown products surface as error flashes; the cart stays unchanged.
func (a *app) CartAddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	productID := strings.TrimSpace(r.FormValue("producto"))
	quantity := formQuantity(r, 1)

	s := mw.GetSession(r)
	resolve := a.resolver(r)
	err := s.Cart.Add(productID, quantity, resolve)
	switch {
	case err == nil:
		name := productID
		if p, ok := resolve(productID); ok {
			name = p.Name
		}
		s.AddFlash(name+" agregado al carrito", "success")
	case errors.Is(err, cart.ErrUnknownProduct):
		s.AddFlash("Producto no encontrado", "error")
	default:
		var stockErr *cart.StockError
		if errors.As(err, &stockErr) {
			s.AddFlash(fmt.Sprintf("Stock insuficiente. Máximo: %d unidades", stockErr.Stock), "error")
		} else {
			s.AddFlash("No se pudo agregar el producto", "error")
		}
	}
	s.MarkDirty()
	a.finishCartMutation(w, r, err == nil)
}

// CartRemoveHandler unconditionally drops the entry.
func (a *app) CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s := mw.GetSession(r)
	s.Cart.Remove(strings.TrimSpace(r.FormValue("producto")))
	s.MarkDirty()
	a.finishCartMutation(w, r, true)
}

// CartQuantityHandler sets an entry quantity; zero removes the entry.
func (a *app) CartQuantityHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	productID := strings.TrimSpace(r.FormValue("producto"))
	quantity := formQuantity(r, 0)

	s := mw.GetSession(r)
	err := s.Cart.UpdateQuantity(productID, quantity, a.resolver(r))
	if err != nil {
		var stockErr *cart.StockError
		if errors.As(err, &stockErr) {
			s.AddFlash(fmt.Sprintf("No puedes agregar más. Stock máximo: %d", stockErr.Stock), "error")
		} else {
			s.AddFlash("Producto no encontrado", "error")
		}
	}
	s.MarkDirty()
	a.finishCartMutation(w, r, err == nil)
}

// finishCartMutation answers a cart POST: fragment requests get the updated
// summary plus an HX-Trigger event, plain form posts bounce back to where
// they came from.
func (a *app) finishCartMutation(w http.ResponseWriter, r *http.Request, ok bool) {
	s := mw.GetSession(r)
	if mw.IsHTMX(r.Context()) {
		summary := buildCartSummary(&s.Cart, a.resolver(r))
		payload := map[string]any{
			"cart:updated": map[string]any{
				"count": summary.Count,
				"ok":    ok,
			},
		}
		if raw, err := json.Marshal(payload); err == nil {
			w.Header().Set("HX-Trigger", string(raw))
		}
		a.renderTemplate(w, r, "frag_cart_summary", summary)
		return
	}
	target := r.Header.Get("Referer")
	if target == "" {
		target = "/productos"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func formQuantity(r *http.Request, fallback int) int {
	raw := strings.TrimSpace(r.FormValue("cantidad"))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
