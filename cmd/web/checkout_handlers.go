package main

import (
	"net/http"
	"strings"
	"time"

	"ferreteria-elsol.ar/web/internal/cart"
	"ferreteria-elsol.ar/web/internal/checkout"
	mw "ferreteria-elsol.ar/web/internal/middleware"
)

// CheckoutView backs the order form page.
type CheckoutView struct {
	Cart            CartPageView
	DeliveryWindows []string
}

var deliveryWindows = []string{
	"Mañana (8:00 - 12:00)",
	"Tarde (14:00 - 18:00)",
	"Cualquier horario",
}

// CheckoutHandler renders the order form with the cart recap.
func (a *app) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	vm := a.pageData(r, "Finalizar pedido")
	vm.Checkout = CheckoutView{
		Cart:            buildCartPageView(&s.Cart, a.resolver(r)),
		DeliveryWindows: deliveryWindows,
	}
	a.renderPage(w, r, "pedido", vm)
}

// CheckoutSubmitHandler builds the order from the session cart and hands it
// off to WhatsApp: the response is a redirect to the deep link carrying the
// formatted message. Nothing is persisted and no acknowledgement is awaited.
func (a *app) CheckoutSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s := mw.GetSession(r)
	if len(s.Cart.Entries) == 0 {
		s.AddFlash("El carrito está vacío", "error")
		http.Redirect(w, r, "/carrito", http.StatusSeeOther)
		return
	}

	resolve := a.resolver(r)
	order := checkout.Order{
		ID: checkout.NewOrderID(),
		Customer: checkout.Customer{
			Name:         strings.TrimSpace(r.FormValue("nombre")),
			Phone:        strings.TrimSpace(r.FormValue("telefono")),
			Street:       strings.TrimSpace(r.FormValue("calle")),
			Neighborhood: strings.TrimSpace(r.FormValue("barrio")),
		},
		DeliveryWindow: strings.TrimSpace(r.FormValue("horario")),
		Items:          append([]cart.Entry(nil), s.Cart.Entries...),
		Total:          s.Cart.Total(resolve),
		PlacedAt:       time.Now(),
	}

	message := checkout.FormatOrder(order, checkout.Resolver(resolve))
	link := checkout.Link(a.cfg.WhatsAppNumber, message)

	s.Cart.Clear()
	s.AddFlash("Pedido "+order.ID+" enviado por WhatsApp", "success")
	s.MarkDirty()

	http.Redirect(w, r, link, http.StatusSeeOther)
}
