package checkout

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"ferreteria-elsol.ar/web/internal/cart"
	"ferreteria-elsol.ar/web/internal/catalog"
	"ferreteria-elsol.ar/web/internal/format"
)

// Customer holds the contact and delivery data collected at checkout.
type Customer struct {
	Name         string
	Phone        string
	Street       string
	Neighborhood string
}

// Order is the pending purchase handed off to WhatsApp. Nothing about it is
// persisted server-side; the deep link is the whole pipeline.
type Order struct {
	ID             string
	Customer       Customer
	DeliveryWindow string
	Items          []cart.Entry
	Total          float64
	PlacedAt       time.Time
}

// Resolver looks a product up by id for message formatting.
type Resolver func(id string) (catalog.Product, bool)

// NewOrderID returns a short human-readable order identifier.
func NewOrderID() string {
	id := uuid.NewString()
	return "PED-" + strings.ToUpper(id[:8])
}

// FormatOrder renders the WhatsApp order message. Items whose product no
// longer resolves render an explicit placeholder line instead of failing.
// Line totals use the price captured at add time.
func FormatOrder(o Order, resolve Resolver) string {
	var b strings.Builder
	b.WriteString("🛒 *Nuevo Pedido de Ferretería*\n\n")
	fmt.Fprintf(&b, "📋 *Orden:* %s\n", o.ID)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "📱 *Teléfono:* %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "📍 *Dirección:* %s, %s\n", o.Customer.Street, o.Customer.Neighborhood)
	fmt.Fprintf(&b, "🕐 *Horario:* %s\n\n", o.DeliveryWindow)

	b.WriteString("📦 *Productos:*\n")
	for _, item := range o.Items {
		if product, ok := resolve(item.ProductID); ok {
			fmt.Fprintf(&b, "• %s x%d - $%.2f\n", product.Name, item.Quantity, item.Price*float64(item.Quantity))
		} else {
			fmt.Fprintf(&b, "• Producto no encontrado x%d\n", item.Quantity)
		}
	}

	fmt.Fprintf(&b, "\n💰 *Total:* $%.2f\n", o.Total)
	fmt.Fprintf(&b, "📅 *Fecha:* %s", format.ShortDate(o.PlacedAt))
	return b.String()
}

// Link builds the WhatsApp deep link carrying the URL-encoded message. No
// response is awaited; opening the link is the handoff.
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", strings.TrimSpace(number), url.QueryEscape(message))
}
