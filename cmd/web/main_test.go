package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ferreteria-elsol.ar/web/internal/catalog"
	"ferreteria-elsol.ar/web/internal/config"
	"ferreteria-elsol.ar/web/internal/content"
)

// newTestApp builds the app like main() does, serving the fallback catalog
// (no remote URL configured).
func newTestApp(t *testing.T) *app {
	t.Helper()
	devMode = false

	cfg := config.Default()
	cfg.TemplatesDir = "../../templates"
	cfg.PublicDir = "../../public"
	cfg.ContentDir = "../../content"

	a := &app{
		cfg:     cfg,
		catalog: catalog.NewClient("", zap.NewNop()),
		pages:   content.NewStore(cfg.ContentDir),
		log:     zap.NewNop(),
	}
	if err := a.parseTemplates(); err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	return a
}

// browser drives the router while carrying cookies between requests, like a
// real visitor would.
type browser struct {
	t       *testing.T
	h       http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T) *browser {
	t.Helper()
	b := &browser{t: t, h: newTestApp(t).router(), cookies: map[string]*http.Cookie{}}
	// first visit establishes session and CSRF cookies
	b.get("/healthz")
	return b
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.h.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	if c, ok := b.cookies["csrf_token"]; ok {
		form.Set("csrf_token", c.Value)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func parseHTML(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestHealthz(t *testing.T) {
	b := newBrowser(t)
	rec := b.get("/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestHomeShowsFallbackCatalog(t *testing.T) {
	b := newBrowser(t)
	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parseHTML(t, rec)
	require.Equal(t, 3, doc.Find(".product-card").Length(), "fallback catalog has three products")
	require.Equal(t, 1, doc.Find("#featured-carousel").Length())
	require.Equal(t, len(catalog.Categories), doc.Find(".category-filter").Length())
	require.Contains(t, doc.Find(".category-filter.active").Text(), "Todos")
}

func TestProductsPageFilters(t *testing.T) {
	b := newBrowser(t)

	doc := parseHTML(t, b.get("/productos?categoria=electricos"))
	require.Equal(t, 2, doc.Find(".product-card").Length())
	require.Contains(t, doc.Find(".product-card").Text(), "Taladro Eléctrico 12V")

	doc = parseHTML(t, b.get("/productos?buscar=taladro"))
	require.Equal(t, 1, doc.Find(".product-card").Length())

	doc = parseHTML(t, b.get("/productos?buscar=taladro&categoria=pinturas"))
	require.Equal(t, 0, doc.Find(".product-card").Length())
	require.Contains(t, doc.Find(".grid-empty").Text(), "No se encontraron productos")
}

func TestGridFragment(t *testing.T) {
	b := newBrowser(t)
	req := httptest.NewRequest(http.MethodGet, "/productos/fragmento?categoria=electricos", nil)
	req.Header.Set("HX-Request", "true")
	rec := b.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "/productos?categoria=electricos", rec.Header().Get("HX-Push-Url"))

	doc := parseHTML(t, rec)
	require.Equal(t, 2, doc.Find(".product-card").Length())
	// fragment only, no full page
	require.Equal(t, 0, doc.Find("header").Length())
}

func TestCartFlow(t *testing.T) {
	b := newBrowser(t)

	rec := b.postForm("/carrito/agregar", url.Values{
		"producto": {"hammer-001"},
		"cantidad": {"2"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/productos", rec.Header().Get("Location"))

	doc := parseHTML(t, b.get("/carrito"))
	require.Contains(t, doc.Find(".cart-table").Text(), "Martillo de Carpintero")
	require.Contains(t, doc.Find(".cart-grand-total").Text(), "$1,799.98")
	require.Contains(t, doc.Find(".toast").Text(), "Martillo de Carpintero agregado al carrito")

	// quantity zero drops the line
	rec = b.postForm("/carrito/cantidad", url.Values{
		"producto": {"hammer-001"},
		"cantidad": {"0"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc = parseHTML(t, b.get("/carrito"))
	require.Contains(t, doc.Find(".cart-empty").Text(), "Tu carrito está vacío")
}

func TestCartAddEnforcesStock(t *testing.T) {
	b := newBrowser(t)

	rec := b.postForm("/carrito/agregar", url.Values{
		"producto": {"drill-003"},
		"cantidad": {"50"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := parseHTML(t, b.get("/carrito"))
	require.Contains(t, doc.Find(".toast").Text(), "Stock insuficiente. Máximo: 12 unidades")
	require.Contains(t, doc.Find(".cart-empty").Text(), "Tu carrito está vacío")
}

func TestCartAddUnknownProduct(t *testing.T) {
	b := newBrowser(t)

	b.postForm("/carrito/agregar", url.Values{"producto": {"fantasma"}})
	doc := parseHTML(t, b.get("/carrito"))
	require.Contains(t, doc.Find(".toast").Text(), "Producto no encontrado")
}

func TestCartAddFragmentAnswersSummary(t *testing.T) {
	b := newBrowser(t)

	form := url.Values{"producto": {"hammer-001"}, "cantidad": {"1"}}
	if c, ok := b.cookies["csrf_token"]; ok {
		form.Set("csrf_token", c.Value)
	}
	req := httptest.NewRequest(http.MethodPost, "/carrito/agregar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := b.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("HX-Trigger"), "cart:updated")

	doc := parseHTML(t, rec)
	require.Equal(t, "1", strings.TrimSpace(doc.Find("#cart-count").Text()))
	require.Contains(t, doc.Find("#cart-total").Text(), "$899.99")
}

func TestCartPostWithoutCSRFToken(t *testing.T) {
	b := newBrowser(t)
	req := httptest.NewRequest(http.MethodPost, "/carrito/agregar",
		strings.NewReader("producto=hammer-001"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := b.do(req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckoutHandsOffToWhatsApp(t *testing.T) {
	b := newBrowser(t)
	b.postForm("/carrito/agregar", url.Values{"producto": {"hammer-001"}, "cantidad": {"2"}})

	rec := b.postForm("/pedido", url.Values{
		"nombre":   {"Juan Pérez"},
		"telefono": {"2644001122"},
		"calle":    {"Av. Libertador 450"},
		"barrio":   {"Capital"},
		"horario":  {"Mañana (8:00 - 12:00)"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	loc := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "https://wa.me/2645776592?text="), "location %q", loc)

	raw, err := url.QueryUnescape(strings.TrimPrefix(loc, "https://wa.me/2645776592?text="))
	require.NoError(t, err)
	require.Contains(t, raw, "Nuevo Pedido de Ferretería")
	require.Contains(t, raw, "Juan Pérez")
	require.Contains(t, raw, "Martillo de Carpintero x2 - $1799.98")
	require.Contains(t, raw, "*Total:* $1799.98")

	// the handoff empties the cart
	doc := parseHTML(t, b.get("/carrito"))
	require.Contains(t, doc.Find(".cart-empty").Text(), "Tu carrito está vacío")
	require.Contains(t, doc.Find(".toast").Text(), "enviado por WhatsApp")
}

func TestCheckoutWithEmptyCart(t *testing.T) {
	b := newBrowser(t)
	rec := b.postForm("/pedido", url.Values{"nombre": {"Ana"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/carrito", rec.Header().Get("Location"))
}

func TestContentPages(t *testing.T) {
	b := newBrowser(t)

	rec := b.get("/paginas/nosotros")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	require.Contains(t, doc.Find("main").Text(), "ferretería familiar")

	rec = b.get("/paginas/no-existe")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshCatalog(t *testing.T) {
	b := newBrowser(t)
	rec := b.postForm("/productos/actualizar", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/productos", rec.Header().Get("Location"))

	doc := parseHTML(t, b.get("/productos"))
	require.Contains(t, doc.Find(".toast").Text(), "Catálogo actualizado")
}
