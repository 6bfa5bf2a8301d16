package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ferreteria-elsol.ar/web/internal/cart"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", sessionCookieName)
	return nil
}

func TestSessionInitializesAndPersists(t *testing.T) {
	var captured *SessionData
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetSession(r)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, captured)
	require.NotEmpty(t, captured.ID)
	require.NotEmpty(t, captured.CSRFToken)

	c := sessionCookie(t, rec)
	require.True(t, c.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestSessionCartRoundTrip(t *testing.T) {
	write := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		s.Cart.Entries = append(s.Cart.Entries, cart.Entry{ProductID: "martillo", Quantity: 2, Price: 899.99})
		s.AddFlash("agregado", "success")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	write.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/carrito/agregar", nil))
	c := sessionCookie(t, rec)

	var got *SessionData
	read := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r)
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/carrito", nil)
	req.AddCookie(c)
	read.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, got.Cart.Entries, 1)
	require.Equal(t, "martillo", got.Cart.Entries[0].ProductID)
	require.Equal(t, 2, got.Cart.Entries[0].Quantity)

	flashes := got.PopFlashes()
	require.Len(t, flashes, 1)
	require.Equal(t, Flash{Message: "agregado", Tone: "success"}, flashes[0])
	require.Empty(t, got.PopFlashes())
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	c := sessionCookie(t, rec)

	// flip the payload; the signature no longer matches
	parts := strings.SplitN(c.Value, ".", 2)
	require.Len(t, parts, 2)
	tampered := &http.Cookie{Name: sessionCookieName, Value: "eyJpZCI6ImZvcmdlZCJ9." + parts[1]}

	var got *SessionData
	read := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r)
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(tampered)
	read.ServeHTTP(httptest.NewRecorder(), req)

	// a fresh session replaces the forged one
	require.NotEmpty(t, got.ID)
	require.NotEqual(t, "forged", got.ID)
}

func TestGetSessionWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s := GetSession(req)
	require.NotNil(t, s)
	require.Empty(t, s.ID)
}
