package middleware

import (
	"encoding/json"
	"net/http"
)

// HTMX marks requests issued by htmx so handlers can answer with fragments
// instead of full pages.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}

// writeError reports a request error. Fragment requests receive the flash
// shape the toast layer already renders; plain requests get a text response.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(Flash{Message: msg, Tone: "error"})
		return
	}
	http.Error(w, msg, code)
}
