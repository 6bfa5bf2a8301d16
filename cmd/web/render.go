package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ferreteria-elsol.ar/web/internal/format"
	mw "ferreteria-elsol.ar/web/internal/middleware"
	"ferreteria-elsol.ar/web/internal/nav"
)

// PageData is the shared view model for pages using the base layout.
type PageData struct {
	Title       string
	StoreName   string
	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	Flashes     []mw.Flash
	CSRFToken   string
	CartSummary CartSummaryView

	// Optional per-page view model payloads
	Catalog  any
	Cart     any
	Checkout any
	Content  any
}

var tmplFuncs = template.FuncMap{
	"price": format.Price,
	"date":  format.Date,
	"now":   time.Now,
}

// devMode reparses templates per request when FERRETERIA_DEV (or DEV) is set.
var devMode = os.Getenv("FERRETERIA_DEV") != "" || os.Getenv("DEV") != ""

func (a *app) parseTemplates() error {
	tc, err := parseTemplateDir(a.cfg.TemplatesDir)
	if err != nil {
		return err
	}
	a.tmpl = tc
	return nil
}

// parseTemplateDir recursively discovers and parses all .tmpl files. Note:
// ParseGlob doesn't support **.
func parseTemplateDir(dir string) (*template.Template, error) {
	var files []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	return template.New("_root").Funcs(tmplFuncs).ParseFiles(files...)
}

// pageData assembles the layout fields every page shares: nav, breadcrumbs,
// pending flashes, and the cart summary read from the session.
func (a *app) pageData(r *http.Request, title string) PageData {
	s := mw.GetSession(r)
	return PageData{
		Title:       title,
		StoreName:   a.cfg.StoreName,
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
		Flashes:     s.PopFlashes(),
		CSRFToken:   s.CSRFToken,
		CartSummary: buildCartSummary(&s.Cart, a.resolver(r)),
	}
}

// renderPage executes a full page template. In dev mode templates are
// reparsed on each request.
func (a *app) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	a.execute(w, name, data)
}

// renderTemplate executes a fragment template without the layout headers.
func (a *app) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	a.execute(w, name, data)
}

func (a *app) execute(w http.ResponseWriter, name string, data any) {
	t := a.tmpl
	if devMode {
		tc, err := parseTemplateDir(a.cfg.TemplatesDir)
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}
