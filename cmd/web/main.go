package main

import (
	"context"
	"errors"
	"flag"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ferreteria-elsol.ar/web/internal/catalog"
	"ferreteria-elsol.ar/web/internal/config"
	"ferreteria-elsol.ar/web/internal/content"
	mw "ferreteria-elsol.ar/web/internal/middleware"
)

// app wires the storefront components together. It owns the catalog client
// and the shared services; per-request cart state lives in the session.
type app struct {
	cfg     config.Config
	catalog *catalog.Client
	pages   *content.Store
	log     *zap.Logger
	tmpl    *template.Template
}

// resolver adapts the catalog client to the lookup signature the cart and
// checkout packages expect.
func (a *app) resolver(r *http.Request) func(string) (catalog.Product, bool) {
	return func(id string) (catalog.Product, bool) {
		return a.catalog.Lookup(r.Context(), id)
	}
}

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	a := &app{
		cfg:     cfg,
		catalog: catalog.NewClient(cfg.CatalogURL, logger),
		pages:   content.NewStore(cfg.ContentDir),
		log:     logger,
	}
	if err := a.parseTemplates(); err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm the catalog before serving; failures already degrade to the
	// fallback list inside the client.
	a.catalog.Refresh(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("web listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Behind a trusted reverse proxy RealIP resolves the client address from
	// X-Forwarded-For; ensure only trusted proxies can set these headers.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.CSRF)
	r.Use(mw.Logger(a.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(a.cfg.PublicDir+"/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/", a.HomeHandler)
	r.Get("/productos", a.ProductsHandler)
	r.Get("/productos/fragmento", a.ProductsGridFrag)
	r.Post("/productos/actualizar", a.RefreshCatalogHandler)

	r.Get("/carrito", a.CartHandler)
	r.Get("/carrito/resumen", a.CartSummaryFrag)
	r.Post("/carrito/agregar", a.CartAddHandler)
	r.Post("/carrito/eliminar", a.CartRemoveHandler)
	r.Post("/carrito/cantidad", a.CartQuantityHandler)

	r.Get("/pedido", a.CheckoutHandler)
	r.Post("/pedido", a.CheckoutSubmitHandler)

	r.Get("/paginas/{slug}", a.ContentPageHandler)

	return r
}
