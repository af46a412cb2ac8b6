// cmd/web/main.go
//
// badnews – HTTP entry point.
//
// Start-up sequence
// -----------------
//
//  1. Load configuration and start the daily rotating logger (tees to the
//     console when running in a TTY).
//
//  2. Resolve the database password (literal or Vault), open the pool, and
//     run every component's migrations.
//
//  3. Register Prometheus collectors on a private registry.
//
//  4. Seed the headline table if it is empty.  This finishes before the
//     listener opens, so no request ever sees a half-filled table.
//
//  5. Build the router:
//
//     • middlewares  – recoverer, ForceHTTPS, security headers, access
//       log, HTTP metrics
//     • /metrics, /healthz, and "/" → /app/schlagzeilen
//     • every registered component's routes
//
//  6. Serve until SIGINT/SIGTERM, then shut down gracefully.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/badnews/internal/bootstrap"
	"github.com/yanizio/badnews/internal/component"
	"github.com/yanizio/badnews/internal/database"
	"github.com/yanizio/badnews/internal/headline"
	"github.com/yanizio/badnews/internal/logger"
	"github.com/yanizio/badnews/internal/metrics"
	"github.com/yanizio/badnews/internal/middleware"
	"github.com/yanizio/badnews/internal/server"
	"github.com/yanizio/badnews/internal/view"

	_ "github.com/yanizio/badnews/components/schlagzeilen"
	_ "github.com/yanizio/badnews/components/suche"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "badnews:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, log, err := bootstrap.Init(logger.IsTTY())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Database and migrations ────────────────────────────────────
	//
	db, err := bootstrap.OpenDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	comps := component.All()
	for _, c := range comps {
		stmts, err := c.Migrations(cfg.Database.Driver)
		if err != nil {
			return fmt.Errorf("migrations %s: %w", c.Name(), err)
		}
		if err := database.Migrate(ctx, db, stmts); err != nil {
			return fmt.Errorf("migrate %s: %w", c.Name(), err)
		}
	}

	//
	// ── 2.  Metrics ────────────────────────────────────────────────────
	//
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom, err := metrics.New(reg, cfg.Metrics.Environment)
	if err != nil {
		return err
	}
	httpMetrics, err := metrics.NewHTTP(reg)
	if err != nil {
		return err
	}

	//
	// ── 3.  Core and seeding ───────────────────────────────────────────
	//
	store := headline.NewSQLStore(db)
	gen := headline.NewGenerator()
	svc := headline.NewService(store, gen, prom, log)

	if _, err := headline.NewSeeder(store, gen, prom, log, cfg.Seed.Quantity).Run(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	//
	// ── 4.  Components ─────────────────────────────────────────────────
	//
	rnd, err := view.New(filepath.Join(cfg.Paths.Root, cfg.Theme.Dir), cfg.Theme.Name, view.DefaultCacheSize)
	if err != nil {
		return err
	}
	deps := component.Deps{Service: svc, Renderer: rnd, Log: log}
	for _, c := range comps {
		if err := c.Init(deps); err != nil {
			return fmt.Errorf("init component %s: %w", c.Name(), err)
		}
	}

	//
	// ── 5.  Router ─────────────────────────────────────────────────────
	//
	r, err := newRouter(cfg.HTTP.ForceHTTPS, db, reg, httpMetrics, comps, log)
	if err != nil {
		return err
	}

	//
	// ── 6.  Serve ──────────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, r, server.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	})
	if err := server.Run(ctx, srv, nil, cfg.HTTP.ShutdownTimeout); err != nil {
		return err
	}
	log.Infow("bye")
	return nil
}

// newRouter assembles middlewares, infrastructure endpoints, and the
// component routes.
func newRouter(forceHTTPS bool, db *sqlx.DB, reg *prometheus.Registry, hm *metrics.HTTP,
	comps []component.Component, log *zap.SugaredLogger) (http.Handler, error) {

	r := chi.NewRouter()
	r.Use(
		chimw.Recoverer,
		middleware.ForceHTTPS(forceHTTPS),
		middleware.Security,
		middleware.AccessLog(log),
		hm.Middleware,
	)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/healthz", healthz(db))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/app/schlagzeilen", http.StatusSeeOther)
	})
	if err := component.MountAll(r, comps); err != nil {
		return nil, err
	}
	return r, nil
}

// healthz pings the database.
func healthz(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}
}
