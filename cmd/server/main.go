package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	accountStore "skillpass/internal/account/store"
	"skillpass/internal/audit"
	credentialHandler "skillpass/internal/credential/handler"
	credentialService "skillpass/internal/credential/service"
	credentialStore "skillpass/internal/credential/store"
	"skillpass/internal/dashboard"
	"skillpass/internal/platform/config"
	"skillpass/internal/platform/database"
	"skillpass/internal/platform/health"
	"skillpass/internal/platform/logger"
	"skillpass/internal/platform/metrics"
	"skillpass/internal/platform/middleware"
	"skillpass/internal/platform/token"
	"skillpass/internal/platform/tracer"
	"skillpass/internal/seeder"
	templateHandler "skillpass/internal/template/handler"
	templateService "skillpass/internal/template/service"
	templateStore "skillpass/internal/template/store"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	log.Info("initializing skillpass",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	pool, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("database initialization failed", "error", err)
		os.Exit(1)
	}

	// Store selection: PostgreSQL when DATABASE_URL is set, in-memory otherwise.
	var (
		accounts    accountStore.Store
		templates   templateStore.Store
		credentials credentialStore.Store
		events      audit.Store
	)
	if pool != nil {
		db := pool.DB()
		accounts = accountStore.NewPostgres(db)
		templates = templateStore.NewPostgres(db)
		credentials = credentialStore.NewPostgres(db)
		events = audit.NewPostgresStore(db)
		log.Info("using postgres stores")
	} else {
		accounts = accountStore.NewInMemory()
		templates = templateStore.NewInMemory()
		credentials = credentialStore.NewInMemory()
		events = audit.NewInMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	m := metrics.New()

	recorder := audit.NewRecorder(events,
		audit.WithAsyncBuffer(cfg.AuditBuffer),
		audit.WithRecorderLogger(log),
		audit.WithDropHook(m.AuditEventsDropped.Inc),
	)
	defer recorder.Close()

	credentialSvc := credentialService.NewService(credentials, accounts, templates,
		credentialService.WithLogger(log),
		credentialService.WithMetrics(m),
		credentialService.WithRecorder(recorder),
		credentialService.WithTracer(tracer.NewOTel()),
	)
	templateSvc := templateService.NewService(templates,
		templateService.WithLogger(log),
		templateService.WithMetrics(m),
	)
	dashboardSvc := dashboard.NewService(credentials, log)

	if cfg.SeedDemo {
		if err := seeder.Seed(context.Background(), accounts, templates, log); err != nil {
			log.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	tokens := token.NewService(cfg.JWTSigningKey, 24*time.Hour)

	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		healthHandler.RegisterCheck("database", pool.Health)
	}

	credentialH := credentialHandler.New(credentialSvc, log)
	templateH := templateHandler.New(templateSvc, log)
	dashboardH := dashboard.NewHandler(dashboardSvc, log)

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Latency(m))

	healthHandler.Register(router)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		credentialH.RegisterPublic(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens, log))
			credentialH.Register(r)
			templateH.Register(r)
			dashboardH.Register(r)
		})
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		if err := pool.Close(); err != nil {
			log.Error("closing database failed", "error", err)
		}
	}

	log.Info("server stopped")
}
