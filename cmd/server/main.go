package main

import (
	"log/slog"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/househub/internal/chores"
	"github.com/mmynk/househub/internal/config"
	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/ledger"
	"github.com/mmynk/househub/internal/middleware"
	"github.com/mmynk/househub/internal/schedule"
	"github.com/mmynk/househub/internal/service"
	"github.com/mmynk/househub/internal/storage/sqlite"
	"github.com/mmynk/househub/pkg/api/apiconnect"
	"github.com/mmynk/househub/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DatabasePath, cfg.Namespace)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DatabasePath, "namespace", cfg.Namespace)

	registry := household.NewRegistry(store)
	choreSvc := chores.NewService(store, registry)
	book := ledger.New(store)
	sched := schedule.NewService(store, registry)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(), metrics.Interceptor())

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewHouseholdServiceHandler(service.NewHouseholdService(registry), interceptors))
	mux.Handle(apiconnect.NewChoreServiceHandler(service.NewChoreService(choreSvc, registry), interceptors))
	mux.Handle(apiconnect.NewFinanceServiceHandler(service.NewFinanceService(book, registry), interceptors))
	mux.Handle(apiconnect.NewScheduleServiceHandler(service.NewScheduleService(sched), interceptors))

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.HTTPLogging(middleware.CORS(cfg.AllowedOrigin, mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := cfg.Addr()
	slog.Info("Connect server starting", "address", addr, "url", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
