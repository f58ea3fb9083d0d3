package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/yardsale/internal/config"
	"github.com/mmynk/yardsale/internal/metrics"
	"github.com/mmynk/yardsale/internal/middleware"
	"github.com/mmynk/yardsale/internal/persist"
	"github.com/mmynk/yardsale/internal/rpc"
	"github.com/mmynk/yardsale/internal/session"
	"github.com/mmynk/yardsale/internal/state"
	"github.com/mmynk/yardsale/internal/storage"
	"github.com/mmynk/yardsale/internal/storage/memory"
	"github.com/mmynk/yardsale/internal/storage/sqlite"
	"github.com/mmynk/yardsale/pkg/logging"
	"github.com/mmynk/yardsale/pkg/proto/protoconnect"
)

func main() {
	cfg := config.Load()
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := openStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	container, err := state.Open(context.Background(), store)
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sess := session.New(container, session.Options{
		Tiers:   []persist.Tier{persist.FileTier{Picker: persist.FilePicker{Path: cfg.ExportPath}}},
		Metrics: metrics.New(reg),
	})

	mux := http.NewServeMux()

	// Register Connect service
	path, handler := protoconnect.NewYardSaleServiceHandler(rpc.NewServer(sess),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(path, handler)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(middleware.RequestLogger(middleware.CORS(mux)), &http2.Server{})

	slog.Info("Connect server starting", "address", cfg.Addr, "export_path", cfg.ExportPath)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func openStore(dbPath string) (storage.Store, error) {
	if dbPath == "" {
		slog.Warn("DB_PATH is empty, using in-memory storage")
		return memory.New(), nil
	}
	store, err := sqlite.New(dbPath)
	if err != nil {
		return nil, err
	}
	slog.Info("Storage initialized", "database", dbPath)
	return store, nil
}
