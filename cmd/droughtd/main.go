package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/narendra2074/drought-marathwada/internal/adapter/httpapi"
	"github.com/narendra2074/drought-marathwada/internal/adapter/imagefetch"
	kafkaadapter "github.com/narendra2074/drought-marathwada/internal/adapter/kafka"
	"github.com/narendra2074/drought-marathwada/internal/compare"
	"github.com/narendra2074/drought-marathwada/internal/config"
	"github.com/narendra2074/drought-marathwada/internal/domain"
	"github.com/narendra2074/drought-marathwada/internal/observability"
	"github.com/narendra2074/drought-marathwada/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	records, err := store.Load(cfg.DataPath, logger)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	metrics.RecordsLoaded.Set(float64(records.Len()))
	metrics.StoreReady.Set(1)
	logger.Info("dataset loaded", "path", cfg.DataPath, "years", records.Len())

	// Initialize the diagnostics sink (feature-flagged via DIAG_KAFKA_*).
	var sink domain.DiagnosticSink
	var kafkaSink *kafkaadapter.Sink
	if cfg.DiagEnabled {
		kafkaSink = kafkaadapter.NewSink(cfg, logger, metrics)
		sink = kafkaSink
		metrics.DiagSinkEnabled.Set(1)
		logger.Info("kafka diagnostics enabled", "topic", cfg.DiagKafkaTopic, "brokers", cfg.DiagKafkaBrokers)
	} else {
		logger.Info("kafka diagnostics disabled")
	}

	var resolver domain.ImageResolver = imagefetch.NewClient(cfg.FetchTimeout, logger, metrics, sink)
	if cfg.ImageCacheSize > 0 {
		resolver = imagefetch.NewCachedResolver(resolver, cfg.ImageCacheSize, metrics)
		logger.Info("image cache enabled", "size", cfg.ImageCacheSize)
	}

	controller := compare.New(records, resolver, logger, metrics)

	srv := httpapi.NewServer(cfg.HTTPAddr, records, controller, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			logger.Error("kafka sink close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
