// The worker binary consumes validation events and keeps aggregate usage
// statistics, exposing them as Prometheus metrics.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/molcraft/molcraft/internal/config"
	"github.com/molcraft/molcraft/internal/infrastructure/messaging/kafka"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/prometheus"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "worker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := prometheus.NewMetrics()

	// Scrape endpoint for the aggregated statistics.
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	metricsSrv := &http.Server{Addr: cfg.Server.Addr(), Handler: mux}
	go func() {
		log.Info("worker metrics listening", logging.String("addr", cfg.Server.Addr()))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", logging.Err(err))
		}
	}()
	defer metricsSrv.Close()

	consumer := kafka.NewConsumer(cfg.Kafka, log)
	defer consumer.Close()

	stats := newStats(log)
	log.Info("worker consuming validation events",
		logging.String("topic", cfg.Kafka.Topic),
		logging.String("group", cfg.Kafka.GroupID),
	)
	return consumer.Run(ctx, stats.handle)
}

// stats aggregates per-formula validation counts.
type stats struct {
	mu       sync.Mutex
	byFormula map[string]int
	total    int
	logger   logging.Logger
}

func newStats(log logging.Logger) *stats {
	return &stats{byFormula: make(map[string]int), logger: log.Named("stats")}
}

func (s *stats) handle(_ context.Context, event kafka.ValidationEvent) error {
	s.mu.Lock()
	s.byFormula[event.Formula]++
	s.total++
	total := s.total
	count := s.byFormula[event.Formula]
	s.mu.Unlock()

	s.logger.Info("validation event",
		logging.String("formula", event.Formula),
		logging.Bool("stable", event.IsStable),
		logging.Int("formula_count", count),
		logging.Int("total", total),
	)
	return nil
}
