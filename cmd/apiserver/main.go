// The apiserver binary serves the molecule builder HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/molcraft/molcraft/internal/application/builder"
	"github.com/molcraft/molcraft/internal/config"
	"github.com/molcraft/molcraft/internal/domain/preset"
	"github.com/molcraft/molcraft/internal/infrastructure/database/postgres"
	"github.com/molcraft/molcraft/internal/infrastructure/database/postgres/repositories"
	"github.com/molcraft/molcraft/internal/infrastructure/database/redis"
	"github.com/molcraft/molcraft/internal/infrastructure/messaging/kafka"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/molcraft/molcraft/internal/interfaces/http"
	"github.com/molcraft/molcraft/internal/interfaces/http/handlers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
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
	checkers := make(map[string]handlers.HealthChecker)

	var (
		repo  preset.Repository
		cache redis.Cache
	)

	if cfg.Database.Host != "" {
		if err := postgres.RunMigrations(cfg.Database, log); err != nil {
			return err
		}
		conn, err := postgres.NewConnection(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer conn.Close()
		repo = repositories.NewPresetRepository(conn.Pool(), log)
		checkers["postgres"] = conn
	} else {
		log.Warn("database.host not set; presets are disabled")
	}

	if cfg.Redis.Addr != "" && repo != nil {
		client, err := redis.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			// The cache is an optimization; start without it.
			log.Warn("redis unavailable; running without preset cache", logging.Err(err))
		} else {
			defer client.Close()
			cache = redis.NewCache(client, log, redis.WithPrefix(cfg.Redis.KeyPrefix))
			checkers["redis"] = client
		}
	}

	opts := []builder.Option{builder.WithMetrics(metrics)}
	if cache != nil {
		opts = append(opts, builder.WithCache(cache, cfg.Redis.TTL))
	}
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka, log)
		defer producer.Close()
		opts = append(opts, builder.WithPublisher(producer))
	}

	svc := builder.NewService(repo, log, opts...)

	router := httpiface.NewRouter(httpiface.RouterDeps{
		Service:  svc,
		Logger:   log,
		Metrics:  metrics,
		Checkers: checkers,
		Mode:     cfg.Server.Mode,
	})

	if *configPath != "" {
		err := config.Watch(*configPath, func(updated *config.Config) {
			log.Info("configuration reloaded",
				logging.String("log_level", updated.Log.Level))
		})
		if err != nil {
			log.Warn("config watch disabled", logging.Err(err))
		}
	}

	server := httpiface.NewServer(cfg.Server, router, log)
	start := time.Now()
	err = server.Run(ctx)
	log.Info("apiserver exiting", logging.Duration("uptime", time.Since(start)))
	return err
}
