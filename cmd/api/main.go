package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/storefront/internal/api"
	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/command"
	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/infrastructure/kafka"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/notification"
	"github.com/example/storefront/internal/query"
	"github.com/example/storefront/internal/storefront"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Str("component", "api").Msg("failed to load configuration")
	}
	if err := logging.Setup(conf.LogLevel, conf.LogFormat); err != nil {
		log.Fatal().Err(err).Str("component", "api").Msg("failed to configure logging")
	}

	log.Info().
		Str("component", "api").
		Str("snapshot_backend", conf.SnapshotConfig.Backend).
		Strs("kafka_brokers", conf.KafkaConfig.Brokers).
		Str("kafka_topic", conf.KafkaConfig.Topic).
		Str("password_hashing", conf.PasswordHashing).
		Msg("starting storefront api")

	snapshots, closeSnapshots, err := openSnapshotStore(ctx, conf.SnapshotConfig)
	if err != nil {
		log.Fatal().Err(err).Str("component", "api").Msg("failed to open snapshot store")
	}
	defer closeSnapshots()

	var publisher events.Publisher = events.NopPublisher{}
	if conf.KafkaEnabled() {
		producer := kafka.NewProducer(conf.KafkaConfig.Brokers, conf.KafkaConfig.Topic)
		defer producer.Close()
		publisher = producer
	}

	hasher, err := auth.NewHasher(conf.PasswordHashing)
	if err != nil {
		log.Fatal().Err(err).Str("component", "api").Msg("invalid password hashing mode")
	}

	sf := storefront.New(ctx, snapshots, hasher, nil)

	cmdHandler := command.NewHandler(sf, notification.LogNotifier{}, publisher)
	queryHandler := query.NewHandler(sf)
	handlers := api.NewHandlers(cmdHandler, queryHandler)
	router := api.NewRouter(handlers, sf.Sessions, conf.WebDir)

	server := &http.Server{
		Addr:              conf.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("component", "api").Str("addr", conf.HTTPAddr).Msg("server started")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Str("component", "api").Msg("server error")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Str("component", "api").Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Str("component", "api").Msg("graceful shutdown failed")
	}
}

// openSnapshotStore connects the configured backend. The returned func releases it.
func openSnapshotStore(ctx context.Context, conf config.SnapshotConfig) (store.SnapshotStore, func(), error) {
	switch conf.Backend {
	case config.BackendPostgres:
		db, err := store.ConnectPostgres(conf.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewPostgresSnapshotStore(db)
		if err := s.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info().Str("component", "api").Msg("connected to PostgreSQL snapshot store")
		return s, func() { db.Close() }, nil

	case config.BackendRedis:
		client, err := store.ConnectRedis(conf.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("component", "api").Str("addr", conf.RedisAddr).Msg("connected to Redis snapshot store")
		return store.NewRedisSnapshotStore(client, conf.RedisKeyPrefix), func() { client.Close() }, nil

	case config.BackendMemory:
		return store.NewMemorySnapshotStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", conf.Backend)
	}
}
