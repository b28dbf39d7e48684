package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/email"
	"github.com/example/storefront/internal/infrastructure/kafka"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/notification"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Str("component", "notifier").Msg("failed to load configuration")
	}
	if err := logging.Setup(conf.LogLevel, conf.LogFormat); err != nil {
		log.Fatal().Err(err).Str("component", "notifier").Msg("failed to configure logging")
	}
	if !conf.KafkaEnabled() {
		log.Fatal().Str("component", "notifier").Msg("KAFKA_BROKERS is required")
	}

	log.Info().
		Str("component", "notifier").
		Strs("kafka_brokers", conf.KafkaConfig.Brokers).
		Str("kafka_topic", conf.KafkaConfig.Topic).
		Str("group_id", conf.KafkaConfig.GroupID).
		Str("smtp_host", conf.SMTPConfig.Host).
		Msg("starting storefront notifier")

	// Confirmation mail is optional; notifications are always logged
	var mailer notification.Mailer
	if conf.SMTPConfig.Host != "" {
		mailer = email.NewService(conf.SMTPConfig.Host, conf.SMTPConfig.Port, conf.SMTPConfig.From)
	}
	handler := notification.NewHandler(notification.LogNotifier{}, mailer)

	consumer := kafka.NewConsumer(conf.KafkaConfig.Brokers, conf.KafkaConfig.Topic, conf.KafkaConfig.GroupID)
	defer consumer.Close()

	go func() {
		log.Info().Str("component", "notifier").Msg("starting event consumer")
		if err := consumer.Consume(ctx, handler.HandleEvent); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("component", "notifier").Msg("consumer error")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Str("component", "notifier").Msg("shutting down")
	cancel()
}
