// fintrack-notifier drains the notification queue and delivers each
// message. Delivery is currently a structured log line; a mail or push
// gateway slots in behind the same handler.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/amqp"
	"fintrack/internal/cli"
	"fintrack/internal/log"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(log.ComponentNotifier, os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	if !cfg.AMQPEnabled() {
		logger.Error("AMQP_URL is required for the notifier")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting fintrack-notifier",
		log.FieldExchange, cfg.AMQPExchange,
		log.FieldQueue, cfg.AMQPQueue)

	err = amqpClient.ConsumeNotifications(ctx, func(msg *amqp.NotificationMessage) error {
		logger.Info("notification delivered",
			log.FieldNotificationID, msg.ID,
			log.FieldOwnerID, msg.OwnerID,
			"kind", msg.Kind,
			"title", msg.Title,
		)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("message consumption failed", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("notifier stopped gracefully")
}
