package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/eventhub/config"
	"github.com/oksasatya/eventhub/pkg/helpers"
	"github.com/oksasatya/eventhub/pkg/mailer"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notification-worker", cfg.Env)
	if cfg.RabbitMQURL == "" || cfg.RabbitMQNotificationQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	delivery := mailer.Delivery{Logger: logger, DryRun: !cfg.MailSendEnabled}
	if cfg.MailSendEnabled {
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
			log.Fatal("Mailgun not configured")
		}
		delivery.Mail = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	} else {
		logger.Warn("MAIL_SEND_ENABLED=false; email jobs are logged, not sent")
	}

	// Prefetch for fair dispatch
	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQNotificationQueue, 16)
	if err != nil {
		log.Fatalf("amqp: %v", err)
	}
	defer consumer.Close()

	msgs, err := consumer.Deliveries()
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range msgs {
			job, err := mailer.Decode(msg.Body)
			if err != nil {
				helpers.LogError(logger, "bad message", err, nil)
				_ = msg.Nack(false, false)
				continue
			}
			c, stop := context.WithTimeout(ctx, 15*time.Second)
			err = delivery.Handle(c, job)
			stop()
			switch {
			case errors.Is(err, mailer.ErrMalformedJob):
				helpers.LogError(logger, "undeliverable job", err, logrus.Fields{"job_id": job.ID})
				_ = msg.Nack(false, false)
			case err != nil:
				helpers.LogError(logger, "delivery failed; requeueing", err, logrus.Fields{"job_id": job.ID})
				_ = msg.Nack(false, true)
			default:
				_ = msg.Ack(false)
			}
		}
	}()

	helpers.LogInfo(logger, "notification worker listening", logrus.Fields{"queue": cfg.RabbitMQNotificationQueue})
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")
	cancel()
	consumer.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
