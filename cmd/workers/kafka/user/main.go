package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/databus/user"
	"github.com/s21platform/team-chat-service/internal/repository/postgres"
	"github.com/s21platform/team-chat-service/internal/repository/versions"
)

const userProfileConsumerGroupID = "team-chat-profile-updater"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name+"-user-worker", cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	versionStore, err := versions.New(cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect redis: %v", err))
		return
	}
	defer versionStore.Close() //nolint:errcheck // .

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.UserTopic,
		userProfileConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
		return
	}

	userHandler := user.New(dbRepo, versionStore)
	consumer.RegisterHandler(ctx, userHandler.Handler)

	<-ctx.Done()
	logger.Info("user profile worker stopped")
}
