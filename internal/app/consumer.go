package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-tutorcenter/internal/config"
	"go-tutorcenter/internal/events"
	"go-tutorcenter/internal/messaging/kafka/consumer"
	"go-tutorcenter/internal/salarycalc"
	"go-tutorcenter/internal/shared/connection"
	"go-tutorcenter/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const statementConsumerGroup = "go-tutorcenter-salary-statement"

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.ConnectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	salaryCalcRepo := salarycalc.NewRepository(gormDB)
	salaryCalcService := salarycalc.NewService(sqlDB, salaryCalcRepo, counter.NewRepository(gormDB), zap.L())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.SalaryCalculationLifecycleTopic,
		GroupID:        statementConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeSalaryCalculationLifecycle(ctx, reader, salaryCalcService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
