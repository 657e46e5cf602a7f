package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracking/cmd"
	"tracking/internal/adapters/out/events"
	"tracking/internal/adapters/out/kafka"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/rabbitmq"
	"tracking/internal/core/ports"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	if err = postgres.RunMigrations(configs.DSN(), logger); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	publisher, closePublisher, err := newEventPublisher(configs, logger)
	if err != nil {
		log.Fatalf("Error connecting to event broker: %v", err)
	}
	defer closePublisher()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	if err = app.StoreCatalog().Refresh(ctx); err != nil {
		logger.WarnContext(ctx, "initial store catalog load failed", "error", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

// newEventPublisher returns the configured publisher and a func releasing its connection.
func newEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.TravelEventPublisher, func(), error) {
	switch configs.EventBroker {
	case cmd.EventBrokerRabbitMQ:
		conn, ch, err := rabbitmq.Dial(configs.RabbitMQURL)
		if err != nil {
			return nil, nil, err
		}
		publisher, err := rabbitmq.NewTravelPublisher(ch)
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		logger.Info("publishing travel events to rabbitmq", "exchange", rabbitmq.ExchangeName)
		return publisher, func() {
			_ = publisher.Close()
			_ = conn.Close()
		}, nil

	case cmd.EventBrokerKafka:
		producer := kafka.NewTravelProducer(configs.KafkaBroker, configs.KafkaTopic)
		logger.Info("publishing travel events to kafka", "topic", configs.KafkaTopic)
		return producer, func() { _ = producer.Close() }, nil

	default:
		return events.NoopPublisher{}, func() {}, nil
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := app.CreateRouter()

	go func() {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
