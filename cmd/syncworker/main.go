package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/config"
	bookingRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/booking"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/integrations/gcalendar"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/worker/calendarsync"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/logger"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/metrics"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting MerchantCare calendar sync worker...")

	if !cfg.Queue.Enabled {
		log.Fatal("queue.enabled must be true for the sync worker")
	}

	// Метрики воркера (если включены) на соседнем с API порту
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName + "-syncworker")

		metricsAddr := fmt.Sprintf(":%d", cfg.Server.HTTPPort+1)
		go func() {
			mux := http.NewServeMux()
			mux.Handle(cfg.Metrics.Path, promhttp.Handler())
			log.Info("Worker metrics exposed at %s%s", metricsAddr, cfg.Metrics.Path)
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.Error("Worker metrics server stopped: %v", err)
			}
		}()
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент внешнего календаря
	calendarClient := gcalendar.NewClient(
		cfg.Calendar.URL,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar client initialized (url=%s, timeout=%ds)", cfg.Calendar.URL, cfg.Calendar.Timeout)

	// Очередь задач
	consumer, err := syncqueue.NewConsumer(cfg.Queue.URL, cfg.Queue.Exchange, cfg.Queue.Queue)
	if err != nil {
		log.Fatal("Failed to connect consumer to queue: %v", err)
	}
	defer consumer.Close()

	publisher, err := syncqueue.NewPublisher(cfg.Queue.URL, cfg.Queue.Exchange)
	if err != nil {
		log.Fatal("Failed to connect publisher to queue: %v", err)
	}
	defer publisher.Close()

	log.Info("Queue connected (exchange=%s, queue=%s)", cfg.Queue.Exchange, cfg.Queue.Queue)

	worker := calendarsync.NewWorker(
		calendarClient,
		bookingRepo.NewRepository(db),
		publisher,
		metricsCollector,
		cfg.Calendar.MaxAttempts,
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliveries, err := consumer.Deliveries(ctx)
	if err != nil {
		log.Fatal("Failed to start consuming: %v", err)
	}

	// Останавливаемся по сигналу
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down worker...")
		cancel()
	}()

	if err := worker.Run(ctx, deliveries); err != nil && err != context.Canceled {
		log.Error("Worker stopped with error: %v", err)
	}

	log.Info("Worker stopped gracefully")
}
