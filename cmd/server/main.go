package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-sdk/config"
	"checkout-sdk/internal/api"
	"checkout-sdk/internal/broker"
	"checkout-sdk/internal/journal"
	"checkout-sdk/internal/redisclient"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/service"
	"checkout-sdk/internal/util"
	"checkout-sdk/internal/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env, cfg.Server.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting checkout session host")

	if cfg.Observ.JaegerEndpoint != "" {
		tp, err := util.InitTracer(cfg.Observ.ServiceName, cfg.Observ.JaegerEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				logger.Error("Error shutting down tracer", zap.Error(err))
			}
		}()
	}

	checks := map[string]api.ReadinessCheck{}

	var (
		cache sender.Cache
		keys  worker.Idempotency
	)
	if cfg.Redis.Addr != "" {
		redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		logger.Info("Redis connected")

		cache = redisClient.NewCache("checkout-sdk", cfg.Redis.CacheTTL)
		keys = redisClient
		checks["redis"] = redisClient.Ping
	}

	var (
		notifications worker.Journal
		lister        api.NotificationLister
	)
	if cfg.Database.URL != "" {
		j, err := journal.Open(cfg.Database.URL)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer j.Close()

		if err := j.Migrate(); err != nil {
			logger.Fatal("Failed to migrate journal", zap.Error(err))
		}
		logger.Info("Database connected")

		notifications = j
		lister = j
		checks["database"] = j.Ping
	}

	checkout := service.NewCheckoutService(service.Options{
		BaseURL:        cfg.Backend.BaseURL,
		PaymentHost:    cfg.Backend.PaymentHost,
		Locale:         cfg.Session.Locale,
		RequestTimeout: cfg.Backend.RequestTimeout,
		Cache:          cache,
	})

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var notificationWorker *worker.NotificationWorker
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicSignals)
		defer producer.Close()

		publisher := broker.NewSignalPublisher(producer, 1024)
		unsubscribe := checkout.Subscribe(publisher.Observe)
		defer unsubscribe()
		go func() {
			if err := publisher.Run(workerCtx); err != nil && err != context.Canceled {
				logger.Error("Signal publisher error", zap.Error(err))
			}
		}()
		logger.Info("Kafka signal journal initialized", zap.String("topic", cfg.Kafka.TopicSignals))

		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicNotifications, cfg.Kafka.ConsumerGroup)
		notificationWorker = worker.NewNotificationWorker(consumer, checkout, notifications, keys, cfg.Session.CheckoutID)
		go func() {
			if err := notificationWorker.Start(workerCtx); err != nil && err != context.Canceled {
				logger.Error("Notification worker error", zap.Error(err))
			}
		}()
	}

	if cfg.Session.CheckoutID != "" {
		go func() {
			if _, err := checkout.LoadConfig(workerCtx); err != nil {
				logger.Warn("Initial config load failed", zap.Error(err))
			}
			if _, err := checkout.LoadCheckout(workerCtx, cfg.Session.CheckoutID); err != nil {
				logger.Warn("Initial checkout load failed", zap.Error(err))
			}
		}()
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(checkout, checks)
	if lister != nil {
		handler.EnableNotifications(lister)
	}
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	workerCancel()
	if notificationWorker != nil {
		if err := notificationWorker.Stop(); err != nil {
			logger.Error("Failed to stop notification worker", zap.Error(err))
		}
	}

	logger.Info("Server exited")
}
