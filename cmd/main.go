package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/ambulance_dispatch/internal/config"
	v1 "github.com/shenikar/ambulance_dispatch/internal/handler/http/v1"
	"github.com/shenikar/ambulance_dispatch/internal/repository"
	"github.com/shenikar/ambulance_dispatch/internal/service"
	"github.com/shenikar/ambulance_dispatch/internal/webhook"
	"github.com/shenikar/ambulance_dispatch/pkg/logger"
	"github.com/shenikar/ambulance_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/ambulance_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/ambulance_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Ambulance Dispatch API
// @version 1.0
// @description Ranks available ambulances by proximity to an emergency.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Журнал вызовов ранжирования (опционально)
	var dispatchLogRepo service.DispatchLogRepository
	if cfg.AuditEnabled() {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		dispatchLogRepo = repository.NewDispatchLogRepository(dbpool)
	} else {
		log.Warn("DATABASE_URL is not set, dispatch log and stats are disabled")
	}

	// Очередь вебхуков (опционально)
	var webhookPublisher webhook.WebhookPublisher
	var workerDone <-chan struct{}
	if cfg.WebhooksEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		webhookPublisher = webhook.NewRedisWebhookPublisher(redisClient)

		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		workerDone = webhookWorker.Start(ctx)
	} else {
		log.Warn("REDIS_ADDR is not set, dispatch webhooks are disabled")
	}

	// Инициализация сервисов
	dispatchService := service.NewDispatchService(dispatchLogRepo, webhookPublisher, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dispatchService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.CORSMiddleware(cfg))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер вебхуков и ждем его выхода
	cancel()
	if workerDone != nil {
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
