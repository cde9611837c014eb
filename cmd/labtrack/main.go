package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"

	_ "github.com/labtrack/labtrack/docs"
	"github.com/labtrack/labtrack/internal/activity"
	activityhttp "github.com/labtrack/labtrack/internal/activity/delivery/http"
	activityrepo "github.com/labtrack/labtrack/internal/activity/repository"
	"github.com/labtrack/labtrack/internal/component"
	componenthttp "github.com/labtrack/labtrack/internal/component/delivery/http"
	componentrepo "github.com/labtrack/labtrack/internal/component/repository"
	"github.com/labtrack/labtrack/internal/config"
	"github.com/labtrack/labtrack/internal/middleware"
	"github.com/labtrack/labtrack/internal/seed"
	"github.com/labtrack/labtrack/internal/user"
	userhttp "github.com/labtrack/labtrack/internal/user/delivery/http"
	userrepo "github.com/labtrack/labtrack/internal/user/repository"
	"github.com/labtrack/labtrack/kafka"
	"github.com/labtrack/labtrack/pkg/database"
	"github.com/labtrack/labtrack/pkg/logger"
	"github.com/labtrack/labtrack/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("storage", cfg.Storage).
		Msg("Starting labtrack")

	// Tracing
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled, continuing without it")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Kafka publisher, optional
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, stock movement events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Handlers, backed by the configured storage
	var (
		componentHandler *componenthttp.ComponentHandler
		activityHandler  *activityhttp.ActivityHandler
		userHandler      *userhttp.UserHandler
		db               *gorm.DB
	)

	switch cfg.Storage {
	case "postgres":
		db, err = database.NewGormConnection(cfg.DB)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
		}
		defer sqlDB.Close()

		componentRepo := componentrepo.NewGormComponentRepository(db)
		logRepo := activityrepo.NewGormLogRepository(db)
		userRepo := userrepo.NewGormUserRepository(db)
		for _, migrate := range []func() error{
			componentRepo.AutoMigrate,
			logRepo.AutoMigrate,
			userRepo.AutoMigrate,
		} {
			if err := migrate(); err != nil {
				logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
			}
		}

		componentHandler, err = component.InitializeHTTPHandler(db, publisher)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize component handler")
		}
		activityHandler, err = activity.InitializeHTTPHandler(db)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize activity handler")
		}
		userHandler, err = user.InitializeHTTPHandler(db)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
		}

		if err := seed.LoadIfEmpty(componentRepo, logRepo, userRepo); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed database")
		}

	default:
		components := componentrepo.NewMemoryComponentRepository()
		logs := activityrepo.NewMemoryLogRepository()
		users := userrepo.NewMemoryUserRepository()

		if err := seed.Load(components, logs, users); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to load demo dataset")
		}

		componentHandler = componenthttp.NewComponentHandler(components, logs, users, publisher)
		activityHandler = activityhttp.NewActivityHandler(logs)
		userHandler = userhttp.NewUserHandler(users)
	}

	// Kafka notification consumer, optional
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	if len(cfg.KafkaBrokers) > 0 {
		startNotificationConsumer(consumerCtx, cfg)
	}

	// Redis response cache, optional
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Redis unavailable, response cache disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Router
	router := mux.NewRouter()
	middleware.RegisterAll(router)
	router.Use(middleware.Cache(redisClient, middleware.CacheConfig{
		TTL:   30 * time.Second,
		Paths: []string{"/api/summary", "/api/logs/movements"},
	}))

	componentHandler.RegisterRoutes(router)
	componentHandler.RegisterHealthCheck(router, db)
	activityHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	componenthttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "http.server")

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// startNotificationConsumer subscribes to stock movement events and
// surfaces low-stock conditions in the service log. It degrades to a
// no-op when the brokers cannot be reached.
func startNotificationConsumer(ctx context.Context, cfg config.Config) {
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaConsumerGroup, []string{kafka.TopicStockMovements})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable, notifications disabled")
		return
	}

	consumer.RegisterHandler(kafka.EventTypeStockMovement, func(ctx context.Context, event kafka.StockMovementEvent) error {
		if event.Remaining == 0 {
			logger.Warn(ctx).
				Str("component", event.ComponentName).
				Str("user", event.User).
				Msg("Component out of stock")
			return nil
		}
		if event.Remaining <= event.Threshold {
			logger.Warn(ctx).
				Str("component", event.ComponentName).
				Int("remaining", event.Remaining).
				Int("threshold", event.Threshold).
				Msg("Component below low stock threshold")
		}
		return nil
	})

	// Start is non-blocking; the consumer runs until ctx is cancelled.
	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
		consumer.Close()
	}
}
