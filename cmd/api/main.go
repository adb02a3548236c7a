package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/motorhub/carcare/internal/bookings"
	"github.com/motorhub/carcare/internal/expenses"
	"github.com/motorhub/carcare/internal/garages"
	"github.com/motorhub/carcare/internal/notifications"
	"github.com/motorhub/carcare/internal/reminders"
	"github.com/motorhub/carcare/internal/users"
	"github.com/motorhub/carcare/internal/vehicles"
	"github.com/motorhub/carcare/pkg/common"
	"github.com/motorhub/carcare/pkg/config"
	"github.com/motorhub/carcare/pkg/database"
	"github.com/motorhub/carcare/pkg/logger"
	"github.com/motorhub/carcare/pkg/middleware"
	redisclient "github.com/motorhub/carcare/pkg/redis"
	"go.uber.org/zap"
)

const (
	serviceName = "carcare-api"
	version     = "1.0.0"
)

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting carcare API",
		zap.String("service", serviceName),
		zap.String("version", version),
		zap.String("environment", cfg.Server.Environment),
	)

	db, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Connected to database")

	// Redis is optional. Without it garage reference data is read straight
	// from the database on every request.
	var redisClient *redisclient.Client
	var garageCache garages.Cache
	if redisClient, err = redisclient.NewRedisClient(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, reference data caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		garageCache = redisClient
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Failed to close redis client", zap.Error(err))
			}
		}()
	}

	usersHandler := users.NewHandler(users.NewService(users.NewRepository(db)))
	vehiclesHandler := vehicles.NewHandler(vehicles.NewService(vehicles.NewRepository(db)))
	garagesHandler := garages.NewHandler(garages.NewService(garages.NewRepository(db), garageCache))
	bookingsHandler := bookings.NewHandler(bookings.NewService(bookings.NewRepository(db)))
	expensesHandler := expenses.NewHandler(expenses.NewService(expenses.NewRepository(db)))
	remindersHandler := reminders.NewHandler(reminders.NewService(reminders.NewRepository(db)))
	notificationsHandler := notifications.NewHandler(notifications.NewService(notifications.NewRepository(db)))

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger(serviceName))
	router.Use(middleware.CORS())

	router.GET("/healthz", common.HealthCheck(serviceName, version))
	router.GET("/health/live", common.LivenessProbe(serviceName, version))

	healthChecks := map[string]func() error{
		"database": func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return db.Ping(ctx)
		},
	}
	if redisClient != nil {
		healthChecks["redis"] = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err()
		}
	}
	router.GET("/health/ready", common.ReadinessProbe(serviceName, version, healthChecks))

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": serviceName,
			"version": version,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	usersHandler.RegisterRoutes(api)
	vehiclesHandler.RegisterRoutes(api)
	garagesHandler.RegisterRoutes(api)
	bookingsHandler.RegisterRoutes(api)
	expensesHandler.RegisterRoutes(api)
	remindersHandler.RegisterRoutes(api)
	notificationsHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}
