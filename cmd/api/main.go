package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/vitalis-health/backend/internal/api/handlers"
	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/api/routes"
	"github.com/vitalis-health/backend/internal/domain/exerciselog"
	"github.com/vitalis-health/backend/internal/domain/foodlog"
	"github.com/vitalis-health/backend/internal/domain/healthgoal"
	"github.com/vitalis-health/backend/internal/domain/healthmetric"
	"github.com/vitalis-health/backend/internal/domain/insight"
	"github.com/vitalis-health/backend/internal/domain/notification"
	"github.com/vitalis-health/backend/internal/domain/sleeplog"
	"github.com/vitalis-health/backend/internal/domain/user"
	"github.com/vitalis-health/backend/internal/domain/waterlog"
	"github.com/vitalis-health/backend/internal/infrastructure/cache"
	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/migrations"
	"github.com/vitalis-health/backend/internal/infrastructure/scheduler"
	"github.com/vitalis-health/backend/internal/observability"
	"github.com/vitalis-health/backend/pkg/config"
	"github.com/vitalis-health/backend/pkg/logger"
	"github.com/vitalis-health/backend/pkg/security/auth"
)

// @title           Vitalis Health API
// @version         1.0
// @description     A personal health tracking API covering goals, hydration, sleep, exercise, nutrition and body metrics.

// @host      localhost:8000
// @BasePath

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("")
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.NewLogger(cfg.Logging.Level)
	defer log.Sync()

	log.Info("configuration loaded", zap.String("mode", cfg.Server.Mode))

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		log.Fatal("failed to run database migrations", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cache.NewConfigFromEnv(cfg))
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	rateLimiter := auth.NewRedisRateLimiter(redisClient.GetClient(), cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)

	metrics := observability.NewMetrics()

	// The notification pipeline logs through logrus; everything else uses
	// the zap wrapper.
	notificationLogger := logrus.New()
	notificationLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		notificationLogger.SetLevel(logrus.InfoLevel)
	} else {
		notificationLogger.SetLevel(logrus.DebugLevel)
	}

	// Repositories
	userRepo := user.NewRepository(db)
	goalRepo := healthgoal.NewRepository(db)
	waterRepo := waterlog.NewRepository(db)
	sleepRepo := sleeplog.NewRepository(db)
	exerciseRepo := exerciselog.NewRepository(db)
	foodRepo := foodlog.NewRepository(db)
	metricRepo := healthmetric.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	insightRepo := insight.NewRepository(db)

	// Services. The user service doubles as the goal resolver for water
	// and food statistics, and completed or overdue goals are announced
	// through the notification service.
	userService := user.NewService(userRepo, log)
	notificationService := notification.NewService(notificationRepo, notificationLogger)
	goalService := healthgoal.NewService(goalRepo, notification.NewGoalNotifier(notificationService), log)
	waterService := waterlog.NewService(waterRepo, userService, log)
	sleepService := sleeplog.NewService(sleepRepo, log)
	exerciseService := exerciselog.NewService(exerciseRepo, log)
	foodService := foodlog.NewService(foodRepo, userService, log)
	metricService := healthmetric.NewService(metricRepo, log)
	insightService := insight.NewService(insightRepo, log)

	jobs := scheduler.NewScheduler(goalService, waterService, userRepo, notificationService, log)
	jobs.Start()
	defer jobs.Stop()

	middleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.NewRequestID())
	router.Use(middleware.NewRequestLogger(log))
	router.Use(middleware.NewMetricsMiddleware(metrics))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Type",
			"Authorization",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Encoding",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.NewRateLimitMiddleware(rateLimiter, log))

	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret, log)
	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, cfg.Cache.KeyPrefix, cfg.Cache.TTL, log)

	// Handlers
	userHandler := handlers.NewUserHandler(userService, log)
	goalHandler := handlers.NewHealthGoalHandler(goalService, log)
	waterHandler := handlers.NewWaterLogHandler(waterService, log)
	sleepHandler := handlers.NewSleepLogHandler(sleepService, log)
	exerciseHandler := handlers.NewExerciseLogHandler(exerciseService, log)
	foodHandler := handlers.NewFoodLogHandler(foodService, log)
	metricHandler := handlers.NewHealthMetricHandler(metricService, log)
	notificationHandler := handlers.NewNotificationHandler(notificationService, log)
	insightHandler := handlers.NewInsightHandler(insightService, log)
	dashboardHandler := handlers.NewDashboardHandler(
		goalService,
		waterService,
		sleepService,
		foodService,
		metricService,
		notificationService,
		log,
	)
	healthHandler := handlers.NewHealthHandler(db, redisClient, log)

	// Routes
	routes.NewSystemRoutes(healthHandler, metrics).RegisterRoutes(router)
	routes.NewUserRoutes(userHandler).RegisterRoutes(router, authMiddleware)
	routes.NewHealthGoalRoutes(goalHandler).RegisterRoutes(router, authMiddleware, cacheMiddleware)
	routes.NewWaterLogRoutes(waterHandler).RegisterRoutes(router, authMiddleware, cacheMiddleware)
	routes.NewSleepLogRoutes(sleepHandler).RegisterRoutes(router, authMiddleware, cacheMiddleware)
	routes.NewExerciseLogRoutes(exerciseHandler).RegisterRoutes(router, authMiddleware, cacheMiddleware)
	routes.NewFoodLogRoutes(foodHandler).RegisterRoutes(router, authMiddleware, cacheMiddleware)
	routes.NewHealthMetricRoutes(metricHandler).RegisterRoutes(router, authMiddleware, cacheMiddleware)
	routes.NewNotificationRoutes(notificationHandler).RegisterRoutes(router, authMiddleware)
	routes.NewInsightRoutes(insightHandler).RegisterRoutes(router, authMiddleware)
	routes.NewDashboardRoutes(dashboardHandler).RegisterRoutes(router, authMiddleware, cacheMiddleware)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		log.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
