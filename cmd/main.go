package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/velochron/planline/internal/config"
	"github.com/velochron/planline/internal/handler"
	"github.com/velochron/planline/internal/health"
	"github.com/velochron/planline/internal/infra/coveragerecorder"
	"github.com/velochron/planline/internal/infra/hrviolation"
	"github.com/velochron/planline/internal/infra/repository"
	"github.com/velochron/planline/internal/observability/logging"
	"github.com/velochron/planline/internal/observability/metrics"
	"github.com/velochron/planline/internal/observability/middleware"
	"github.com/velochron/planline/internal/service/coverage"
	"github.com/velochron/planline/internal/service/lane"
	"github.com/velochron/planline/internal/service/planning"
	"github.com/velochron/planline/internal/service/segment"
	"github.com/velochron/planline/internal/service/timeline"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	planningMetrics, err := metrics.NewPlanningMetrics()
	if err != nil {
		slog.Error("failed to initialize planning metrics", slog.String("error", err.Error()))
		return 1
	}

	// Coverage recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := coveragerecorder.LoadConfig()
	coverageRecorder, err := coveragerecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize coverage recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := coverageRecorder.Close(); err != nil {
			slog.Warn("failed to close coverage recorder", slog.String("error", err.Error()))
		}
	}()

	var violationClient hrviolation.ViolationRepository
	if cfg.ViolationServiceURL != "" {
		violationClient = hrviolation.NewClient(cfg.ViolationServiceURL)
	} else {
		slog.Warn("HR_VIOLATION_SERVICE_URL not set, violation display disabled")
	}

	taskQueue, cleanup, err := initTaskQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize task queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("task queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	scheduleRepo := repository.NewScheduleRepository(redisClient)

	materializer := timeline.NewMaterializer(segment.NewSplitter())
	planningService := planning.NewService(
		scheduleRepo,
		violationClient,
		materializer,
		lane.NewPacker(),
		coverage.NewAggregator(),
		planningMetrics,
	)
	planningHandler := handler.NewPlanningHandler(planningService, cfg, coverageRecorder, taskQueue)
	scheduleHandler := handler.NewScheduleHandler(scheduleRepo)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("planline"),
		TracerName:  "github.com/velochron/planline/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/planning", planningHandler.HandlePlanningView)
		v1.GET("/planning/:date/lanes", planningHandler.HandleDayLanes)
		v1.GET("/planning/:date/coverage", planningHandler.HandleDayCoverage)
		v1.PUT("/schedule/days/:date", scheduleHandler.HandleUpsertDaySchedule)
		v1.GET("/schedule/days/:date", scheduleHandler.HandleGetDaySchedule)
		v1.PUT("/schedule/days/:date/assignments", scheduleHandler.HandleReplaceAssignments)
		v1.PUT("/coverage/requirements/:weekday", scheduleHandler.HandleReplaceRequirements)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("default_view_days", cfg.Planning.DefaultViewDays),
			slog.Int("max_range_days", cfg.Planning.MaxRangeDays),
			slog.Bool("alerts_enabled", cfg.Planning.AlertsEnabled),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
