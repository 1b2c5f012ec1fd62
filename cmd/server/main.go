package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agricure/api/internal/config"
	"github.com/agricure/api/internal/database"
	"github.com/agricure/api/internal/handlers"
	"github.com/agricure/api/internal/logger"
	"github.com/agricure/api/internal/middleware"
	"github.com/agricure/api/internal/repository"
	"github.com/agricure/api/internal/sensors"
	"github.com/agricure/api/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

// stores bundles the repositories the services run on.
type stores struct {
	farms repository.FarmRepository
	logs  repository.RecommendationLogRepository
	db    *database.Database
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env)
	log.Info("Starting AgriCure API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
		"database":    cfg.Database.Enabled,
		"live_feed":   cfg.Sensor.LiveFeedEnabled(),
	})

	ctx := context.Background()
	st := openStores(ctx, cfg, log)
	if st.db != nil {
		defer st.db.Close()
	}

	// Sensor feed: live ThingSpeak channel when configured, mock otherwise
	mockFeed := sensors.NewMockFeed()
	var live sensors.Fetcher
	sensorMode := "mock"
	if cfg.Sensor.LiveFeedEnabled() {
		live = sensors.NewThingSpeakClient(cfg.Sensor.BaseURL, cfg.Sensor.ChannelID, cfg.Sensor.ReadAPIKey, cfg.Sensor.Timeout)
		sensorMode = "live"
	}
	poller := sensors.NewPoller(sensors.NewFallbackFetcher(live, mockFeed, log), cfg.Sensor.PollInterval, log)

	pollCtx, stopPolling := context.WithCancel(ctx)
	defer stopPolling()
	go poller.Start(pollCtx)

	// Initialize service layer
	recommendationService := services.NewRecommendationService(st.logs, log)
	sensorService := services.NewSensorService(poller, mockFeed, log)
	overviewService := services.NewOverviewService(st.farms, st.logs, sensorService, log)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Middleware order: RequestID -> Session -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Session(cfg.Session.DefaultUser))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	var pinger handlers.Pinger
	if st.db != nil {
		pinger = st.db
	}
	healthHandler := handlers.NewHealthHandler(pinger, cfg.Server.Env, sensorMode)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	sensorHandler := handlers.NewSensorHandler(sensorService)
	farmHandler := handlers.NewFarmHandler(overviewService)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/info", healthHandler.Info)
		v1.GET("/session", handlers.Session)
		v1.GET("/overview", farmHandler.Overview)
		v1.GET("/farms", farmHandler.List)

		recommendations := v1.Group("/recommendations")
		{
			recommendations.POST("", recommendationHandler.Create)
			recommendations.GET("/history", recommendationHandler.History)
		}

		sensorRoutes := v1.Group("/sensors")
		{
			sensorRoutes.GET("/latest", sensorHandler.Latest)
			sensorRoutes.GET("/history", sensorHandler.History)
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...", nil)
	stopPolling()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}

// openStores returns PostgreSQL repositories when the database is enabled
// and seeded in-memory ones otherwise. It exits on database failures.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) stores {
	if !cfg.Database.Enabled {
		log.Info("Using in-memory storage with demo data", nil)
		return stores{
			farms: repository.NewMemoryFarmRepository(repository.DemoFarms(time.Now())),
			logs:  repository.NewMemoryLogRepository(repository.DemoLogs()),
		}
	}

	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		log.Fatal("Failed to migrate database", err, nil)
	}

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	farms := repository.NewFarmRepository(db)
	logs := repository.NewRecommendationLogRepository(db)
	if err := repository.SeedDemoData(ctx, farms, logs, time.Now()); err != nil {
		log.Error("Failed to seed demo data", err, nil)
	}

	return stores{
		farms: farms,
		logs:  logs,
		db:    db,
	}
}
