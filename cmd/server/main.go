package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"fleetwatch-service/internal/domain/repository"
	"fleetwatch-service/internal/infrastructure/config"
	"fleetwatch-service/internal/infrastructure/persistence"
	"fleetwatch-service/internal/interface/api"
	repo "fleetwatch-service/internal/interface/repository"
	"fleetwatch-service/internal/usecase"
	"fleetwatch-service/pkg/logger"
	"fleetwatch-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Fleetwatch Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up storage
	var store repository.Storage
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		log.Info("Connecting to PostgreSQL")
		gormDB, err := persistence.NewGormDB(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		gormStore := repo.NewGormStorage(gormDB)
		if err := gormStore.Migrate(ctx); err != nil {
			log.Fatal("Failed to migrate PostgreSQL schema", "error", err)
		}
		store = gormStore
	default:
		log.Info("Using in-memory storage")
		store = repo.NewMemoryStorage()
	}

	if cfg.SeedData {
		if err := usecase.Seed(ctx, store, log); err != nil {
			log.Fatal("Failed to seed demo data", "error", err)
		}
	}

	// Set up session store
	var sessions repository.SessionRepository
	var mongoClient *mongo.Client
	switch cfg.SessionBackend {
	case config.BackendMongo:
		log.Info("Connecting to MongoDB")
		mongoClient, err = persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		sessions, err = repo.NewMongoSessionRepository(ctx, persistence.GetDatabase(mongoClient, cfg.MongoDB))
		if err != nil {
			log.Fatal("Failed to set up session store", "error", err)
		}
	default:
		sessions = repo.NewMemorySessionRepository()
	}

	// Set up metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	// Set up HTTP API
	gin.SetMode(gin.ReleaseMode)
	auth := usecase.NewAuthService(store, sessions, cfg.SessionTTL, log)
	handler := api.NewHandler(store, auth, m, log, api.CookieConfig{
		Name:   cfg.SessionCookie,
		MaxAge: int(cfg.SessionTTL / time.Second),
	})
	router := api.NewRouter(handler, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Fleetwatch Service stopped")
}
