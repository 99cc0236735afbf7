package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studioops/internal/ai"
	"studioops/internal/api"
	"studioops/internal/config"
	"studioops/internal/db"
	"studioops/internal/jobs"
	"studioops/internal/pubsub"
	"studioops/internal/schema"
	"studioops/internal/service"
	"studioops/internal/storage"
	"studioops/internal/ws"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrations(cfg); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		os.Exit(0)
	}

	if len(os.Args) > 1 && os.Args[1] == "goose-migrate" {
		if err := runGooseMigrations(cfg); err != nil {
			log.Fatalf("Goose migration failed: %v", err)
		}
		os.Exit(0)
	}

	if len(os.Args) > 1 && os.Args[1] != "serve" {
		log.Fatalf("Unknown command: %s (use 'serve', 'migrate' or 'goose-migrate')", os.Args[1])
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Database connection
	dbPool, err := db.NewPool(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Pub/sub bus
	bus := pubsub.New(rdb, logger)

	// AI boundary: mock by default, HTTP adapter when a service URL is set
	var analyzer ai.Analyzer
	if cfg.AIMock || cfg.AIURL == "" {
		analyzer = ai.MockAdapter{ModelVersion: "mock-1"}
	} else {
		analyzer = ai.HTTPAdapter{BaseURL: cfg.AIURL}
	}

	// Background jobs
	jobServer, jobClient := jobs.NewJobServer(cfg.RedisAddr, dbPool, bus, analyzer, logger)
	go func() {
		if err := jobServer.Start(); err != nil {
			logger.Fatal("Job server failed", zap.Error(err))
		}
	}()
	defer jobServer.Stop()

	// WebSocket hub
	hub := ws.NewHub(logger)
	hub.SetStreamsProvider(&wsStreamsAdapter{streams: bus.GetStreams()})
	go hub.Run()
	bus.SetWSHub(hub)

	// Attachment storage
	store, err := storage.NewLocalStorage(cfg.StorageDir, cfg.BaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Services
	schemaComp := schema.NewCompiler(64)
	jobClientWrapper := service.NewAsynqJobClient(jobClient)

	feedbackSvc := service.NewFeedbackService(dbPool.Queries, schemaComp, bus)
	feedbackSvc.SetJobClient(jobClientWrapper)
	feedbackSvc.SetEscalationWindow(cfg.EscalateAfter)
	builderSvc := service.NewBuilderService(analyzer, logger)
	historySvc := service.NewHistoryService(dbPool.Queries)

	// HTTP router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Timeout middleware - skip for WebSocket upgrades
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Upgrade") == "websocket" {
				next.ServeHTTP(w, req)
				return
			}
			middleware.Timeout(cfg.RequestTimeout)(next).ServeHTTP(w, req)
		})
	})

	r.Mount("/", api.Routes(api.Dependencies{
		DB:        dbPool,
		Bus:       bus,
		Hub:       hub,
		Log:       logger,
		JobClient: jobClientWrapper,
		Analyzer:  analyzer,
		Feedback:  feedbackSvc,
		Builder:   builderSvc,
		History:   historySvc,
		Store:     store,
		JWTSecret: cfg.JWTSecret,
	}))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	logger.Info("Starting server", zap.String("addr", cfg.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}

// wsStreamsAdapter adapts pubsub.Streams to ws.StreamsProvider
type wsStreamsAdapter struct {
	streams *pubsub.Streams
}

func (a *wsStreamsAdapter) GetLastSequence(channel, connectionID string) (int64, error) {
	return a.streams.GetLastSequence(channel, connectionID)
}

func (a *wsStreamsAdapter) AcknowledgeSequence(channel, connectionID string, sequence int64) error {
	return a.streams.AcknowledgeSequence(channel, connectionID, sequence)
}

func (a *wsStreamsAdapter) ReplayEvents(channel string, sinceSeq int64, limit int64) ([]ws.StreamEvent, error) {
	events, err := a.streams.ReplayEvents(channel, sinceSeq, limit)
	if err != nil {
		return nil, err
	}

	wsEvents := make([]ws.StreamEvent, len(events))
	for i, e := range events {
		wsEvents[i] = ws.StreamEvent{
			Channel:   e.Channel,
			Sequence:  e.Sequence,
			Event:     e.Event,
			Timestamp: e.Timestamp,
		}
	}
	return wsEvents, nil
}
