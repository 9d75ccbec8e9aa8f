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
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"model-serving-service/internal/config"
	"model-serving-service/internal/dataset"
	"model-serving-service/internal/handler"
	"model-serving-service/internal/lifecycle"
	"model-serving-service/internal/middleware"
	"model-serving-service/internal/storage"
	"model-serving-service/internal/trainer"
	"model-serving-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	store := storage.NewFileStore()
	modelTrainer := trainer.New(cfg.Model)
	manager := lifecycle.NewManager(store, modelTrainer, dataset.Synthesize, lifecycle.Config{
		Dataset:        cfg.Dataset,
		ModelPath:      cfg.Storage.ModelPath,
		DataPath:       cfg.Storage.DataPath,
		PersistTimeout: cfg.Storage.PersistTimeout,
	})

	// Load-or-train blocks serving readiness; a failure degrades to a
	// no-model state recoverable via /retrain instead of killing the process.
	if err := manager.Initialize(context.Background()); err != nil {
		log.WithError(err).Warn("starting without a live model")
	}

	predictUC := usecase.NewPredictionUseCase(manager)
	h := handler.New(predictUC, manager)

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	h.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.Logger.File != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.Logger.File,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		})
	}
}
