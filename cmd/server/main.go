package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"menuflow/internal/config"
	"menuflow/internal/handler"
	"menuflow/internal/notify/lognotify"
	"menuflow/internal/notify/noop"
	"menuflow/internal/port"
	"menuflow/internal/repository/postgres"
	"menuflow/internal/router"
	"menuflow/internal/service"
	s3storage "menuflow/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	menuRepo := postgres.NewMenuRepo(db)
	jobRepo := postgres.NewImportJobRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	var notifier port.ImportNotifier
	switch cfg.Notify.Provider {
	case "noop":
		notifier = noop.NewNoopNotifier()
	default:
		notifier = lognotify.NewLogNotifier()
	}

	// Initialize services
	parseSvc := service.NewParseService(s3Client, &cfg.S3)
	reconcileSvc := service.NewReconcileService(menuRepo, &cfg.Reconcile)
	importSvc := service.NewImportService(menuRepo, jobRepo, notifier, cfg.Import)
	menuSvc := service.NewMenuService(menuRepo)

	// Initialize handlers
	parseH := handler.NewParseHandler(parseSvc)
	reconcileH := handler.NewReconcileHandler(reconcileSvc)
	importH := handler.NewImportHandler(importSvc)
	menuH := handler.NewMenuHandler(menuSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, parseH, reconcileH, importH, menuH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background worker for queued import jobs
	worker := service.NewImportQueueWorker(jobRepo, importSvc, service.ImportQueueConfig{
		PollInterval: time.Duration(cfg.Import.PollIntervalSecs) * time.Second,
		Concurrency:  cfg.Import.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		stop()
		<-workerDone
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	<-workerDone

	log.Println("shutdown complete")
	return nil
}
