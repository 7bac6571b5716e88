package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"ore/internal/amqp"
	"ore/internal/clipboard"
	"ore/internal/config"
	"ore/internal/editor"
	"ore/internal/export"
	apphttp "ore/internal/http"
	applog "ore/internal/log"
	"ore/internal/services"
	"ore/internal/store"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// Records live in memory only; everything else hangs off this store.
	recordStore := store.New()
	recordEditor := editor.New(recordStore, nil)
	clip := clipboard.NewMemory()

	var delivery export.Delivery
	switch cfg.ExportDelivery {
	case "dir":
		delivery = export.DirDelivery{Dir: cfg.ExportDir}
		logger.Info("Export delivery writes to directory", "dir", cfg.ExportDir)
	default:
		delivery = export.NoticeDelivery{}
		logger.Info("Export delivery disabled, exports are generated only")
	}

	// AMQP event publishing is optional.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		logger.Info("AMQP export events enabled",
			"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	exportService := services.NewExportService(recordStore, delivery, amqpClient, cfg.ExportDelay, nil)
	defer func() {
		if err := exportService.Close(); err != nil {
			logger.Error("Failed to close export service", "error", err)
		}
	}()

	srv := apphttp.NewServer(":"+cfg.Port, recordStore, recordEditor, exportService, clip)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting ore server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
