package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/provider"
	"github.com/lumie-registry/internal/worker"
)

// Run 启动应用并阻塞到收到退出信号
func Run(opts Options) error {
	opts.Normalize()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}
	logger.Init(cfg.Server.Mode, logger.Options{
		Dir:        cfg.Log.Dir,
		Filename:   cfg.Log.Filename,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	defer func() { _ = logger.Z().Sync() }()

	container, err := provider.New(cfg)
	if err != nil {
		return fmt.Errorf("build container failed: %w", err)
	}
	defer container.Close()

	var httpService *HTTPService
	if opts.Mode == ModeAll || opts.Mode == ModeAPI {
		httpService = NewHTTPService(container)
		httpService.Start()
	}

	var taskWorker *worker.Worker
	if (opts.Mode == ModeAll || opts.Mode == ModeWorker) && cfg.Queue.Enable && container.Cache != nil {
		taskWorker = worker.New(cfg.Redis, cfg.Queue, container.OrderService)
		if err := taskWorker.Start(); err != nil {
			return fmt.Errorf("start worker failed: %w", err)
		}
		logger.Infow("task worker started", "concurrency", cfg.Queue.Concurrency)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Infow("shutting down", "signal", sig.String())

	if taskWorker != nil {
		taskWorker.Shutdown()
	}
	if httpService != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpService.Shutdown(ctx); err != nil {
			logger.Warnw("http shutdown incomplete", "error", err)
		}
	}
	logger.Infow("bye")
	return nil
}
