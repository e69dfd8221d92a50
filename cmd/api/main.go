package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/adittyaff/pelanggan-mapper/internal/config"
	"github.com/adittyaff/pelanggan-mapper/internal/dataset"
	"github.com/adittyaff/pelanggan-mapper/internal/httpserver"
	"github.com/adittyaff/pelanggan-mapper/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := dataset.NewStore()
	if cfg.DataFile != "" {
		snap, err := store.LoadFile(cfg.DataFile)
		if err != nil {
			logger.Fatal("dataset load failed", zap.String("path", cfg.DataFile), zap.Error(err))
		}
		logger.Info("dataset loaded",
			zap.String("source", snap.Source),
			zap.Int("records", len(snap.Records)),
			zap.Int("skipped", snap.Skipped),
			zap.String("status_column", snap.StatusColumn))

		if cfg.WatchData {
			if err := dataset.Watch(ctx, logger, store, cfg.DataFile); err != nil {
				logger.Fatal("dataset watcher failed", zap.Error(err))
			}
		}
	}

	srv := httpserver.New(cfg, store, logger)
	logger.Info("REST API listening", zap.String("addr", cfg.ListenAddr()))

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
