package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"leadgen/internal/platform/config"
	"leadgen/internal/platform/logger"
)

// main wires configuration and logging, then hands off to run. Business
// logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	for _, w := range cfg.Warnings {
		log.Warn("configuration", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		stop()
		os.Exit(1)
	}
	log.Info("server stopped")
}
