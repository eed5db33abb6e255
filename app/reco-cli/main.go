package main

import (
	"context"
	"fmt"
	"log"
	"myGreenReco/app/reco-cli/command"
	"myGreenReco/business/recommendation"
	"myGreenReco/pkg/config"
	"myGreenReco/pkg/logger"
	"myGreenReco/pkg/metrics"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	defer func() { _ = logger.Sync() }()

	metrics.Init()

	// Ctrl-C cancels an in-flight query
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	traceID := uuid.NewString()
	ctx = recommendation.WithTraceID(ctx, traceID)

	logger.Debug("Starting "+cfg.App.Name, "version", cfg.App.Version, "trace_id", traceID)

	if err := command.NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
