package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/blobkeeper/internal/cli"
	"github.com/dmitrijs2005/blobkeeper/internal/config"
	"github.com/dmitrijs2005/blobkeeper/internal/logging"
	slotfactory "github.com/dmitrijs2005/blobkeeper/internal/slot/factory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "blobkeeper:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel).With("backend", cfg.Backend)

	provider, closeFn, err := slotfactory.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFn(); err != nil {
			logger.Error(ctx, "failed to close slot provider", "error", err)
		}
	}()

	app, err := cli.NewApp(cfg, provider, logger)
	if err != nil {
		return err
	}
	return app.Run(ctx, args, os.Stdin)
}
