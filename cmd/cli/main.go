package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reomoon/memo/internal/client/cli"
	"github.com/reomoon/memo/internal/client/config"
	"github.com/reomoon/memo/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewText(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg, logger)
	root.SetArgs(config.CommandArgs(os.Args[1:]))

	if err := root.ExecuteContext(ctx); err != nil {
		log.Printf("%v", err)
		stop()
		os.Exit(1)
	}

}
