package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bagdasarian/token-topup/internal/app"
	"github.com/bagdasarian/token-topup/internal/config"
	"github.com/bagdasarian/token-topup/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, closer := logger.New(cfg.Log)
	defer closer.Close()

	ctx := context.Background()
	log.DebugContext(ctx, "starting report",
		slog.String("source", cfg.Source),
		slog.String("output", cfg.Files.Output),
	)

	// ошибка выводится, но код завершения не меняется
	if err := app.Run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, err.Error())
	}
}
