package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/danielyoungkimball/oneoff-mvp/internal/app"
	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	res, err := run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "embedding backfill failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "embedding backfill completed",
		"indexed", res.Indexed,
		"failed", res.Failed)
}

func run(ctx context.Context) (command.BackfillProductEmbeddingsResponse, error) {
	backfillCmd, closeFn, err := app.SetupBackfill(ctx)
	if err != nil {
		return command.BackfillProductEmbeddingsResponse{}, err
	}
	defer func() { _ = closeFn() }()

	return backfillCmd.Execute(ctx, command.BackfillProductEmbeddingsRequest{})
}
