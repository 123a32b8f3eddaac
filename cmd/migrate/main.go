package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/danielyoungkimball/oneoff-mvp/internal/app"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mysql"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	db, err := mysql.Connect(ctx, app.MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		logger.ErrorContext(ctx, "unable to connect to MySQL", "error", err)
		os.Exit(1)
	}

	// MigrateUp closes db.
	if err := mysql.MigrateUp(db); err != nil {
		logger.ErrorContext(ctx, "migration failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "schema is up to date")
}
