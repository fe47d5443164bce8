package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jbeshir/article-board/internal/app"
	"github.com/jbeshir/article-board/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

// Creates one category per argument, e.g. create-category Science Art.
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

	if err := run(ctx, os.Args[1:]); err != nil {
		logger.ErrorContext(ctx, "category creation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("usage: create-category NAME [NAME...]")
	}

	dataset, err := app.SetupDatasetRepository(ctx)
	if err != nil {
		return fmt.Errorf("setting up dataset repository: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("category name must not be empty")
		}

		id, err := dataset.CreateCategory(ctx, name)
		if err != nil {
			return fmt.Errorf("creating category %q: %w", name, err)
		}
		logger.InfoContext(ctx, "created category", "category_id", id, "name", name)
	}

	return nil
}
