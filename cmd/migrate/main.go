package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"furnished-lease-engine/internal/handler/middleware"
	"furnished-lease-engine/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

type migrateConfig struct {
	DB     config.DBConfig
	Log    config.LogConfig
	DevURL string `envconfig:"ATLAS_DEV_URL" default:"docker://postgres/17/dev"`
	Binary string `envconfig:"ATLAS_BIN" default:"atlas"`
}

// Applies migrations/ declaratively against DB_* with the atlas CLI.
func main() {
	schemaPath := flag.String("schema", "file://migrations/001_initial_schema.sql", "desired schema")
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	flag.Parse()

	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to process env config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	wd, err := os.Getwd()
	if err != nil {
		logger.Error("failed to resolve working directory", "error", err)
		os.Exit(1)
	}
	client, err := atlasexec.NewClient(wd, cfg.Binary)
	if err != nil {
		logger.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          *schemaPath,
		DevURL:      cfg.DevURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	logger.Info("schema applied",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", *dryRun)
}
