// Package main provides the entry point for the backtesting CLI tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yourusername/gridiron-edge/internal/backtest"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		season     = flag.Int("season", 0, "Season to backtest (default: config ingestion.season)")
		output     = flag.String("output", "", "Write the summary JSON to this path (default: config backtest.output_path)")
	)
	flag.Parse()

	cfg := loadConfigWithSecrets(*configPath)
	appLogger := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	ctx := context.Background()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		appLogger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		appLogger.Fatalf("Failed to initialize repositories: %v", err)
	}

	if *season == 0 {
		*season = cfg.Ingestion.Season
	}
	if *output == "" {
		*output = cfg.Backtest.OutputPath
	}

	pipeline := service.NewPipeline(cfg, repos, appLogger)
	summary, err := pipeline.RunBacktest(ctx, *season)
	if err != nil {
		appLogger.Fatalf("Backtest failed: %v", err)
	}

	fmt.Print(backtest.GenerateConsoleReport(summary))

	if *output != "" {
		if err := backtest.GenerateJSONReport(summary, *output); err != nil {
			appLogger.Fatalf("Failed to write JSON report: %v", err)
		}
		appLogger.Infof("Backtest summary written to %s", *output)
	}
}

func loadConfigWithSecrets(path string) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}
