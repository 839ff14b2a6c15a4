// Package main provides the entry point for the matchup pricing tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		season     = flag.Int("season", 0, "Season to price (default: config ingestion.season)")
		week       = flag.Int("week", 0, "Only print a single week (0 = all)")
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

	pipeline := service.NewPipeline(cfg, repos, appLogger)
	priced, err := pipeline.PriceSeason(ctx, *season)
	if err != nil {
		appLogger.Fatalf("Failed to price season %d: %v", *season, err)
	}

	printOdds(priced, *season, *week)
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

func printOdds(priced []*models.MatchupOdds, season, week int) {
	fmt.Printf("\n%d Matchup Odds\n", season)
	fmt.Printf("%-4s %-12s %8s %8s %7s %6s %6s\n",
		"Wk", "Matchup", "ML(H)", "ML(A)", "Spread", "O/U", "P(H)")

	count := 0
	for _, o := range priced {
		if week > 0 && o.Week != week {
			continue
		}
		matchup := fmt.Sprintf("%s @ %s", o.AwayTeam, o.HomeTeam)
		fmt.Printf("%-4d %-12s %8s %8s %+7.1f %6.1f %5.1f%%\n",
			o.Week, matchup, formatMoneyline(o.HomeMoneyline), formatMoneyline(o.AwayMoneyline),
			o.Spread, o.OverUnder, o.HomeWinProb*100)
		count++
	}
	fmt.Printf("\n%d matchups priced\n", count)
}

func formatMoneyline(line int) string {
	return fmt.Sprintf("%+d", line)
}
