package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/service"
)

var (
	configFile string
	season     int
	appLogger  *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	repos      *repository.Repositories
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().IntVarP(&season, "season", "s", 0, "Season to rate (default: config ingestion.season)")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(h2hCmd)
	h2hCmd.Flags().StringVar(&h2hTeam, "team", "", "Only print rivalries involving this team code")
}

var rootCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Compute and persist team power ratings",
	Long:  `Computes season records, strength of schedule, SRS, and home field advantage for every team, persists the ratings, and prints power rankings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		if season == 0 {
			season = cfg.Ingestion.Season
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return computeAndPrint(cmd.Context())
	},
}

var h2hTeam string

var h2hCmd = &cobra.Command{
	Use:   "h2h",
	Short: "Print head-to-head records across the loaded seasons",
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline := service.NewPipeline(cfg, repos, appLogger)
		records, err := pipeline.HeadToHead(cmd.Context(), season)
		if err != nil {
			return fmt.Errorf("failed to compute head-to-head records: %w", err)
		}
		printHeadToHead(records, h2hTeam)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print previously persisted ratings without recomputing",
	RunE: func(cmd *cobra.Command, args []string) error {
		ratings, err := repos.Rating.GetBySeason(cmd.Context(), season)
		if err != nil {
			return fmt.Errorf("failed to load ratings: %w", err)
		}
		printRankings(ratings)
		return nil
	},
}

func main() {
	defer closeDB()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func setupDependencies() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		if err := config.LoadSecretsFromAWS(cfg, os.Getenv("AWS_REGION"), os.Getenv("AWS_SECRET_NAME")); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	db, err = database.Initialize(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	return nil
}

func closeDB() {
	if db != nil {
		db.Close()
	}
}

func computeAndPrint(ctx context.Context) error {
	pipeline := service.NewPipeline(cfg, repos, appLogger)

	ratings, err := pipeline.ComputeRatings(ctx, season)
	if err != nil {
		return fmt.Errorf("failed to compute ratings: %w", err)
	}
	if _, err := pipeline.ComputeStats(ctx, season); err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	printRankings(ratings)
	return nil
}

func printRankings(ratings []*models.TeamRating) {
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].SRS > ratings[j].SRS })

	fmt.Printf("\n%d Power Rankings\n", season)
	fmt.Printf("%-4s %-5s %-8s %6s %6s %7s %7s\n", "Rank", "Team", "Record", "PPD", "SOS", "SRS", "HFA")
	for i, r := range ratings {
		record := fmt.Sprintf("%d-%d", r.Wins, r.Losses)
		if r.Ties > 0 {
			record = fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Ties)
		}
		hfa := fmt.Sprintf("%+.1f", r.HFA)
		if !r.HFAKnown {
			hfa += "*"
		}
		fmt.Printf("%-4d %-5s %-8s %+6.1f %6.3f %+7.2f %7s\n", i+1, r.TeamCode, record, r.PPD, r.SOS, r.SRS, hfa)
	}
	fmt.Println("\n* league-average home field advantage (insufficient home sample)")
}

func printHeadToHead(records []*models.HeadToHead, team string) {
	fmt.Println("\nHead-to-Head Records")
	fmt.Printf("%-10s %-8s %6s %6s %6s %-16s\n", "Matchup", "Record", "PPG1", "PPG2", "Avg", "Last Meeting")
	for _, h := range records {
		if team != "" && h.Team1 != team && h.Team2 != team {
			continue
		}
		record := fmt.Sprintf("%d-%d", h.Team1Wins, h.Team2Wins)
		if h.Ties > 0 {
			record = fmt.Sprintf("%d-%d-%d", h.Team1Wins, h.Team2Wins, h.Ties)
		}
		last := fmt.Sprintf("%d wk%d %s", h.LastMeetingSeason, h.LastMeetingWeek, h.LastMeetingScore)
		fmt.Printf("%-10s %-8s %6.1f %6.1f %6.1f %-16s\n",
			h.Team1+"-"+h.Team2, record, h.Team1PPG, h.Team2PPG, h.AvgTotalPoints, last)
	}
}
