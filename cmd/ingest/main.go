// Package main provides the entry point for the schedule ingestion tool.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/datasource"
	"github.com/yourusername/gridiron-edge/internal/health"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/scheduler"
	"github.com/yourusername/gridiron-edge/internal/service"
)

func main() {
	var (
		configPath   = flag.String("config", "config/config.yaml", "Path to config file")
		season       = flag.Int("season", 0, "Season to ingest (default: config ingestion.season)")
		week         = flag.Int("week", 0, "Single week to ingest (default: full season)")
		historical   = flag.Bool("historical", false, "Also ingest the configured historical seasons")
		daemon       = flag.Bool("daemon", false, "Run the weekly refresh scheduler instead of a one-shot ingest")
		pollWeek     = flag.Int("poll-week", 0, "With -daemon, also poll this week for in-progress scores")
		pollInterval = flag.Int("poll-interval", 60, "Week polling interval in seconds (minimum 30)")
	)
	flag.Parse()

	cfg := loadConfigWithSecrets(*configPath)
	appLogger := newAppLogger(cfg)
	stdLogger := log.New(os.Stderr, "[ingest] ", log.LstdFlags)
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

	svc := buildIngestionService(cfg, repos, stdLogger)

	if *season == 0 {
		*season = cfg.Ingestion.Season
	}

	if *daemon {
		runScheduler(ctx, cfg, db, repos, svc, appLogger, stdLogger, *season, *pollWeek, *pollInterval)
		return
	}

	if *week > 0 {
		m, err := svc.IngestWeek(ctx, *season, *week)
		if err != nil {
			appLogger.Fatalf("Week ingestion failed: %v", err)
		}
		appLogger.Infof("Ingested season %d week %d: %s", *season, *week, m)
		return
	}

	seasons := []int{*season}
	if *historical {
		seasons = append(seasons, cfg.Ingestion.HistoricalSeasons...)
	}
	for _, s := range seasons {
		m, err := svc.IngestSeason(ctx, s, cfg.Ingestion.Weeks)
		if err != nil {
			appLogger.Fatalf("Season %d ingestion failed: %v", s, err)
		}
		appLogger.Infof("Ingested season %d: %s", s, m)
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

func buildIngestionService(cfg *config.Config, repos *repository.Repositories, stdLogger *log.Logger) *service.IngestionService {
	httpCfg := datasource.DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.Ingestion.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.Ingestion.RetryAttempts
	httpCfg.RateLimit = float64(cfg.Ingestion.RequestsPerSecond)

	httpClient := datasource.NewRateLimitedHTTPClient(httpCfg, stdLogger)
	source := datasource.NewESPNClient(httpClient, cfg.Ingestion.ScoreboardURL, stdLogger)
	validator := service.NewDataValidator(stdLogger)

	return service.NewIngestionService(source, repos.Game, validator, stdLogger)
}

func newAppLogger(cfg *config.Config) *logrus.Logger {
	return logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
}

func runScheduler(ctx context.Context, cfg *config.Config, db *database.DB, repos *repository.Repositories, svc *service.IngestionService, appLogger *logrus.Logger, stdLogger *log.Logger, season, pollWeek, pollInterval int) {
	pipeline := service.NewPipeline(cfg, repos, appLogger)

	sched := scheduler.NewScheduler(svc, pipeline, stdLogger)
	if err := sched.ScheduleSeasonRefresh(cfg.Ingestion.RefreshSchedule, season, cfg.Ingestion.Weeks); err != nil {
		appLogger.Fatalf("Failed to schedule season refresh: %v", err)
	}
	if pollWeek > 0 {
		if err := sched.ScheduleWeekPolling(pollInterval, season, pollWeek); err != nil {
			appLogger.Fatalf("Failed to schedule week polling: %v", err)
		}
	}
	if err := sched.Start(); err != nil {
		appLogger.Fatalf("Failed to start scheduler: %v", err)
	}

	healthSrv := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Logger:      appLogger,
		DB:          db,
	})
	if err := healthSrv.Start(ctx); err != nil {
		appLogger.Fatalf("Failed to start health server: %v", err)
	}
	healthSrv.SetReady(true)

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg, stdLogger)
	}

	stdLogger.Printf("Scheduler running, next refresh at %s", sched.GetNextRun().Format(time.RFC3339))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range sigChan {
		if sig != syscall.SIGHUP {
			break
		}
		// SIGHUP rereads the config named by GRIDIRON_EDGE_CONFIG_PATH.
		if err := config.ReloadFromEnv(cfg); err != nil {
			stdLogger.Printf("Config reload failed: %v", err)
			continue
		}
		stdLogger.Printf("Configuration reloaded")
	}

	healthSrv.SetReady(false)
	if err := sched.Stop(); err != nil {
		stdLogger.Printf("Error stopping scheduler: %v", err)
	}
	if err := healthSrv.Shutdown(); err != nil {
		stdLogger.Printf("Error stopping health server: %v", err)
	}
}

func serveMetrics(cfg *config.Config, stdLogger *log.Logger) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())
	addr := ":" + strconv.Itoa(cfg.Metrics.Port)
	stdLogger.Printf("Serving metrics on %s%s", addr, cfg.Metrics.Path)
	if err := http.ListenAndServe(addr, mux); err != nil {
		stdLogger.Printf("Metrics server stopped: %v", err)
	}
}
