// Package config provides configuration management for the Gridiron Edge application.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Ingestion IngestionConfig `mapstructure:"ingestion" validate:"required"`
	Rating    RatingConfig    `mapstructure:"rating" validate:"required"`
	Stats     StatsConfig     `mapstructure:"stats" validate:"required"`
	Odds      OddsConfig      `mapstructure:"odds" validate:"required"`
	Backtest  BacktestConfig  `mapstructure:"backtest" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// IngestionConfig represents schedule and score ingestion configuration
type IngestionConfig struct {
	ScoreboardURL       string `mapstructure:"scoreboard_url" validate:"required,url"`
	Season              int    `mapstructure:"season" validate:"required,min=1970"`
	Weeks               int    `mapstructure:"weeks" validate:"required,min=1,max=22"`
	RequestsPerSecond   int    `mapstructure:"requests_per_second" validate:"required,gt=0"`
	RetryAttempts       int    `mapstructure:"retry_attempts" validate:"required,gte=0"`
	TimeoutSeconds      int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RefreshSchedule     string `mapstructure:"refresh_schedule" validate:"required"`
	CacheTTLSeconds     int    `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheSweepSeconds   int    `mapstructure:"cache_sweep_seconds" validate:"required,gt=0"`
	HistoricalSeasons   []int  `mapstructure:"historical_seasons"`
	SecretsManagerARN   string `mapstructure:"secrets_manager_arn"`
}

// RatingConfig represents team rating computation configuration
type RatingConfig struct {
	SRSRounds   int `mapstructure:"srs_rounds" validate:"required,gt=0"`
	HFAMinGames int `mapstructure:"hfa_min_games" validate:"required,gt=0"`
}

// StatsConfig represents per-team statistics configuration
type StatsConfig struct {
	EMAAlpha             float64 `mapstructure:"ema_alpha" validate:"required,gt=0,lt=1"`
	ChangepointWindow    int     `mapstructure:"changepoint_window" validate:"required,gt=0"`
	ChangepointThreshold float64 `mapstructure:"changepoint_threshold" validate:"required,gt=0"`
	RecentFormGames      int     `mapstructure:"recent_form_games" validate:"required,gt=0"`
}

// OddsConfig represents pricing model configuration
type OddsConfig struct {
	LeagueHFA  float64 `mapstructure:"league_hfa" validate:"gte=0"`
	LogisticK  float64 `mapstructure:"logistic_k" validate:"required,gt=0"`
	Vig        float64 `mapstructure:"vig" validate:"gte=0,lte=0.2"`
	UseTeamHFA bool    `mapstructure:"use_team_hfa"`
}

// BacktestConfig represents backtesting configuration
type BacktestConfig struct {
	EdgeThreshold float64 `mapstructure:"edge_threshold" validate:"required,gt=0,lt=1"`
	FlatStake     int     `mapstructure:"flat_stake" validate:"required,gt=0"`
	TopValueBets  int     `mapstructure:"top_value_bets" validate:"required,gt=0"`
	OutputPath    string  `mapstructure:"output_path" validate:"required"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
