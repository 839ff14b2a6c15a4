// Package config provides configuration management for the Gridiron Edge application.
package config

import (
	"os"
	"strings"
	"testing"
)

const (
	validConfigPath            = "testdata/valid_config.yaml"
	expansionConfigPath        = "testdata/expansion_config.yaml"
	expansionConfigMissingPath = "testdata/expansion_config_missing.yaml"
	nonexistentConfigPath      = "testdata/nonexistent_config.yaml"
	expectedNoErrorLoadingMsg  = "expected no error loading config, got %v"
	expectedNoErrorMsg         = "expected no error, got %v"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.App.Name != "gridiron-edge" {
		t.Errorf("expected app name 'gridiron-edge', got '%s'", cfg.App.Name)
	}

	if cfg.App.Environment != "development" {
		t.Errorf("expected environment 'development', got '%s'", cfg.App.Environment)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("expected database host 'localhost', got '%s'", cfg.Database.Host)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("expected database port 5432, got %d", cfg.Database.Port)
	}

	if cfg.Ingestion.Season != 2024 {
		t.Errorf("expected ingestion season 2024, got %d", cfg.Ingestion.Season)
	}

	if cfg.Odds.LogisticK != 0.145 {
		t.Errorf("expected logistic_k 0.145, got %v", cfg.Odds.LogisticK)
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	os.Setenv("GRIDIRON_EDGE_APP_NAME", "test-app")
	defer os.Unsetenv("GRIDIRON_EDGE_APP_NAME")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != "test-app" {
		t.Errorf("expected app name 'test-app' from environment, got '%s'", cfg.App.Name)
	}
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingMsg, err)
	}

	err = Validate(cfg)
	if err != nil {
		t.Fatalf("expected no validation error, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests validation of invalid environment
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingMsg, err)
	}

	cfg.App.Environment = "invalid"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
}

// TestValidateInvalidLogLevel tests validation of invalid log level
func TestValidateInvalidLogLevel(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingMsg, err)
	}

	cfg.App.LogLevel = "verbose"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid log level")
	}

	if !strings.Contains(err.Error(), "LogLevel") {
		t.Errorf("expected log level validation error, got: %v", err)
	}
}

// TestValidateHistoricalSeasons tests cross-field season ordering
func TestValidateHistoricalSeasons(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingMsg, err)
	}

	cfg.Ingestion.HistoricalSeasons = []int{2025}
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for historical season not before target season")
	}
}

// TestValidateIdleConnections tests pool size cross-field check
func TestValidateIdleConnections(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingMsg, err)
	}

	cfg.Database.MaxIdleConnections = cfg.Database.MaxConnections + 1
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for idle connections exceeding max connections")
	}
}

// TestGetDatabaseDSN tests DSN generation
func TestGetDatabaseDSN(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingMsg, err)
	}

	dsn := cfg.GetDatabaseDSN()
	if dsn == "" {
		t.Fatal("expected non-empty DSN")
	}

	if !strings.HasPrefix(dsn, "postgres://") {
		t.Errorf("expected DSN to start with 'postgres://', got '%s'", dsn)
	}
}

// TestIsDevelopment tests environment check function
func TestIsDevelopment(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "development"},
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return true")
	}

	if cfg.IsProduction() {
		t.Error("expected IsProduction() to return false")
	}
}

// TestIsProduction tests production environment check
func TestIsProduction(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "production"},
	}

	if !cfg.IsProduction() {
		t.Error("expected IsProduction() to return true")
	}

	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return false")
	}
}

// TestIsStaging tests staging environment check
func TestIsStaging(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "staging"},
	}

	if !cfg.IsStaging() {
		t.Error("expected IsStaging() to return true")
	}

	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return false")
	}
}

// TestLoadConfigEnvironmentVariableExpansion tests environment variable expansion in config file
func TestLoadConfigEnvironmentVariableExpansion(t *testing.T) {
	os.Setenv("TEST_DB_PASSWORD", "expanded_secret_value")
	defer os.Unsetenv("TEST_DB_PASSWORD")

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config with expansion, got %v", err)
	}

	if cfg.Database.Password != "expanded_secret_value" {
		t.Errorf("expected password 'expanded_secret_value' from environment expansion, got '%s'", cfg.Database.Password)
	}
}

// TestLoadConfigMissingEnvironmentVariable tests handling of missing environment variables
func TestLoadConfigMissingEnvironmentVariable(t *testing.T) {
	os.Unsetenv("TEST_MISSING_VAR")

	cfg, err := Load(expansionConfigMissingPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingMsg, err)
	}

	// os.ExpandEnv replaces unset variables with the empty string
	if cfg.Database.Password != "" {
		t.Errorf("expected empty password for missing env var, got %q", cfg.Database.Password)
	}
}

// TestLoadWithDefaults tests defaults when the file is absent
func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Environment != "development" {
		t.Errorf("expected default environment 'development', got '%s'", cfg.App.Environment)
	}

	if cfg.Rating.SRSRounds != 20 {
		t.Errorf("expected default srs_rounds 20, got %d", cfg.Rating.SRSRounds)
	}

	if cfg.Backtest.EdgeThreshold != 0.05 {
		t.Errorf("expected default edge_threshold 0.05, got %v", cfg.Backtest.EdgeThreshold)
	}

	if cfg.Backtest.OutputPath != "output/backtest.json" {
		t.Errorf("expected default output_path 'output/backtest.json', got %q", cfg.Backtest.OutputPath)
	}
}

// TestReloadFromEnv tests config replacement via GRIDIRON_EDGE_CONFIG_PATH
func TestReloadFromEnv(t *testing.T) {
	os.Setenv("GRIDIRON_EDGE_CONFIG_PATH", validConfigPath)
	defer os.Unsetenv("GRIDIRON_EDGE_CONFIG_PATH")

	cfg := &Config{}
	if err := ReloadFromEnv(cfg); err != nil {
		t.Fatalf("expected no error reloading config, got %v", err)
	}

	if cfg.App.Name != "gridiron-edge" {
		t.Errorf("expected reloaded app name 'gridiron-edge', got %q", cfg.App.Name)
	}
	if cfg.Ingestion.Season != 2024 {
		t.Errorf("expected reloaded season 2024, got %d", cfg.Ingestion.Season)
	}
}

// TestReloadFromEnvUnset tests that a missing path leaves the config alone
func TestReloadFromEnvUnset(t *testing.T) {
	os.Unsetenv("GRIDIRON_EDGE_CONFIG_PATH")

	cfg := &Config{App: AppConfig{Name: "unchanged"}}
	if err := ReloadFromEnv(cfg); err != nil {
		t.Fatalf("expected no error when path is unset, got %v", err)
	}

	if cfg.App.Name != "unchanged" {
		t.Errorf("expected config untouched, got app name %q", cfg.App.Name)
	}
}

// TestReloadFromEnvBadPath tests error propagation for an unreadable path
func TestReloadFromEnvBadPath(t *testing.T) {
	os.Setenv("GRIDIRON_EDGE_CONFIG_PATH", nonexistentConfigPath)
	defer os.Unsetenv("GRIDIRON_EDGE_CONFIG_PATH")

	cfg := &Config{App: AppConfig{Name: "unchanged"}}
	if err := ReloadFromEnv(cfg); err == nil {
		t.Fatal("expected error for missing config file")
	}

	if cfg.App.Name != "unchanged" {
		t.Errorf("expected config untouched after failed reload, got app name %q", cfg.App.Name)
	}
}
