package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerLevelParsing(t *testing.T) {
	log := NewLogger("debug", "development")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	log := NewLogger("chatty", "development")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerProductionUsesJSON(t *testing.T) {
	log := NewLogger("info", "production")
	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok, "production logger should use JSON formatter")
}

func TestPipelineLoggerIngestion(t *testing.T) {
	log, buf := setupTestLogger()
	pipelineLogger := NewPipelineLogger(log)

	pipelineLogger.LogIngestion(2024, 18, 272, 256, 1500*time.Millisecond)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(2024), logEntry["season"])
	assert.Equal(t, float64(272), logEntry["games_fetched"])
	assert.Equal(t, "pipeline", logEntry["component"])
}

func TestPipelineLoggerRatingsComputed(t *testing.T) {
	log, buf := setupTestLogger()
	pipelineLogger := NewPipelineLogger(log)

	pipelineLogger.LogRatingsComputed(2024, 32, 3, 40*time.Millisecond)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(32), logEntry["teams"])
	assert.Equal(t, float64(3), logEntry["hfa_fallbacks"])
}

func TestPipelineLoggerBacktestComplete(t *testing.T) {
	log, buf := setupTestLogger()
	pipelineLogger := NewPipelineLogger(log)

	pipelineLogger.LogBacktestComplete("run-abc", 2024, 272, 19, 4.2)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "run-abc", logEntry["run_id"])
	assert.Equal(t, float64(19), logEntry["value_bets"])
	assert.Equal(t, 4.2, logEntry["roi_percent"])
}

func TestPipelineLoggerStageFailure(t *testing.T) {
	log, buf := setupTestLogger()
	pipelineLogger := NewPipelineLogger(log)

	pipelineLogger.LogStageFailure("ratings", 2024, errors.New("no completed games"))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "ratings", logEntry["stage"])
	assert.Equal(t, "no completed games", logEntry["error"])
}

func TestLoggerJSONFormat(t *testing.T) {
	log, buf := setupTestLogger()
	pipelineLogger := NewPipelineLogger(log)

	pipelineLogger.LogOddsComputed(2024, 16, 7*time.Millisecond)

	// Verify output is valid JSON
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	assert.NoError(t, err)
	assert.NotEmpty(t, logEntry)
}

func BenchmarkPipelineLoggerOddsComputed(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	pipelineLogger := NewPipelineLogger(log)

	for i := 0; i < b.N; i++ {
		pipelineLogger.LogOddsComputed(2024, 16, 7*time.Millisecond)
	}
}
