package service

import (
	"fmt"
	"sync"
	"time"
)

// IngestionMetrics tracks statistics about schedule ingestion
type IngestionMetrics struct {
	mu               sync.RWMutex
	StartTime        time.Time
	Duration         time.Duration
	TotalGames       int
	CompletedGames   int
	UpcomingGames    int
	ValidationErrors int
	Errors           int
}

// NewIngestionMetrics creates a new metrics tracker
func NewIngestionMetrics() *IngestionMetrics {
	return &IngestionMetrics{
		StartTime: time.Now(),
	}
}

// Reset resets all metrics
func (m *IngestionMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StartTime = time.Now()
	m.Duration = 0
	m.TotalGames = 0
	m.CompletedGames = 0
	m.UpcomingGames = 0
	m.ValidationErrors = 0
	m.Errors = 0
}

// RecordGame tallies one fetched game
func (m *IngestionMetrics) RecordGame(completed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalGames++
	if completed {
		m.CompletedGames++
	} else {
		m.UpcomingGames++
	}
}

// RecordError increments error count
func (m *IngestionMetrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors++
}

// RecordValidationError increments validation error count
func (m *IngestionMetrics) RecordValidationError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationErrors++
}

// String returns a formatted string representation of metrics
func (m *IngestionMetrics) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fmt.Sprintf(
		"IngestionMetrics{Total=%d, Completed=%d, Upcoming=%d, ValidationErrors=%d, Errors=%d, Duration=%v}",
		m.TotalGames,
		m.CompletedGames,
		m.UpcomingGames,
		m.ValidationErrors,
		m.Errors,
		m.Duration,
	)
}
