package datasource

import (
	"context"
	"errors"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// ScheduleSource defines the interface for fetching NFL schedule and score
// data from external providers
type ScheduleSource interface {
	// FetchWeek retrieves all games for one week of a regular season
	FetchWeek(ctx context.Context, season, week int) ([]*models.Game, error)

	// FetchSeason retrieves all games for a regular season
	FetchSeason(ctx context.Context, season, weeks int) ([]*models.Game, error)

	// Name returns the name of the data source
	Name() string
}

// DataSourceError represents errors from data source operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e DataSourceError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel corresponding to the error code, so callers can use
// errors.Is without inspecting codes.
func (e DataSourceError) Is(target error) bool {
	switch e.Code {
	case ErrCodeRateLimitExceeded:
		return target == ErrRateLimitExceeded
	case ErrCodeNotFound:
		return target == ErrNotFound
	case ErrCodeInvalidData:
		return target == ErrInvalidData
	case ErrCodeNetworkError:
		return target == ErrNetworkError
	case ErrCodeServerError:
		return target == ErrServerError
	}
	return false
}

// Common error codes
const (
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrCodeNotFound          = "not_found"
	ErrCodeInvalidData       = "invalid_data"
	ErrCodeNetworkError      = "network_error"
	ErrCodeServerError       = "server_error"
)

// Error sentinels
var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrNotFound          = errors.New("data not found")
	ErrInvalidData       = errors.New("invalid data format")
	ErrNetworkError      = errors.New("network error")
	ErrServerError       = errors.New("server error")
)

// NewDataSourceError creates a new data source error
func NewDataSourceError(source, code, message string, err error) DataSourceError {
	return DataSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
