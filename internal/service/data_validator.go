package service

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// DataValidator validates fetched game data before persistence
type DataValidator struct {
	validate *validator.Validate
	logger   *log.Logger
}

// NewDataValidator creates a new data validator
func NewDataValidator(logger *log.Logger) *DataValidator {
	return &DataValidator{
		validate: validator.New(),
		logger:   logger,
	}
}

// ValidateGame validates a game for required fields and score consistency
func (v *DataValidator) ValidateGame(game *models.Game) []string {
	var errors []string

	if err := v.validate.Struct(game); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				errors = append(errors, fmt.Sprintf("%s failed %s", fieldError.StructField(), fieldError.Tag()))
			}
		} else {
			errors = append(errors, err.Error())
		}
	}

	if game.HomeTeam == game.AwayTeam {
		errors = append(errors, fmt.Sprintf("team cannot play itself: %s", game.HomeTeam))
	}

	if game.Week > 22 {
		errors = append(errors, fmt.Sprintf("week out of range, got %d", game.Week))
	}

	// Completed games must carry a full score pair
	if game.IsCompleted {
		if game.HomeScore == nil || game.AwayScore == nil {
			errors = append(errors, "completed game missing final score")
		} else {
			if *game.HomeScore < 0 || *game.AwayScore < 0 {
				errors = append(errors, "scores cannot be negative")
			}
			errors = append(errors, v.checkQuarterSums(game)...)
		}
	}

	return errors
}

// checkQuarterSums verifies that quarter splits, when present, add up to the
// final score. Linescores occasionally go missing upstream; absence is fine,
// inconsistency is not.
func (v *DataValidator) checkQuarterSums(game *models.Game) []string {
	var errors []string

	if sum, ok := quarterSum(game.HomeQ1, game.HomeQ2, game.HomeQ3, game.HomeQ4, game.HomeOT); ok && sum != *game.HomeScore {
		errors = append(errors, fmt.Sprintf("home quarters sum to %d, final score is %d", sum, *game.HomeScore))
	}
	if sum, ok := quarterSum(game.AwayQ1, game.AwayQ2, game.AwayQ3, game.AwayQ4, game.AwayOT); ok && sum != *game.AwayScore {
		errors = append(errors, fmt.Sprintf("away quarters sum to %d, final score is %d", sum, *game.AwayScore))
	}

	return errors
}

func quarterSum(quarters ...*int) (int, bool) {
	sum := 0
	for _, q := range quarters {
		if q == nil {
			return 0, false
		}
		sum += *q
	}
	return sum, true
}
