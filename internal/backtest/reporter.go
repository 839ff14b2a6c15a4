package backtest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GenerateConsoleReport formats a backtest summary for terminal output
func GenerateConsoleReport(s *Summary) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Backtest Report: %d Season\n", s.Season))
	builder.WriteString("===========================\n")
	builder.WriteString(fmt.Sprintf("Games Evaluated: %d\n", s.TotalGames))
	builder.WriteString(fmt.Sprintf("Moneyline: %s (%.1f%%)\n", s.MoneylineRecord, s.MoneylineAccuracy))
	builder.WriteString(fmt.Sprintf("Against the Spread: %s (%.1f%%)\n", s.SpreadRecord, s.SpreadAccuracy))
	builder.WriteString(fmt.Sprintf("Totals: %.1f%% over / %.1f%% under\n", s.OverRate, s.UnderRate))
	builder.WriteString("\nCalibration\n")
	builder.WriteString(fmt.Sprintf("%-10s %6s %10s %10s %8s\n", "Bucket", "Games", "Actual", "Expected", "Error"))
	for _, row := range s.Calibration {
		builder.WriteString(fmt.Sprintf("%-10s %6d %9.1f%% %9.1f%% %7.1f%%\n",
			row.Bucket, row.Games, row.ActualWinRate, row.ExpectedRate, row.CalibrationError))
	}
	builder.WriteString("\nValue Bets\n")
	builder.WriteString(fmt.Sprintf("Flagged: %d  Wins: %d (%.1f%%)  Avg Edge: %.1f%%\n",
		s.ValueBets.Count, s.ValueBets.Wins, s.ValueBets.WinRate, s.ValueBets.AvgEdge))
	for i, bet := range s.TopValueBets {
		builder.WriteString(fmt.Sprintf("%2d. Week %-2d %s @ %s: %s (edge %+.1f%%, %s)\n",
			i+1, bet.Week, bet.AwayTeam, bet.HomeTeam, bet.Side,
			bet.Edge*100, wonLost(bet.Won)))
	}
	builder.WriteString("\nFlat-Stake Moneyline Simulation\n")
	builder.WriteString(fmt.Sprintf("Units Wagered: %d  Profit: %+.2f  ROI: %+.2f%%\n",
		s.ROI.UnitsWagered, s.ROI.MoneylineProfit, s.ROI.MoneylineROI))

	if len(s.WeeklyBreakdown) > 0 {
		builder.WriteString("\nWeekly Breakdown\n")
		builder.WriteString(fmt.Sprintf("%-6s %6s %10s %10s\n", "Week", "Games", "ML", "ATS"))
		weeks := make([]int, 0, len(s.WeeklyBreakdown))
		for w := range s.WeeklyBreakdown {
			weeks = append(weeks, w)
		}
		sort.Ints(weeks)
		for _, w := range weeks {
			wk := s.WeeklyBreakdown[w]
			builder.WriteString(fmt.Sprintf("%-6d %6d %7d/%-2d %7d/%-2d\n",
				w, wk.Games, wk.MLCorrect, wk.Games, wk.SpreadCovered, wk.Games))
		}
	}
	return builder.String()
}

// GenerateJSONReport writes the summary as indented JSON
func GenerateJSONReport(s *Summary, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling backtest summary: %w", err)
	}
	return os.WriteFile(outputPath, data, 0o644)
}

func wonLost(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}
