package backtest

import (
	"github.com/shopspring/decimal"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// recordROI settles one flat-stake wager on the model's favored side at the
// posted moneyline. Tied games are skipped entirely: nothing is wagered.
// Stakes and payouts are tracked in decimal so repeated favorite payouts
// (100 * 100/|line|) accumulate without float drift.
func (e *Evaluator) recordROI(record *models.BacktestRecord, pred *models.MatchupOdds, homeWon, tie bool) {
	if tie {
		return
	}
	record.UnitsWagered += e.cfg.FlatStake

	stake := decimal.NewFromInt(int64(e.cfg.FlatStake))
	betOnHome := pred.PredictedHomeWin()

	line := pred.AwayMoneyline
	won := !homeWon
	if betOnHome {
		line = pred.HomeMoneyline
		won = homeWon
	}

	if won {
		record.MoneylineProfit = record.MoneylineProfit.Add(payout(stake, line))
	} else {
		record.MoneylineProfit = record.MoneylineProfit.Sub(stake)
	}
}

// payout returns the profit on a winning stake at an American line: a
// negative line pays stake*100/|line|, a positive line pays stake*line/100.
// Rounded to cents.
func payout(stake decimal.Decimal, line int) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if line < 0 {
		return stake.Mul(hundred).Div(decimal.NewFromInt(int64(-line))).Round(2)
	}
	return stake.Mul(decimal.NewFromInt(int64(line))).Div(hundred).Round(2)
}
