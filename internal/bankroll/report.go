package bankroll

import (
	"gonum.org/v1/gonum/stat"
)

// SessionReport is the performance summary of one ledger.
type SessionReport struct {
	TotalBets    int     `json:"total_bets"`
	WinningBets  int     `json:"winning_bets"`
	LosingBets   int     `json:"losing_bets"`
	WinRate      float64 `json:"win_rate"`
	ProfitFactor float64 `json:"profit_factor"`
	Expectancy   float64 `json:"expectancy"`
	AverageWin   float64 `json:"average_win"`
	AverageLoss  float64 `json:"average_loss"`
	LargestWin   float64 `json:"largest_win"`
	LargestLoss  float64 `json:"largest_loss"`
	ROI          float64 `json:"roi"`
	RecoveryRate float64 `json:"recovery_rate"`
}

// BuildReport aggregates a ledger into a session report. A bet wins when
// its payout exceeds its amount; profit factor is gross profit over gross
// loss, 999 for a loss-free winning session.
func BuildReport(ledger *Ledger) SessionReport {
	records := ledger.Records()
	stats := ledger.Stats()

	report := SessionReport{
		TotalBets:    len(records),
		ROI:          stats.ROI.InexactFloat64(),
		RecoveryRate: stats.RecoveryRate.InexactFloat64(),
	}
	if len(records) == 0 {
		return report
	}

	profits := make([]float64, len(records))
	grossProfit := 0.0
	grossLoss := 0.0
	var wins, losses []float64

	for i, r := range records {
		pl := r.Payout.Sub(r.Amount).InexactFloat64()
		profits[i] = pl
		switch {
		case pl > 0:
			report.WinningBets++
			grossProfit += pl
			wins = append(wins, pl)
			if pl > report.LargestWin {
				report.LargestWin = pl
			}
		case pl < 0:
			report.LosingBets++
			grossLoss += -pl
			losses = append(losses, pl)
			if pl < report.LargestLoss {
				report.LargestLoss = pl
			}
		}
	}

	report.WinRate = float64(report.WinningBets) / float64(report.TotalBets) * 100
	report.Expectancy = stat.Mean(profits, nil)
	if len(wins) > 0 {
		report.AverageWin = stat.Mean(wins, nil)
	}
	if len(losses) > 0 {
		report.AverageLoss = stat.Mean(losses, nil)
	}

	switch {
	case grossLoss > 0:
		report.ProfitFactor = grossProfit / grossLoss
	case grossProfit > 0:
		report.ProfitFactor = 999
	}

	return report
}
