// Package main provides the betting-session simulation CLI. It replays a
// sequence of settled bets through the bankroll ledger and prints the
// session report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/keiba-engine/internal/bankroll"
	"github.com/yourusername/keiba-engine/internal/config"
	"github.com/yourusername/keiba-engine/internal/logger"
	"github.com/yourusername/keiba-engine/internal/metrics"
)

// Outcome is one settled bet in the replay file.
type Outcome struct {
	Amount float64 `json:"amount"`
	Payout float64 `json:"payout"`
}

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		input      = flag.String("input", "", "Path to outcomes JSON file (defaults to stdin)")
	)
	flag.Parse()

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewLogger(cfg.App.LogLevel)

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg, appLogger)
	}

	outcomes, err := readOutcomes(*input)
	if err != nil {
		appLogger.Fatalf("Failed to read outcomes: %v", err)
	}

	report := replay(cfg, outcomes, appLogger)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		appLogger.Fatalf("Failed to encode report: %v", err)
	}
}

// SessionResult is the printed summary.
type SessionResult struct {
	Stats   bankroll.Stats         `json:"stats"`
	Report  bankroll.SessionReport `json:"report"`
	Halted  bool                   `json:"halted"`
	Skipped int                    `json:"skipped"`
}

func replay(cfg *config.Config, outcomes []Outcome, appLogger *logrus.Logger) *SessionResult {
	audit := logger.NewAuditLogger(appLogger)
	ledger := bankroll.NewLedger(decimal.NewFromFloat(cfg.Session.InitialBankroll), appLogger)
	breaker := bankroll.NewBreaker(bankroll.BreakerConfig{
		MaxConsecutiveLosses: cfg.Session.MaxConsecutiveLosses,
		MaxDrawdown:          cfg.Session.MaxDrawdown,
	}, appLogger)

	skipped := 0
	for _, outcome := range outcomes {
		if breaker.Tripped() {
			skipped++
			continue
		}

		amount := decimal.NewFromFloat(outcome.Amount)
		payout := decimal.NewFromFloat(outcome.Payout)

		accepted := ledger.PlaceBet(amount)
		audit.LogBetPlaced("session", amount, ledger.Balance(), accepted, time.Now())
		if !accepted {
			skipped++
			continue
		}

		ledger.RecordPayout(amount, payout)
		audit.LogPayoutRecorded("session", amount, payout, ledger.Balance())

		wasTripped := breaker.Tripped()
		breaker.RecordOutcome(payout.Sub(amount), ledger.Balance())
		if !wasTripped && breaker.Tripped() {
			metrics.BreakerTripsTotal.Inc()
			audit.LogBreakerEvent("session",
				bankroll.BreakerClosed.String(), bankroll.BreakerOpen.String(),
				"session limits reached")
		}

		metrics.CurrentBankroll.Set(ledger.Balance().InexactFloat64())
	}

	stats := ledger.Stats()
	metrics.SessionROI.Set(stats.ROI.InexactFloat64())

	return &SessionResult{
		Stats:   stats,
		Report:  bankroll.BuildReport(ledger),
		Halted:  breaker.Tripped(),
		Skipped: skipped,
	}
}

func serveMetrics(cfg *config.Config, appLogger *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())
	addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
	appLogger.WithField("addr", addr).Info("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		appLogger.WithError(err).Warn("Metrics server stopped")
	}
}

func readOutcomes(path string) ([]Outcome, error) {
	reader := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var outcomes []Outcome
	if err := json.NewDecoder(reader).Decode(&outcomes); err != nil {
		return nil, fmt.Errorf("failed to parse outcomes: %w", err)
	}
	return outcomes, nil
}
