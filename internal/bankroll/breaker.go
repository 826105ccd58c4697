package bankroll

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// BreakerState represents the state of the session breaker.
type BreakerState int

const (
	// BreakerClosed means betting is active
	BreakerClosed BreakerState = iota
	// BreakerOpen means betting is halted for the session
	BreakerOpen
)

// String returns string representation of breaker state
func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "CLOSED"
	case BreakerOpen:
		return "OPEN"
	default:
		return "UNKNOWN"
	}
}

// BreakerConfig defines session stop-loss thresholds.
type BreakerConfig struct {
	MaxConsecutiveLosses int     `json:"max_consecutive_losses"`
	MaxDrawdown          float64 `json:"max_drawdown"`
}

// Breaker halts a betting session after a loss streak or drawdown limit.
// It reads outcome and balance, never mutates the ledger.
type Breaker struct {
	config            BreakerConfig
	state             BreakerState
	consecutiveLosses int
	peak              decimal.Decimal
	drawdown          float64
	mu                sync.Mutex
	logger            *logrus.Logger
}

// NewBreaker creates a closed breaker with the given thresholds.
func NewBreaker(config BreakerConfig, logger *logrus.Logger) *Breaker {
	return &Breaker{
		config: config,
		state:  BreakerClosed,
		peak:   decimal.Zero,
		logger: logger,
	}
}

// RecordOutcome feeds one settled bet into the breaker. A negative profit
// extends the loss streak; any profit resets it. Drawdown is measured
// from the session's peak balance.
func (b *Breaker) RecordOutcome(profitLoss, currentBalance decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if currentBalance.GreaterThan(b.peak) {
		b.peak = currentBalance
	}
	if b.peak.IsPositive() {
		b.drawdown = b.peak.Sub(currentBalance).Div(b.peak).InexactFloat64()
	}

	if profitLoss.IsNegative() {
		b.consecutiveLosses++

		b.logger.WithFields(logrus.Fields{
			"consecutive_losses": b.consecutiveLosses,
			"max_allowed":        b.config.MaxConsecutiveLosses,
			"drawdown":           b.drawdown,
			"max_drawdown":       b.config.MaxDrawdown,
		}).Warn("Losing bet recorded")

		if b.config.MaxConsecutiveLosses > 0 && b.consecutiveLosses >= b.config.MaxConsecutiveLosses {
			b.openLocked("consecutive loss limit reached")
			return
		}
		if b.config.MaxDrawdown > 0 && b.drawdown >= b.config.MaxDrawdown {
			b.openLocked("drawdown limit reached")
			return
		}
	} else if profitLoss.IsPositive() {
		b.consecutiveLosses = 0
	}
}

// Tripped reports whether the session is halted.
func (b *Breaker) Tripped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == BreakerOpen
}

// State returns the current breaker state.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Reset manually re-arms the breaker.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	old := b.state
	b.state = BreakerClosed
	b.consecutiveLosses = 0

	b.logger.WithFields(logrus.Fields{
		"old_state": old.String(),
		"new_state": b.state.String(),
	}).Info("Session breaker reset")
}

func (b *Breaker) openLocked(reason string) {
	if b.state == BreakerOpen {
		return
	}
	b.state = BreakerOpen

	b.logger.WithFields(logrus.Fields{
		"reason":             reason,
		"consecutive_losses": b.consecutiveLosses,
		"drawdown":           b.drawdown,
	}).Error("Session betting halted")
}
