// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AuditLogger provides a dedicated audit trail for money movements and
// recommendation decisions.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogBetPlaced logs a ledger debit.
func (al *AuditLogger) LogBetPlaced(sessionID string, amount, balance decimal.Decimal, accepted bool, timestamp time.Time) {
	al.WithFields(logrus.Fields{
		"session_id": sessionID,
		"amount":     amount,
		"balance":    balance,
		"accepted":   accepted,
		"timestamp":  timestamp.Unix(),
	}).Info("Bet placement recorded")
}

// LogPayoutRecorded logs a ledger credit.
func (al *AuditLogger) LogPayoutRecorded(sessionID string, betAmount, payout, balance decimal.Decimal) {
	al.WithFields(logrus.Fields{
		"session_id": sessionID,
		"bet_amount": betAmount,
		"payout":     payout,
		"balance":    balance,
	}).Info("Payout recorded")
}

// LogRecommendation logs an emitted bet recommendation.
func (al *AuditLogger) LogRecommendation(raceID string, betType string, horses []int, expectedReturn float64) {
	al.WithFields(logrus.Fields{
		"race_id":         raceID,
		"bet_type":        betType,
		"horses":          horses,
		"expected_return": expectedReturn,
	}).Info("Recommendation emitted")
}

// LogBreakerEvent logs session breaker state changes.
func (al *AuditLogger) LogBreakerEvent(sessionID, oldState, newState, reason string) {
	al.WithFields(logrus.Fields{
		"session_id": sessionID,
		"old_state":  oldState,
		"new_state":  newState,
		"reason":     reason,
	}).Warn("Session breaker state changed")
}
