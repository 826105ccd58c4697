package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
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

func TestNewLoggerLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("warn").GetLevel())

	// An unknown level falls back to info.
	assert.Equal(t, logrus.InfoLevel, NewLogger("verbose").GetLevel())
}

func TestWithComponent(t *testing.T) {
	log, buf := setupTestLogger()

	WithComponent(log, "engine").Info("ready")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "engine", logEntry["component"])
}

func TestAuditLoggerBetPlaced(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewAuditLogger(log)

	auditLogger.LogBetPlaced(
		"session_001",
		decimal.NewFromInt(1000),
		decimal.NewFromInt(99000),
		true,
		time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC),
	)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "session_001", logEntry["session_id"])
	assert.Equal(t, "audit", logEntry["component"])
	assert.Equal(t, true, logEntry["accepted"])
}

func TestAuditLoggerPayoutRecorded(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewAuditLogger(log)

	auditLogger.LogPayoutRecorded(
		"session_001",
		decimal.NewFromInt(1000),
		decimal.NewFromInt(2500),
		decimal.NewFromInt(101500),
	)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "session_001", logEntry["session_id"])
	assert.Equal(t, "2500", logEntry["payout"])
}

func TestAuditLoggerRecommendation(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewAuditLogger(log)

	auditLogger.LogRecommendation("202609010511", "TRIO", []int{1, 3, 5}, 32.5)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "202609010511", logEntry["race_id"])
	assert.Equal(t, "TRIO", logEntry["bet_type"])
}

func TestAuditLoggerBreakerEvent(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewAuditLogger(log)

	auditLogger.LogBreakerEvent("session_001", "CLOSED", "OPEN", "drawdown limit reached")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "OPEN", logEntry["new_state"])
	assert.Equal(t, "drawdown limit reached", logEntry["reason"])
}

func BenchmarkAuditLoggerBetPlaced(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	auditLogger := NewAuditLogger(log)

	amount := decimal.NewFromInt(1000)
	balance := decimal.NewFromInt(99000)
	for i := 0; i < b.N; i++ {
		auditLogger.LogBetPlaced("session_001", amount, balance, true, time.Now())
	}
}
