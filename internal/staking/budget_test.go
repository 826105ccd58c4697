package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/keiba-engine/internal/models"
)

func TestAllocationRate(t *testing.T) {
	assert.Equal(t, 0.0, AllocationRate(models.RaceLevelSkip))
	assert.Equal(t, 0.4, AllocationRate(models.RaceLevelNormal))
	assert.Equal(t, 0.8, AllocationRate(models.RaceLevelDecisive))
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		level    models.RaceLevel
		limit    int
		expected int
	}{
		{"Skip always base unit", models.RaceLevelSkip, 10000, 100},
		{"Decisive with big limit", models.RaceLevelDecisive, 5000, 1000},
		{"Decisive with mid limit", models.RaceLevelDecisive, 3000, 500},
		{"Decisive with small limit", models.RaceLevelDecisive, 2999, 200},
		{"Normal with big limit", models.RaceLevelNormal, 3000, 200},
		{"Normal with small limit", models.RaceLevelNormal, 2999, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnitPrice(tt.level, tt.limit))
		})
	}
}

func TestMaxTicketCount(t *testing.T) {
	count, err := MaxTicketCount(3000, 500)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	count, err = MaxTicketCount(999, 1000)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = MaxTicketCount(1000, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidUnitPrice)

	_, err = MaxTicketCount(1000, -100)
	assert.ErrorIs(t, err, models.ErrInvalidUnitPrice)
}

func TestPlannerPerRaceLimit(t *testing.T) {
	assert.Equal(t, 2000, NewPlanner(100000, models.RiskModeConservative).PerRaceLimit)
	assert.Equal(t, 3500, NewPlanner(100000, models.RiskModeBalanced).PerRaceLimit)
	assert.Equal(t, 5000, NewPlanner(100000, models.RiskModeAggressive).PerRaceLimit)

	// Unknown modes take the balanced rate.
	assert.Equal(t, 3500, NewPlanner(100000, models.RiskMode("other")).PerRaceLimit)
}

func TestPlannerBudget(t *testing.T) {
	p := NewPlanner(100000, models.RiskModeBalanced) // limit 3500

	assert.Equal(t, 0, p.Budget(models.RaceLevelSkip))
	assert.Equal(t, 1400, p.Budget(models.RaceLevelNormal))
	assert.Equal(t, 2800, p.Budget(models.RaceLevelDecisive))
}

func TestPlannerTicketCount(t *testing.T) {
	p := NewPlanner(100000, models.RiskModeAggressive) // limit 5000

	// Decisive budget 4000 at unit 1000 buys 4 tickets, but the win base
	// count of 3 caps it.
	count, err := p.TicketCount(models.RaceLevelDecisive, 1000, models.BetTypeWin)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Trifecta base 30 but budget only buys 4.
	count, err = p.TicketCount(models.RaceLevelDecisive, 1000, models.BetTypeTrifecta)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	// Skip races have no budget and buy nothing.
	count, err = p.TicketCount(models.RaceLevelSkip, 100, models.BetTypeWin)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Any positive budget buys at least one ticket.
	small := NewPlanner(1000, models.RiskModeConservative) // limit 20, normal budget 8
	count, err = small.TicketCount(models.RaceLevelNormal, 100, models.BetTypeQuinella)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = p.TicketCount(models.RaceLevelNormal, 0, models.BetTypeWin)
	assert.ErrorIs(t, err, models.ErrInvalidUnitPrice)
}
