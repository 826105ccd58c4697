package staking

import (
	"math"

	"github.com/yourusername/keiba-engine/internal/models"
)

// baseTicketCounts bounds how many tickets of each type one race plan buys.
var baseTicketCounts = map[models.BetType]int{
	models.BetTypeWin:      3,
	models.BetTypeQuinella: 10,
	models.BetTypeWide:     10,
	models.BetTypeTrio:     10,
	models.BetTypeExacta:   20,
	models.BetTypeTrifecta: 30,
}

// Planner maps race levels to budgets and ticket unit prices for one
// bankroll under a chosen risk mode.
type Planner struct {
	Bankroll     float64
	RiskMode     models.RiskMode
	PerRaceLimit int
}

// NewPlanner creates a budget planner. The per-race limit is the bankroll
// share the risk mode exposes to any single race.
func NewPlanner(bankroll float64, mode models.RiskMode) *Planner {
	return &Planner{
		Bankroll:     bankroll,
		RiskMode:     mode,
		PerRaceLimit: int(bankroll * mode.Rate()),
	}
}

// AllocationRate maps a race level to the share of the per-race limit
// actually committed: skip races get nothing, decisive races most of it.
func AllocationRate(level models.RaceLevel) float64 {
	switch level {
	case models.RaceLevelSkip:
		return 0
	case models.RaceLevelDecisive:
		return 0.8
	default:
		return 0.4
	}
}

// UnitPrice recommends the per-ticket price for a race level given the
// per-race limit.
func UnitPrice(level models.RaceLevel, perRaceLimit int) int {
	switch level {
	case models.RaceLevelSkip:
		return 100
	case models.RaceLevelDecisive:
		switch {
		case perRaceLimit >= 5000:
			return 1000
		case perRaceLimit >= 3000:
			return 500
		default:
			return 200
		}
	default:
		if perRaceLimit >= 3000 {
			return 200
		}
		return 100
	}
}

// MaxTicketCount returns how many tickets a budget buys at the unit price.
func MaxTicketCount(budget, unitPrice int) (int, error) {
	if unitPrice <= 0 {
		return 0, models.ErrInvalidUnitPrice
	}
	return budget / unitPrice, nil
}

// Budget returns the amount committed to a race of the given level.
func (p *Planner) Budget(level models.RaceLevel) int {
	return int(math.Floor(float64(p.PerRaceLimit) * AllocationRate(level)))
}

// TicketCount returns the recommended number of tickets for the level,
// unit price and bet type, bounded by the type's base count and never
// below one when any budget is available.
func (p *Planner) TicketCount(level models.RaceLevel, unitPrice int, betType models.BetType) (int, error) {
	if unitPrice <= 0 {
		return 0, models.ErrInvalidUnitPrice
	}

	budget := p.Budget(level)
	if budget <= 0 {
		return 0, nil
	}

	base, ok := baseTicketCounts[betType]
	if !ok {
		base = 10
	}

	count := budget / unitPrice
	if count > base {
		count = base
	}
	if count < 1 {
		count = 1
	}
	return count, nil
}
