// Package staking sizes stakes and allocates per-race budgets. Two Kelly
// policies live here on purpose: the direct fractional-Kelly stake with a
// 5% ruin cap, and the risk-level driven stake used by the recommendation
// path with its own 10% cap and 100-yen rounding. They serve different
// call sites and must not be unified.
package staking

import (
	"math"

	"github.com/yourusername/keiba-engine/internal/models"
)

const (
	// DefaultKellyFraction is the quarter-Kelly multiplier applied when
	// the caller passes no fraction.
	DefaultKellyFraction = 0.25

	// kellyStakeCap bounds the direct-Kelly stake at 5% of bankroll
	// regardless of the fraction multiplier.
	kellyStakeCap = 0.05

	// riskStakeCap bounds the risk-level stake at 10% of bankroll.
	riskStakeCap = 0.10

	// stakeUnit is the smallest purchasable ticket denomination in yen.
	stakeUnit = 100
)

// CalculateKellyStake computes a fractional-Kelly stake. Probability is a
// fraction of one, odds are decimal, fraction defaults to quarter Kelly
// when non-positive. A losing or break-even edge returns 0; it is not an
// error, the bet is simply not recommended. The resulting bankroll
// fraction is capped at 5% and the stake floored to a whole unit.
func CalculateKellyStake(probability, odds, bankroll, fraction float64) int {
	if probability <= 0 || odds <= 1.0 || bankroll <= 0 {
		return 0
	}

	// Kelly criterion: f* = (p*odds - 1) / (odds - 1)
	kelly := (probability*odds - 1) / (odds - 1)
	if kelly <= 0 {
		return 0
	}

	if fraction <= 0 {
		fraction = DefaultKellyFraction
	}
	adjusted := math.Min(kelly*fraction, kellyStakeCap)

	return int(math.Floor(bankroll * adjusted))
}

// RecommendStake computes the recommendation-path stake from a win
// probability expressed as a percentage. The risk level picks the Kelly
// multiplier, the bankroll fraction is clamped to [0, 10%], and the stake
// is floored to 100-yen units.
func RecommendStake(bankroll, winProbabilityPercent, odds float64, risk models.RiskLevel) int {
	if bankroll <= 0 || odds <= 1.0 {
		return 0
	}

	p := winProbabilityPercent / 100.0
	q := 1.0 - p
	b := odds - 1.0

	kelly := (b*p - q) / b
	kelly *= risk.Multiplier()

	kelly = math.Max(0, math.Min(kelly, riskStakeCap))

	return int(math.Floor(bankroll*kelly/stakeUnit)) * stakeUnit
}

// ExpectedProfit returns the expected net profit of a stake at the given
// probability and odds.
func ExpectedProfit(probability, odds, stake float64) float64 {
	if probability <= 0 || odds <= 1.0 || stake <= 0 {
		return 0
	}
	winProfit := (odds - 1.0) * stake
	return probability*winProfit - (1.0-probability)*stake
}
