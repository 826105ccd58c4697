// Package engine implements the prediction core: per-horse scoring and
// race-wide ranking with win probabilities.
package engine

import (
	"github.com/yourusername/keiba-engine/internal/models"
)

// Score converts one horse's recent form, market position and declared
// weight into a heuristic fitness score. The component maxima are
// 30 + 20 + 20 + 15 for form, odds, popularity and weight; the top-three
// bonus is intentionally uncapped, so a horse with a long streak of
// placings can exceed the nominal 100-point ceiling.
func Score(horse *models.Horse) (float64, error) {
	avg, ok := horse.AverageFinish()
	if !ok {
		return 0, models.ErrNoRecentResults
	}

	score := recentFormScore(avg)
	score += oddsScore(horse.Odds)
	score += popularityScore(horse.Popularity)
	score += weightScore(horse.Weight)
	score += topThreeBonus(horse.TopThreeCount())
	return score, nil
}

// recentFormScore rewards low average finishing positions, 30 points at
// an average of 1.0 and 5 fewer per position after that, floored at 0.
func recentFormScore(avgFinish float64) float64 {
	s := 30 - (avgFinish-1)*5
	if s < 0 {
		return 0
	}
	return s
}

func oddsScore(odds float64) float64 {
	switch {
	case odds < 3:
		return 20
	case odds < 5:
		return 15
	case odds < 10:
		return 10
	default:
		return 5
	}
}

func popularityScore(popularity int) float64 {
	switch {
	case popularity <= 3:
		return 20
	case popularity <= 6:
		return 15
	case popularity <= 9:
		return 10
	default:
		return 5
	}
}

// weightScore favours the 450-500kg band where declared weights are
// historically most stable.
func weightScore(weight float64) float64 {
	switch {
	case weight >= 450 && weight <= 500:
		return 15
	case weight >= 430 && weight <= 520:
		return 10
	default:
		return 5
	}
}

func topThreeBonus(topThree int) float64 {
	return float64(topThree) * 3
}
