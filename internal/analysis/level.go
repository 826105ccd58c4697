package analysis

import (
	"github.com/yourusername/keiba-engine/internal/models"
)

// DefaultEVFloor is the expected-value floor below which a race is skipped.
const DefaultEVFloor = 1.2

// EvaluateRaceLevel classifies a race as skip, normal or decisive. The
// checks are ordered and disjoint: the EV floor short-circuits first, then
// any one of the decisive conditions promotes the race, otherwise it is
// normal. maxEV and maxProbability belong to the same best-EV entrant;
// difficulty is the 0-1 dispersion score; evFloor <= 0 uses the default.
func EvaluateRaceLevel(maxEV, maxProbability, difficulty, evFloor float64) models.RaceLevel {
	if evFloor <= 0 {
		evFloor = DefaultEVFloor
	}

	if maxEV < evFloor {
		return models.RaceLevelSkip
	}

	decisive := difficulty >= 0.7 ||
		(maxEV >= 4.0 && maxProbability >= 0.25) ||
		maxEV >= 6.0
	if decisive {
		return models.RaceLevelDecisive
	}

	return models.RaceLevelNormal
}
