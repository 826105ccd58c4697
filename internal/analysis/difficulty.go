// Package analysis evaluates race-wide properties of a prediction set:
// dispersion difficulty, race level and composite strategy signals.
package analysis

import (
	"gonum.org/v1/gonum/stat"
)

// DifficultyScore computes how predictable a race looks from the spread of
// its win probabilities. Probabilities are fractions in [0,1]; callers
// converting from percentage scale must divide by 100 first. The score is
// min(5 * stddev, 1): a flat distribution scores near zero, a race with one
// standout scores near one. An empty list returns 0 by convention.
func DifficultyScore(probabilities []float64) float64 {
	if len(probabilities) == 0 {
		return 0
	}

	sd := stat.PopStdDev(probabilities, nil)
	score := 5 * sd
	if score > 1 {
		return 1
	}
	return score
}
