package analysis

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/keiba-engine/internal/models"
)

// ConfidenceLevel buckets the difficulty score for display.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// MidTierChance flags a mid-popularity horse whose expected value stands
// out against its long odds.
type MidTierChance struct {
	HorseNumber   int     `json:"horse_number"`
	HorseName     string  `json:"horse_name"`
	Odds          float64 `json:"odds"`
	ExpectedValue float64 `json:"expected_value"`
	Popularity    int     `json:"popularity"`
}

// ProEvaluation is the composite strategy read on a race.
type ProEvaluation struct {
	DifficultyScore   float64          `json:"difficulty_score"`
	RecommendedAction models.RaceLevel `json:"recommended_action"`
	MidTierChance     *MidTierChance   `json:"mid_tier_chance,omitempty"`
	ConfidenceLevel   ConfidenceLevel  `json:"confidence_level"`
}

// RaceAnalyzer derives race-wide strategy signals from win estimates.
type RaceAnalyzer struct {
	logger *logrus.Logger
}

// NewRaceAnalyzer creates a new race analyzer
func NewRaceAnalyzer(logger *logrus.Logger) *RaceAnalyzer {
	return &RaceAnalyzer{logger: logger}
}

// Evaluate computes the composite evaluation for one race. The recommended
// action is decisive when the race is both easy to read and carries real
// value, skip when either the best expected value or the dispersion is too
// low to bet into, and normal otherwise.
func (a *RaceAnalyzer) Evaluate(estimates []*models.Estimate) (*ProEvaluation, error) {
	if len(estimates) == 0 {
		return nil, models.ErrNoPredictions
	}

	probs := make([]float64, len(estimates))
	maxEV := 0.0
	for i, e := range estimates {
		probs[i] = e.Probability
		if ev := e.ExpectedValue(); ev > maxEV {
			maxEV = ev
		}
	}

	difficulty := DifficultyScore(probs)

	action := models.RaceLevelNormal
	switch {
	case difficulty >= 0.7 && maxEV >= 3.0:
		action = models.RaceLevelDecisive
	case maxEV < 1.2 || difficulty < 0.3:
		action = models.RaceLevelSkip
	}

	eval := &ProEvaluation{
		DifficultyScore:   difficulty,
		RecommendedAction: action,
		MidTierChance:     a.detectMidTierChance(estimates),
		ConfidenceLevel:   confidenceLevel(difficulty),
	}

	a.logger.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"max_ev":     maxEV,
		"action":     action,
	}).Debug("Race evaluated")

	return eval, nil
}

// detectMidTierChance scans the 4th to 9th shortest-priced horses for a
// value overlay: expected value of at least 2.5 at odds of 8 or longer.
func (a *RaceAnalyzer) detectMidTierChance(estimates []*models.Estimate) *MidTierChance {
	byOdds := make([]*models.Estimate, len(estimates))
	copy(byOdds, estimates)
	sort.SliceStable(byOdds, func(i, j int) bool {
		return byOdds[i].Odds < byOdds[j].Odds
	})

	for i, e := range byOdds {
		band := i + 1
		if band < 4 {
			continue
		}
		if band > 9 {
			break
		}
		if e.ExpectedValue() >= 2.5 && e.Odds >= 8.0 {
			return &MidTierChance{
				HorseNumber:   e.HorseNumber,
				HorseName:     e.HorseName,
				Odds:          e.Odds,
				ExpectedValue: e.ExpectedValue(),
				Popularity:    band,
			}
		}
	}
	return nil
}

func confidenceLevel(difficulty float64) ConfidenceLevel {
	switch {
	case difficulty >= 0.6:
		return ConfidenceHigh
	case difficulty >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
