package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/keiba-engine/internal/models"
)

// Reasoning tags attached to predictions. Informational only.
const (
	ReasonStrongForm       = "strong recent form"
	ReasonShortOdds        = "short odds favourite"
	ReasonHighPopularity   = "high market support"
	ReasonTopThreeStreak   = "consecutive top-three finishes"
	ReasonInsufficientData = "insufficient data"
)

// Predictor ranks the horses of one race by fitness score and derives
// normalized win probabilities and confidence scores.
type Predictor struct {
	logger *logrus.Logger
}

// NewPredictor creates a new predictor
func NewPredictor(logger *logrus.Logger) *Predictor {
	return &Predictor{logger: logger}
}

// Predict scores every horse and returns one prediction per entrant,
// sorted by descending score. Ranks are dense, 1-based, and ties keep
// input order: when two horses score equal, the one seen first ranks
// higher. Win probability is the horse's share of the total score as a
// percentage rounded to two decimals; when every score is zero the
// probability falls back to a uniform 100/n. Confidence is the raw score
// read on a 0-100 scale (scale factor 1).
func (p *Predictor) Predict(horses []*models.Horse) ([]*models.Prediction, error) {
	if len(horses) == 0 {
		return nil, models.ErrNoHorses
	}

	scored := make([]models.ScoredHorse, 0, len(horses))
	total := 0.0
	for _, horse := range horses {
		score, err := Score(horse)
		if err != nil {
			return nil, fmt.Errorf("scoring horse %d: %w", horse.Number, err)
		}
		scored = append(scored, models.ScoredHorse{Horse: horse, Score: score})
		total += score
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	predictions := make([]*models.Prediction, 0, len(scored))
	for i, item := range scored {
		probability := 100.0 / float64(len(scored))
		if total > 0 {
			probability = item.Score / total * 100.0
		}

		predictions = append(predictions, &models.Prediction{
			HorseNumber:     item.Horse.Number,
			HorseName:       item.Horse.Name,
			PredictedRank:   i + 1,
			WinProbability:  round2(probability),
			ConfidenceScore: round2(item.Score),
			Reasoning:       reasoning(item.Horse),
		})
	}

	p.logger.WithFields(logrus.Fields{
		"horses":      len(horses),
		"total_score": total,
		"top_horse":   predictions[0].HorseNumber,
	}).Debug("Race prediction generated")

	return predictions, nil
}

func reasoning(horse *models.Horse) []string {
	var reasons []string
	if avg, ok := horse.AverageFinish(); ok && avg <= 3 {
		reasons = append(reasons, ReasonStrongForm)
	}
	if horse.Odds < 5 {
		reasons = append(reasons, ReasonShortOdds)
	}
	if horse.Popularity <= 3 {
		reasons = append(reasons, ReasonHighPopularity)
	}
	if horse.TopThreeCount() >= 3 {
		reasons = append(reasons, ReasonTopThreeStreak)
	}
	if len(reasons) == 0 {
		reasons = append(reasons, ReasonInsufficientData)
	}
	return reasons
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
