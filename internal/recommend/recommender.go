// Package recommend turns ranked predictions into concrete bet
// suggestions and full per-race purchase plans.
package recommend

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/keiba-engine/internal/models"
)

// Confidence thresholds for the simple bet-type rules.
const (
	winConfidenceThreshold      = 70.0
	quinellaConfidenceThreshold = 60.0
)

// Recommender proposes bet types from a ranked prediction list.
type Recommender struct {
	logger *logrus.Logger
}

// NewRecommender creates a new recommender
func NewRecommender(logger *logrus.Logger) *Recommender {
	return &Recommender{logger: logger}
}

// RecommendBetTypes applies the three independent suggestion rules: a win
// bet on the top horse above 70 confidence, a quinella on the top two when
// both clear 60, and a trio on the top three whenever three horses exist.
// The rules are not mutually exclusive; zero to three recommendations come
// back. Predictions must already be sorted by predicted rank. Expected
// return is the mean win probability of the legs.
func (r *Recommender) RecommendBetTypes(predictions []*models.Prediction) ([]*models.BetRecommendation, error) {
	if len(predictions) == 0 {
		return nil, models.ErrNoPredictions
	}

	var recommendations []*models.BetRecommendation

	top := predictions[0]
	if top.MeetsConfidence(winConfidenceThreshold) {
		recommendations = append(recommendations, &models.BetRecommendation{
			BetType:        models.BetTypeWin,
			Horses:         []int{top.HorseNumber},
			ExpectedReturn: top.WinProbability,
		})
	}

	if len(predictions) >= 2 &&
		predictions[0].MeetsConfidence(quinellaConfidenceThreshold) &&
		predictions[1].MeetsConfidence(quinellaConfidenceThreshold) {
		recommendations = append(recommendations, &models.BetRecommendation{
			BetType:        models.BetTypeQuinella,
			Horses:         []int{predictions[0].HorseNumber, predictions[1].HorseNumber},
			ExpectedReturn: (predictions[0].WinProbability + predictions[1].WinProbability) / 2,
		})
	}

	if len(predictions) >= 3 {
		recommendations = append(recommendations, &models.BetRecommendation{
			BetType: models.BetTypeTrio,
			Horses: []int{
				predictions[0].HorseNumber,
				predictions[1].HorseNumber,
				predictions[2].HorseNumber,
			},
			ExpectedReturn: (predictions[0].WinProbability +
				predictions[1].WinProbability +
				predictions[2].WinProbability) / 3,
		})
	}

	r.logger.WithFields(logrus.Fields{
		"predictions":     len(predictions),
		"recommendations": len(recommendations),
	}).Debug("Bet types recommended")

	return recommendations, nil
}
