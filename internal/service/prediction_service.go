// Package service wires the pure prediction core into a cached,
// rate-limited call surface for consuming layers.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/keiba-engine/internal/engine"
	"github.com/yourusername/keiba-engine/internal/metrics"
	"github.com/yourusername/keiba-engine/internal/models"
	"github.com/yourusername/keiba-engine/internal/recommend"
)

// PredictionService computes and caches per-race predictions. The optional
// limiter is the injectable replacement for any process-wide timing state:
// the service owns it, callers share it only by sharing the service.
type PredictionService struct {
	predictor   *engine.Predictor
	recommender *recommend.Recommender
	cache       *cache.Cache
	limiter     *rate.Limiter
	validate    *validator.Validate
	logger      *logrus.Logger
}

// ServiceOption configures a PredictionService.
type ServiceOption func(*PredictionService)

// WithLimiter attaches a rate limiter applied before each computation.
func WithLimiter(limiter *rate.Limiter) ServiceOption {
	return func(s *PredictionService) { s.limiter = limiter }
}

// NewPredictionService creates a prediction service with the given cache
// TTL and sweep interval.
func NewPredictionService(ttl, sweep time.Duration, logger *logrus.Logger, opts ...ServiceOption) *PredictionService {
	s := &PredictionService{
		predictor:   engine.NewPredictor(logger),
		recommender: recommend.NewRecommender(logger),
		cache:       cache.New(ttl, sweep),
		validate:    validator.New(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Predict returns the ranked predictions for a race, from cache when a
// result for the race ID is still fresh. The race card is validated at
// this boundary; a malformed entrant never reaches the scoring core.
func (s *PredictionService) Predict(ctx context.Context, raceID string, horses []*models.Horse) ([]*models.Prediction, error) {
	if err := s.validateHorses(horses); err != nil {
		return nil, err
	}

	if cached, found := s.cache.Get(raceID); found {
		if predictions, ok := cached.([]*models.Prediction); ok {
			metrics.PredictionCacheHitsTotal.Inc()
			s.logger.WithField("race_id", raceID).Debug("Prediction served from cache")
			return predictions, nil
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	start := time.Now()
	predictions, err := s.predictor.Predict(horses)
	if err != nil {
		return nil, fmt.Errorf("predicting race %s: %w", raceID, err)
	}
	metrics.PredictionsTotal.Inc()
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())

	s.cache.Set(raceID, predictions, cache.DefaultExpiration)
	return predictions, nil
}

// Recommend predicts the race and derives bet-type suggestions.
func (s *PredictionService) Recommend(ctx context.Context, raceID string, horses []*models.Horse) ([]*models.BetRecommendation, error) {
	predictions, err := s.Predict(ctx, raceID, horses)
	if err != nil {
		return nil, err
	}

	recommendations, err := s.recommender.RecommendBetTypes(predictions)
	if err != nil {
		return nil, fmt.Errorf("recommending for race %s: %w", raceID, err)
	}
	for _, rec := range recommendations {
		metrics.RecommendationsTotal.WithLabelValues(string(rec.BetType)).Inc()
	}
	return recommendations, nil
}

// Estimates joins predictions back to their market data, converting win
// probabilities from percentage to fractional scale for race-wide
// evaluation.
func (s *PredictionService) Estimates(predictions []*models.Prediction, horses []*models.Horse) []*models.Estimate {
	byNumber := make(map[int]*models.Horse, len(horses))
	for _, h := range horses {
		byNumber[h.Number] = h
	}

	estimates := make([]*models.Estimate, 0, len(predictions))
	for _, p := range predictions {
		horse, ok := byNumber[p.HorseNumber]
		if !ok {
			continue
		}
		estimates = append(estimates, &models.Estimate{
			HorseNumber: p.HorseNumber,
			HorseName:   p.HorseName,
			Jockey:      horse.Jockey,
			Probability: p.WinProbability / 100.0,
			Odds:        horse.Odds,
			Popularity:  horse.Popularity,
		})
	}
	return estimates
}

// validateHorses checks every entrant against the declared constraints:
// positive entrant numbers, odds of at least 1.0, no zero finishing
// positions in the form figures.
func (s *PredictionService) validateHorses(horses []*models.Horse) error {
	for _, horse := range horses {
		if err := s.validate.Struct(horse); err != nil {
			s.logger.WithFields(logrus.Fields{
				"horse_number": horse.Number,
				"error":        err,
			}).Warn("Race card entrant rejected")
			return models.NewValidationError("invalid_horse",
				fmt.Sprintf("horse %d: %v", horse.Number, err))
		}
	}
	return nil
}

// InvalidateRace drops any cached prediction for the race.
func (s *PredictionService) InvalidateRace(raceID string) {
	s.cache.Delete(raceID)
}
