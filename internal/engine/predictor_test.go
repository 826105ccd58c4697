package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/keiba-engine/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func sampleField() []*models.Horse {
	return []*models.Horse{
		{Number: 1, Name: "Alpha", Weight: 480, RecentResults: []int{1, 2, 1}, Odds: 2.5, Popularity: 1},
		{Number: 2, Name: "Beta", Weight: 510, RecentResults: []int{5, 6, 4}, Odds: 8, Popularity: 7},
		{Number: 3, Name: "Gamma", Weight: 455, RecentResults: []int{2, 3, 1}, Odds: 4.1, Popularity: 2},
		{Number: 4, Name: "Delta", Weight: 540, RecentResults: []int{11, 9, 13}, Odds: 45, Popularity: 12},
	}
}

func TestPredictRanksAndProbabilities(t *testing.T) {
	p := NewPredictor(testLogger())

	predictions, err := p.Predict(sampleField())
	require.NoError(t, err)
	require.Len(t, predictions, 4)

	// Ranks are a dense permutation of 1..n in output order.
	for i, pred := range predictions {
		assert.Equal(t, i+1, pred.PredictedRank)
	}

	// The strong favourite wins rank 1.
	assert.Equal(t, 1, predictions[0].HorseNumber)

	// Probabilities sum to 100 within rounding tolerance.
	sum := 0.0
	for _, pred := range predictions {
		sum += pred.WinProbability
	}
	assert.InDelta(t, 100.0, sum, 0.05)

	// Sorted by descending probability.
	for i := 1; i < len(predictions); i++ {
		assert.GreaterOrEqual(t, predictions[i-1].WinProbability, predictions[i].WinProbability)
	}
}

func TestPredictEmptyField(t *testing.T) {
	p := NewPredictor(testLogger())
	_, err := p.Predict(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNoHorses)
}

func TestPredictPropagatesScoringError(t *testing.T) {
	p := NewPredictor(testLogger())
	horses := []*models.Horse{
		{Number: 1, Name: "Alpha", Weight: 480, RecentResults: []int{1}, Odds: 2.5, Popularity: 1},
		{Number: 2, Name: "NoForm", Weight: 470, Odds: 12, Popularity: 9},
	}
	_, err := p.Predict(horses)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNoRecentResults)
}

func TestPredictTieBreakKeepsInputOrder(t *testing.T) {
	p := NewPredictor(testLogger())

	// Identical attributes, identical scores: the first-seen horse must
	// take the better rank.
	horses := []*models.Horse{
		{Number: 7, Name: "First", Weight: 480, RecentResults: []int{2, 2}, Odds: 3.5, Popularity: 2},
		{Number: 3, Name: "Second", Weight: 480, RecentResults: []int{2, 2}, Odds: 3.5, Popularity: 2},
	}

	predictions, err := p.Predict(horses)
	require.NoError(t, err)
	assert.Equal(t, 7, predictions[0].HorseNumber)
	assert.Equal(t, 3, predictions[1].HorseNumber)
	assert.Equal(t, 1, predictions[0].PredictedRank)
	assert.Equal(t, 2, predictions[1].PredictedRank)
}

func TestPredictConfidenceTracksScore(t *testing.T) {
	p := NewPredictor(testLogger())

	predictions, err := p.Predict(sampleField())
	require.NoError(t, err)

	// Confidence is the raw score on a 0-100 scale; the favourite's
	// known score is 92.33.
	assert.InDelta(t, 92.33, predictions[0].ConfidenceScore, 0.01)
}

func TestPredictReasoningTags(t *testing.T) {
	p := NewPredictor(testLogger())

	predictions, err := p.Predict(sampleField())
	require.NoError(t, err)

	byNumber := map[int]*models.Prediction{}
	for _, pred := range predictions {
		byNumber[pred.HorseNumber] = pred
	}

	// The favourite fires form, odds and popularity tags.
	assert.Contains(t, byNumber[1].Reasoning, ReasonStrongForm)
	assert.Contains(t, byNumber[1].Reasoning, ReasonShortOdds)
	assert.Contains(t, byNumber[1].Reasoning, ReasonHighPopularity)
	assert.Contains(t, byNumber[1].Reasoning, ReasonTopThreeStreak)

	// The no-signal outsider always carries the fallback tag.
	assert.Equal(t, []string{ReasonInsufficientData}, byNumber[4].Reasoning)
}

func TestPredictProbabilityRounding(t *testing.T) {
	p := NewPredictor(testLogger())

	predictions, err := p.Predict(sampleField())
	require.NoError(t, err)

	for _, pred := range predictions {
		scaled := pred.WinProbability * 100
		assert.InDelta(t, scaled, float64(int64(scaled+0.5)), 0.0001,
			"probability %f not rounded to 2 decimals", pred.WinProbability)
	}
}
