package recommend

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

func prediction(number, rank int, prob, confidence float64) *models.Prediction {
	return &models.Prediction{
		HorseNumber:     number,
		PredictedRank:   rank,
		WinProbability:  prob,
		ConfidenceScore: confidence,
	}
}

func TestRecommendBetTypesEmpty(t *testing.T) {
	r := NewRecommender(testLogger())

	_, err := r.RecommendBetTypes(nil)
	assert.ErrorIs(t, err, models.ErrNoPredictions)
}

func TestRecommendBetTypesAllThreeRules(t *testing.T) {
	r := NewRecommender(testLogger())

	predictions := []*models.Prediction{
		prediction(7, 1, 40.0, 85.0),
		prediction(3, 2, 30.0, 65.0),
		prediction(5, 3, 20.0, 50.0),
	}

	recs, err := r.RecommendBetTypes(predictions)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, models.BetTypeWin, recs[0].BetType)
	assert.Equal(t, []int{7}, recs[0].Horses)
	assert.InDelta(t, 40.0, recs[0].ExpectedReturn, 0.001)

	assert.Equal(t, models.BetTypeQuinella, recs[1].BetType)
	assert.Equal(t, []int{7, 3}, recs[1].Horses)
	assert.InDelta(t, 35.0, recs[1].ExpectedReturn, 0.001)

	assert.Equal(t, models.BetTypeTrio, recs[2].BetType)
	assert.Equal(t, []int{7, 3, 5}, recs[2].Horses)
	assert.InDelta(t, 30.0, recs[2].ExpectedReturn, 0.001)
}

func TestRecommendBetTypesThresholdsAreStrict(t *testing.T) {
	r := NewRecommender(testLogger())

	// Exactly at the thresholds means no win and no quinella.
	predictions := []*models.Prediction{
		prediction(1, 1, 35.0, 70.0),
		prediction(2, 2, 25.0, 60.0),
		prediction(3, 3, 20.0, 55.0),
	}

	recs, err := r.RecommendBetTypes(predictions)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, models.BetTypeTrio, recs[0].BetType)
}

func TestRecommendBetTypesQuinellaNeedsBothLegs(t *testing.T) {
	r := NewRecommender(testLogger())

	predictions := []*models.Prediction{
		prediction(1, 1, 45.0, 90.0),
		prediction(2, 2, 20.0, 55.0),
	}

	recs, err := r.RecommendBetTypes(predictions)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, models.BetTypeWin, recs[0].BetType)
}

func TestRecommendBetTypesTwoHorseField(t *testing.T) {
	r := NewRecommender(testLogger())

	// No trio without three horses.
	predictions := []*models.Prediction{
		prediction(1, 1, 55.0, 80.0),
		prediction(2, 2, 45.0, 75.0),
	}

	recs, err := r.RecommendBetTypes(predictions)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, models.BetTypeWin, recs[0].BetType)
	assert.Equal(t, models.BetTypeQuinella, recs[1].BetType)
}

func TestRecommendBetTypesLowConfidenceField(t *testing.T) {
	r := NewRecommender(testLogger())

	predictions := []*models.Prediction{
		prediction(1, 1, 30.0, 40.0),
		prediction(2, 2, 25.0, 35.0),
	}

	recs, err := r.RecommendBetTypes(predictions)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
