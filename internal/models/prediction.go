package models

// ScoredHorse pairs a horse with its computed fitness score.
type ScoredHorse struct {
	Horse *Horse  `json:"horse"`
	Score float64 `json:"score"`
}

// Prediction represents the ranked outcome estimate for one horse in a race.
// PredictedRank is dense and 1-based; WinProbability is a percentage that
// sums to 100 across the race; ConfidenceScore is on a 0-100 scale and does
// not need to sum to anything.
type Prediction struct {
	HorseNumber     int      `json:"horse_number" validate:"required,gt=0"`
	HorseName       string   `json:"horse_name" validate:"required"`
	PredictedRank   int      `json:"predicted_rank" validate:"required,gt=0"`
	WinProbability  float64  `json:"win_probability" validate:"gte=0,lte=100"`
	ConfidenceScore float64  `json:"confidence_score" validate:"gte=0"`
	Reasoning       []string `json:"reasoning"`
}

// ExpectedValue returns win probability times odds for the given decimal
// odds, with probability taken as a fraction of one.
func (p *Prediction) ExpectedValue(odds float64) float64 {
	return (p.WinProbability / 100.0) * odds
}

// MeetsConfidence checks if the confidence score meets the given threshold.
func (p *Prediction) MeetsConfidence(threshold float64) bool {
	return p.ConfidenceScore > threshold
}
