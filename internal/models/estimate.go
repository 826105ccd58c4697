package models

// Estimate joins a horse's predicted win probability with its market
// position. Probability is a fraction of one, not a percentage; this is
// the unit every race-wide evaluation works in.
type Estimate struct {
	HorseNumber int     `json:"horse_number" validate:"required,gt=0"`
	HorseName   string  `json:"horse_name"`
	Jockey      string  `json:"jockey"`
	Probability float64 `json:"probability" validate:"gte=0,lte=1"`
	Odds        float64 `json:"odds" validate:"gte=1"`
	Popularity  int     `json:"popularity"`
}

// ExpectedValue returns probability times decimal odds.
func (e *Estimate) ExpectedValue() float64 {
	return e.Probability * e.Odds
}
