package models

// Horse represents one entrant in a race as declared on the card.
// RecentResults holds the finishing positions of the most recent starts,
// ordered most recent first. An entrant with no past starts carries an
// empty slice; a zero is never a valid finishing position.
type Horse struct {
	Number        int     `json:"horse_number" validate:"required,gt=0,lte=18"`
	Name          string  `json:"horse_name" validate:"required"`
	Jockey        string  `json:"jockey"`
	Weight        float64 `json:"weight" validate:"required,gt=0"`
	RecentResults []int   `json:"recent_results" validate:"omitempty,dive,gt=0"`
	Odds          float64 `json:"odds" validate:"required,gte=1"`
	Popularity    int     `json:"popularity" validate:"required,gt=0"`
}

// HasForm reports whether the horse has any recorded past starts.
func (h *Horse) HasForm() bool {
	return len(h.RecentResults) > 0
}

// AverageFinish returns the arithmetic mean of the recent finishing
// positions. The boolean is false when no form is available.
func (h *Horse) AverageFinish() (float64, bool) {
	if len(h.RecentResults) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range h.RecentResults {
		sum += r
	}
	return float64(sum) / float64(len(h.RecentResults)), true
}

// TopThreeCount returns how many of the recent starts finished in the
// top three.
func (h *Horse) TopThreeCount() int {
	count := 0
	for _, r := range h.RecentResults {
		if r <= 3 {
			count++
		}
	}
	return count
}

// ImpliedProbability returns the win probability implied by the odds.
func (h *Horse) ImpliedProbability() float64 {
	if h.Odds <= 0 {
		return 0
	}
	return 1.0 / h.Odds
}
