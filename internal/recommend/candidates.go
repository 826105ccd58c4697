package recommend

import (
	"sort"

	"github.com/yourusername/keiba-engine/internal/models"
	"github.com/yourusername/keiba-engine/internal/ticket"
)

// Candidate pool sizes and list caps per bet type.
const (
	winPoolSize     = 3
	defaultPoolSize = 5
	exactaCap       = 20
	trifectaCap     = 30

	// Ordering discounts: hitting an exact order is harder than hitting
	// the set, so ordered combined probabilities are scaled down.
	exactaOrderFactor   = 0.5
	trifectaOrderFactor = 0.3
)

// Candidate is one concrete ticket with its estimated value.
type Candidate struct {
	Combination   []int   `json:"combination"`
	ExpectedValue float64 `json:"expected_value"`
	Probability   float64 `json:"probability"`
	Odds          float64 `json:"odds,omitempty"`
}

// GenerateCandidates enumerates ranked candidate tickets of one bet type
// over the strongest horses by expected value. Single-horse types take the
// top three; multi-horse types combine the top five. The combined expected
// value of a multi-leg ticket is the mean of its legs and the combined
// probability the product, discounted for the ordered types. Candidates
// come back sorted by expected value, capped for the ordered types.
func GenerateCandidates(betType models.BetType, estimates []*models.Estimate) []*Candidate {
	byEV := make([]*models.Estimate, len(estimates))
	copy(byEV, estimates)
	sort.SliceStable(byEV, func(i, j int) bool {
		return byEV[i].ExpectedValue() > byEV[j].ExpectedValue()
	})

	poolSize := defaultPoolSize
	if betType.Size() == 1 {
		poolSize = winPoolSize
	}
	if poolSize > len(byEV) {
		poolSize = len(byEV)
	}
	pool := byEV[:poolSize]

	if betType.Size() == 1 {
		return singleCandidates(pool)
	}
	return comboCandidates(betType, pool)
}

func singleCandidates(pool []*models.Estimate) []*Candidate {
	candidates := make([]*Candidate, 0, len(pool))
	for _, e := range pool {
		candidates = append(candidates, &Candidate{
			Combination:   []int{e.HorseNumber},
			ExpectedValue: e.ExpectedValue(),
			Probability:   e.Probability,
			Odds:          e.Odds,
		})
	}
	return candidates
}

func comboCandidates(betType models.BetType, pool []*models.Estimate) []*Candidate {
	indexes := make([]int, len(pool))
	for i := range pool {
		indexes[i] = i
	}

	var candidates []*Candidate
	for _, combo := range ticket.Generate(indexes, betType.Size(), betType.Ordered()) {
		numbers := make([]int, len(combo))
		evSum := 0.0
		probability := 1.0
		for i, idx := range combo {
			numbers[i] = pool[idx].HorseNumber
			evSum += pool[idx].ExpectedValue()
			probability *= pool[idx].Probability
		}

		switch betType {
		case models.BetTypeExacta:
			probability *= exactaOrderFactor
		case models.BetTypeTrifecta:
			probability *= trifectaOrderFactor
		}

		candidates = append(candidates, &Candidate{
			Combination:   numbers,
			ExpectedValue: evSum / float64(len(combo)),
			Probability:   probability,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ExpectedValue > candidates[j].ExpectedValue
	})

	switch betType {
	case models.BetTypeExacta:
		if len(candidates) > exactaCap {
			candidates = candidates[:exactaCap]
		}
	case models.BetTypeTrifecta:
		if len(candidates) > trifectaCap {
			candidates = candidates[:trifectaCap]
		}
	}

	return candidates
}
