package models

// BetType represents one of the canonical pari-mutuel bet types.
type BetType string

const (
	BetTypeWin      BetType = "WIN"      // tansho: first place
	BetTypePlace    BetType = "PLACE"    // fukusho: top-three finish
	BetTypeQuinella BetType = "QUINELLA" // umaren: unordered top two
	BetTypeWide     BetType = "WIDE"     // wide: unordered top two, looser payout
	BetTypeExacta   BetType = "EXACTA"   // umatan: ordered top two
	BetTypeTrio     BetType = "TRIO"     // sanrenpuku: unordered top three
	BetTypeTrifecta BetType = "TRIFECTA" // sanrentan: ordered top three
)

// Size returns the number of horses a single ticket of this type names.
func (t BetType) Size() int {
	switch t {
	case BetTypeWin, BetTypePlace:
		return 1
	case BetTypeQuinella, BetTypeWide, BetTypeExacta:
		return 2
	case BetTypeTrio, BetTypeTrifecta:
		return 3
	default:
		return 0
	}
}

// Ordered reports whether finishing order matters for this bet type.
func (t BetType) Ordered() bool {
	return t == BetTypeExacta || t == BetTypeTrifecta
}

// RaceLevel classifies the betting attractiveness of a race.
type RaceLevel string

const (
	RaceLevelSkip     RaceLevel = "skip"
	RaceLevelNormal   RaceLevel = "normal"
	RaceLevelDecisive RaceLevel = "decisive"
)

// RiskLevel selects the fractional-Kelly multiplier on the recommendation
// staking path.
type RiskLevel string

const (
	RiskConservative RiskLevel = "conservative"
	RiskModerate     RiskLevel = "moderate"
	RiskAggressive   RiskLevel = "aggressive"
)

// Multiplier returns the Kelly fraction for the risk level.
func (r RiskLevel) Multiplier() float64 {
	switch r {
	case RiskConservative:
		return 0.25
	case RiskAggressive:
		return 0.75
	default:
		return 0.5
	}
}

// RiskMode selects the per-race budget exposure rate.
type RiskMode string

const (
	RiskModeConservative RiskMode = "conservative"
	RiskModeBalanced     RiskMode = "balanced"
	RiskModeAggressive   RiskMode = "aggressive"
)

// Rate returns the fraction of bankroll exposed per race.
func (m RiskMode) Rate() float64 {
	switch m {
	case RiskModeConservative:
		return 0.02
	case RiskModeAggressive:
		return 0.05
	default:
		return 0.035
	}
}

// BetRecommendation is a concrete ticket suggestion. Horses is the entrant
// numbers making up the combination; order is significant only for the
// ordered bet types.
type BetRecommendation struct {
	BetType        BetType `json:"bet_type" validate:"required"`
	Horses         []int   `json:"horses" validate:"required,min=1,max=3"`
	ExpectedReturn float64 `json:"expected_return"`
}
