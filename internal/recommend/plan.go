package recommend

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/keiba-engine/internal/analysis"
	"github.com/yourusername/keiba-engine/internal/metrics"
	"github.com/yourusername/keiba-engine/internal/models"
	"github.com/yourusername/keiba-engine/internal/staking"
)

// planBetTypes is the fixed evaluation order for the purchase plan.
var planBetTypes = []models.BetType{
	models.BetTypeWin,
	models.BetTypeQuinella,
	models.BetTypeWide,
	models.BetTypeTrio,
	models.BetTypeExacta,
	models.BetTypeTrifecta,
}

// BestBetInfo summarizes the strongest bet type of a race.
type BestBetInfo struct {
	AverageEV      float64 `json:"average_ev"`
	MaxEV          float64 `json:"max_ev"`
	CandidateCount int     `json:"candidate_count"`
	MaxProbability float64 `json:"max_probability"`
}

// Plan is the full purchase recommendation for one race.
type Plan struct {
	Evaluation      *analysis.ProEvaluation           `json:"evaluation"`
	Candidates      map[models.BetType][]*Candidate   `json:"candidates"`
	BestBetType     models.BetType                    `json:"best_bet_type"`
	BestBet         BestBetInfo                       `json:"best_bet"`
	RaceLevel       models.RaceLevel                  `json:"race_level"`
	UnitPrice       int                               `json:"unit_price"`
	TicketCount     int                               `json:"ticket_count"`
	Budget          int                               `json:"budget"`
	TotalCost       int                               `json:"total_cost"`
	BudgetUsageRate float64                           `json:"budget_usage_rate"`
	KellyStake      int                               `json:"kelly_stake"`
	RiskStake       int                               `json:"risk_stake"`
	Explanation     string                            `json:"explanation"`
}

// AdvisorOption configures an Advisor.
type AdvisorOption func(*Advisor)

// WithEVFloor overrides the skip threshold on maximum expected value.
func WithEVFloor(floor float64) AdvisorOption {
	return func(a *Advisor) { a.evFloor = floor }
}

// WithoutKelly disables the Kelly stake on the plan.
func WithoutKelly() AdvisorOption {
	return func(a *Advisor) { a.useKelly = false }
}

// WithKellyFraction overrides the quarter-Kelly multiplier used for the
// plan's Kelly stake.
func WithKellyFraction(fraction float64) AdvisorOption {
	return func(a *Advisor) { a.kellyFraction = fraction }
}

// WithRiskLevel selects the risk level for the plan's risk-policy stake.
func WithRiskLevel(level models.RiskLevel) AdvisorOption {
	return func(a *Advisor) { a.riskLevel = level }
}

// WithFixedUnitPrice disables dynamic unit pricing; every ticket costs the
// base 100 unit.
func WithFixedUnitPrice() AdvisorOption {
	return func(a *Advisor) { a.dynamicUnit = false }
}

// Advisor assembles race evaluation, candidate generation and budget
// allocation into a single purchase plan.
type Advisor struct {
	planner       *staking.Planner
	analyzer      *analysis.RaceAnalyzer
	logger        *logrus.Logger
	evFloor       float64
	useKelly      bool
	dynamicUnit   bool
	kellyFraction float64
	riskLevel     models.RiskLevel
}

// NewAdvisor creates an advisor for one bankroll and risk mode.
func NewAdvisor(bankroll float64, mode models.RiskMode, logger *logrus.Logger, opts ...AdvisorOption) *Advisor {
	a := &Advisor{
		planner:       staking.NewPlanner(bankroll, mode),
		analyzer:      analysis.NewRaceAnalyzer(logger),
		logger:        logger,
		evFloor:       analysis.DefaultEVFloor,
		useKelly:      true,
		dynamicUnit:   true,
		kellyFraction: staking.DefaultKellyFraction,
		riskLevel:     models.RiskModerate,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze builds the purchase plan for one race from its win estimates.
func (a *Advisor) Analyze(estimates []*models.Estimate) (*Plan, error) {
	if len(estimates) == 0 {
		return nil, models.ErrNoPredictions
	}

	evaluation, err := a.analyzer.Evaluate(estimates)
	if err != nil {
		return nil, fmt.Errorf("evaluating race: %w", err)
	}

	candidates := make(map[models.BetType][]*Candidate, len(planBetTypes))
	for _, betType := range planBetTypes {
		candidates[betType] = GenerateCandidates(betType, estimates)
	}

	bestType, bestInfo := selectBestBetType(candidates)
	level := a.raceLevel(evaluation, bestInfo)

	unitPrice := 100
	if a.dynamicUnit {
		unitPrice = staking.UnitPrice(level, a.planner.PerRaceLimit)
	}

	ticketCount, err := a.planner.TicketCount(level, unitPrice, bestType)
	if err != nil {
		return nil, fmt.Errorf("sizing tickets: %w", err)
	}

	budget := a.planner.Budget(level)
	totalCost := ticketCount * unitPrice

	usage := 0.0
	if budget > 0 {
		usage = math.Round(float64(totalCost)/float64(budget)*1000) / 10
	}

	plan := &Plan{
		Evaluation:      evaluation,
		Candidates:      candidates,
		BestBetType:     bestType,
		BestBet:         bestInfo,
		RaceLevel:       level,
		UnitPrice:       unitPrice,
		TicketCount:     ticketCount,
		Budget:          budget,
		TotalCost:       totalCost,
		BudgetUsageRate: usage,
	}

	top := topByExpectedValue(estimates)
	if a.useKelly {
		plan.KellyStake = staking.CalculateKellyStake(
			top.Probability, top.Odds, a.planner.Bankroll, a.kellyFraction)
	}
	plan.RiskStake = staking.RecommendStake(
		a.planner.Bankroll, top.Probability*100, top.Odds, a.riskLevel)

	plan.Explanation = a.explain(plan)

	metrics.RacePlansTotal.WithLabelValues(string(level)).Inc()
	if plan.KellyStake > 0 {
		metrics.RecommendedStake.Observe(float64(plan.KellyStake))
	}

	a.logger.WithFields(logrus.Fields{
		"race_level":    level,
		"best_bet_type": bestType,
		"unit_price":    unitPrice,
		"ticket_count":  ticketCount,
		"kelly_stake":   plan.KellyStake,
		"risk_stake":    plan.RiskStake,
	}).Info("Race plan generated")

	return plan, nil
}

// raceLevel folds the analyzer's skip verdict into the level evaluation.
func (a *Advisor) raceLevel(evaluation *analysis.ProEvaluation, best BestBetInfo) models.RaceLevel {
	if evaluation.RecommendedAction == models.RaceLevelSkip {
		return models.RaceLevelSkip
	}
	return analysis.EvaluateRaceLevel(best.MaxEV, best.MaxProbability, evaluation.DifficultyScore, a.evFloor)
}

func selectBestBetType(candidates map[models.BetType][]*Candidate) (models.BetType, BestBetInfo) {
	bestType := models.BetTypeWin
	var best BestBetInfo

	for _, betType := range planBetTypes {
		list := candidates[betType]
		if len(list) == 0 {
			continue
		}

		evSum := 0.0
		maxEV := 0.0
		maxProb := 0.0
		for _, c := range list {
			evSum += c.ExpectedValue
			if c.ExpectedValue > maxEV {
				maxEV = c.ExpectedValue
			}
			if c.Probability > maxProb {
				maxProb = c.Probability
			}
		}

		if maxEV > best.MaxEV {
			bestType = betType
			best = BestBetInfo{
				AverageEV:      evSum / float64(len(list)),
				MaxEV:          maxEV,
				CandidateCount: len(list),
				MaxProbability: maxProb,
			}
		}
	}

	return bestType, best
}

func topByExpectedValue(estimates []*models.Estimate) *models.Estimate {
	top := estimates[0]
	for _, e := range estimates[1:] {
		if e.ExpectedValue() > top.ExpectedValue() {
			top = e
		}
	}
	return top
}

func (a *Advisor) explain(plan *Plan) string {
	levelText := map[models.RaceLevel]string{
		models.RaceLevelSkip:     "skip recommended",
		models.RaceLevelNormal:   "normal race",
		models.RaceLevelDecisive: "decisive race",
	}

	explanation := fmt.Sprintf("%s - %s x%d @%d",
		levelText[plan.RaceLevel], plan.BestBetType, plan.TicketCount, plan.UnitPrice)

	switch plan.RaceLevel {
	case models.RaceLevelSkip:
		explanation += ": expected value too low to bet"
	case models.RaceLevelDecisive:
		explanation += fmt.Sprintf(": difficulty score %.2f, high-trust prediction", plan.Evaluation.DifficultyScore)
		if plan.Evaluation.MidTierChance != nil {
			explanation += ", mid-tier value chance present"
		}
	default:
		explanation += ": steady allocation recommended"
	}

	return explanation
}
