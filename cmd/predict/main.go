// Package main provides the race prediction CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/yourusername/keiba-engine/internal/config"
	"github.com/yourusername/keiba-engine/internal/logger"
	"github.com/yourusername/keiba-engine/internal/models"
	"github.com/yourusername/keiba-engine/internal/recommend"
	"github.com/yourusername/keiba-engine/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	inputFile  string
	withPlan   bool
	appLogger  *logrus.Logger
	cfg        *config.Config
)

// RaceInput is the JSON shape the CLI consumes.
type RaceInput struct {
	RaceID string          `json:"race_id"`
	Horses []*models.Horse `json:"horses"`
}

// Output is the combined prediction result printed as JSON.
type Output struct {
	RaceID          string                     `json:"race_id"`
	Predictions     []*models.Prediction       `json:"predictions"`
	Recommendations []*models.BetRecommendation `json:"recommendations"`
	Plan            *recommend.Plan            `json:"plan,omitempty"`
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to race JSON file (defaults to stdin)")
	rootCmd.Flags().BoolVar(&withPlan, "plan", false, "Include the full purchase plan in the output")
}

var rootCmd = &cobra.Command{
	Use:     "predict",
	Short:   "Rank race entrants and recommend bets",
	Long:    `Reads a race card as JSON, ranks the entrants by fitness score and prints win probabilities, bet-type recommendations and optionally a full purchase plan.`,
	Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(ctx context.Context) error {
	input, err := readInput()
	if err != nil {
		return err
	}

	svc := newService()
	predictions, err := svc.Predict(ctx, input.RaceID, input.Horses)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	recommendations, err := svc.Recommend(ctx, input.RaceID, input.Horses)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	output := &Output{
		RaceID:          input.RaceID,
		Predictions:     predictions,
		Recommendations: recommendations,
	}

	if withPlan {
		advisorOpts := []recommend.AdvisorOption{
			recommend.WithEVFloor(cfg.Engine.EVFloor),
			recommend.WithKellyFraction(cfg.Staking.KellyFraction),
			recommend.WithRiskLevel(models.RiskLevel(cfg.Staking.RiskLevel)),
		}
		if !cfg.Staking.UseKelly {
			advisorOpts = append(advisorOpts, recommend.WithoutKelly())
		}
		if !cfg.Staking.DynamicUnitPrice {
			advisorOpts = append(advisorOpts, recommend.WithFixedUnitPrice())
		}
		advisor := recommend.NewAdvisor(
			cfg.Session.InitialBankroll,
			models.RiskMode(cfg.Staking.RiskMode),
			appLogger,
			advisorOpts...,
		)
		plan, err := advisor.Analyze(svc.Estimates(predictions, input.Horses))
		if err != nil {
			return fmt.Errorf("plan generation failed: %w", err)
		}
		output.Plan = plan
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func newService() *service.PredictionService {
	opts := []service.ServiceOption{}
	if cfg.Engine.RateLimitPerSecond > 0 {
		burst := cfg.Engine.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		opts = append(opts, service.WithLimiter(
			rate.NewLimiter(rate.Limit(cfg.Engine.RateLimitPerSecond), burst)))
	}
	return service.NewPredictionService(
		time.Duration(cfg.Engine.CacheTTLSeconds)*time.Second,
		time.Duration(cfg.Engine.CacheSweepSeconds)*time.Second,
		appLogger,
		opts...,
	)
}

func readInput() (*RaceInput, error) {
	reader := os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	input := &RaceInput{}
	if err := json.NewDecoder(reader).Decode(input); err != nil {
		return nil, fmt.Errorf("failed to parse race input: %w", err)
	}
	if input.RaceID == "" {
		return nil, fmt.Errorf("race_id is required")
	}
	return input, nil
}
