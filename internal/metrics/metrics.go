// Package metrics provides the centralized Prometheus registry for the
// prediction engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "keiba_engine",
		Name:      "predictions_total",
		Help:      "Total number of race predictions computed",
	})
	PredictionCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "keiba_engine",
		Name:      "prediction_cache_hits_total",
		Help:      "Total number of prediction cache hits",
	})
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keiba_engine",
		Name:      "recommendations_total",
		Help:      "Total number of bet recommendations emitted",
	}, []string{"bet_type"})
	RacePlansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keiba_engine",
		Name:      "race_plans_total",
		Help:      "Total number of race plans generated",
	}, []string{"race_level"})
	BreakerTripsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "keiba_engine",
		Name:      "breaker_trips_total",
		Help:      "Total number of session breaker trips",
	})
)

// Gauge metrics
var (
	CurrentBankroll = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "keiba_engine",
		Name:      "current_bankroll",
		Help:      "Current session bankroll in currency units",
	})
	SessionROI = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "keiba_engine",
		Name:      "session_roi",
		Help:      "Session return on investment percentage",
	})
)

// Histogram metrics
var (
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "keiba_engine",
		Name:      "prediction_duration_seconds",
		Help:      "Duration of race prediction computation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	RecommendedStake = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "keiba_engine",
		Name:      "recommended_stake",
		Help:      "Distribution of recommended stakes in currency units",
		Buckets:   []float64{100, 200, 500, 1000, 2000, 5000, 10000},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(PredictionCacheHitsTotal)
		registry.MustRegister(RecommendationsTotal)
		registry.MustRegister(RacePlansTotal)
		registry.MustRegister(BreakerTripsTotal)

		registry.MustRegister(CurrentBankroll)
		registry.MustRegister(SessionROI)

		registry.MustRegister(PredictionDuration)
		registry.MustRegister(RecommendedStake)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}
