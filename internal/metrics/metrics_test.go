package metrics

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRegistryIsSingleton(t *testing.T) {
	assert.Same(t, InitRegistry(), GetRegistry())
}

func TestCounters(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		PredictionsTotal.Inc()
		PredictionCacheHitsTotal.Inc()
		BreakerTripsTotal.Inc()
		RecommendationsTotal.WithLabelValues("WIN").Inc()
		RacePlansTotal.WithLabelValues("decisive").Inc()
	})
}

func TestGauges(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name  string
		value float64
	}{
		{"positive bankroll", 100000},
		{"zero bankroll", 0},
		{"negative roi", -35.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				CurrentBankroll.Set(tt.value)
				SessionROI.Set(tt.value)
			})
		})
	}
}

func TestHistograms(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		PredictionDuration.Observe(0.002)
		RecommendedStake.Observe(500)
	})
}

func TestMetricsHandler(t *testing.T) {
	InitRegistry()

	handler := Handler()
	assert.NotNil(t, handler)
	assert.Implements(t, (*http.Handler)(nil), handler)
}

func BenchmarkPredictionsTotal(b *testing.B) {
	InitRegistry()

	for i := 0; i < b.N; i++ {
		PredictionsTotal.Inc()
	}
}
