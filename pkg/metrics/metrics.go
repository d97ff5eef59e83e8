package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Chat engine metrics
	ChatRuleMatches  *prometheus.CounterVec
	ChatResponseTime prometheus.Histogram

	// Catalog query metrics
	RankQueries    *prometheus.CounterVec
	PlacesQueries  *prometheus.CounterVec
	EmptyRankTotal prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		ChatRuleMatches: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "chat_rule_matches_total",
			Help:      "Chat responses produced, labeled by the rule that won",
		}, []string{"rule"}),
		ChatResponseTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "chat_response_duration_seconds",
			Help:      "Time spent evaluating the chat rule cascade",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
		RankQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rank_queries_total",
			Help:      "Hospital ranking queries, labeled by sort key",
		}, []string{"sort"}),
		PlacesQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "places_queries_total",
			Help:      "Nearby-place queries, labeled by category",
		}, []string{"category"}),
		EmptyRankTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rank_empty_results_total",
			Help:      "Ranking queries whose filters matched no hospital",
		}),
	}
}
