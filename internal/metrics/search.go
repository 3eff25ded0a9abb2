package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline collectors. Registered explicitly from main (no init()).
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cataloguesearch",
			Name:      "search_requests_total",
			Help:      "Search requests by resolved language and outcome",
		},
		[]string{"language", "status"},
	)

	LanguageDetectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cataloguesearch",
			Name:      "language_detected_total",
			Help:      "Resolved query languages after family grouping",
		},
		[]string{"language"},
	)

	FusionCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cataloguesearch",
			Name:      "fusion_candidates",
			Help:      "Combined number of backend hits entering fusion",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cataloguesearch",
			Name:      "embedding_requests_total",
			Help:      "Query embedding requests by provider, model and status",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cataloguesearch",
			Name:      "embedding_request_duration_seconds",
			Help:      "Query embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EmbeddingTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cataloguesearch",
			Name:      "embedding_tokens_total",
			Help:      "Embedding tokens consumed by provider, model and kind",
		},
		[]string{"provider", "model", "kind"},
	)
)

// RegisterSearchMetrics registers the search pipeline collectors.
func RegisterSearchMetrics() {
	prometheus.MustRegister(
		SearchRequestsTotal,
		LanguageDetectedTotal,
		FusionCandidates,
		EmbeddingRequestsTotal,
		EmbeddingRequestDuration,
		EmbeddingTokensTotal,
	)
}
