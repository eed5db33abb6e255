package metrics

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	// Latency of a single Engine.Recommend call
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reco_recommend_latency_seconds",
		Help:    "Latency of recommendation queries",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation queries served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_recommend_requests_total",
		Help: "Total number of recommendation queries",
	})

	SimilarityLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_similarity_cache_lookups_total",
			Help: "Similarity cache lookups by result (hit or miss).",
		},
		[]string{"result"},
	)

	GraphUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "reco_graph_users",
		Help: "Number of users registered in the interaction graph",
	})
)

var initOnce sync.Once

// Init registers every collector on the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RecommendLatency,
			RecommendRequests,
			SimilarityLookups,
			GraphUsers,
		)
	})
}

// WriteText renders everything the gatherer holds in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
