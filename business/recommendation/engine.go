package recommendation

import (
	"context"
	"fmt"
	"myGreenReco/domain"
	"myGreenReco/pkg/logger"
	"myGreenReco/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultK is the number of recommendations returned when the caller has no preference.
const DefaultK = 5

type UserGraph interface {
	ProductLookup
	AllUsers() []domain.UserID
}

type SimilarityScorer interface {
	Similarity(a, b domain.UserID) int
}

// Engine recommends products bought by the users most similar to a target user.
// Graph and similarity cache are owned by the caller and may be shared
// between engines; every call builds its own accumulator and selector.
type Engine struct {
	graph UserGraph
	sims  SimilarityScorer
}

func NewEngine(graph UserGraph, sims SimilarityScorer) *Engine {
	return &Engine{
		graph: graph,
		sims:  sims,
	}
}

// Recommend returns up to k products user does not own, best first.
// Unknown users are not an error; they simply get no recommendations.
func (e *Engine) Recommend(ctx context.Context, user domain.UserID, k int) ([]domain.ProductID, error) {
	recs, err := e.RecommendScored(ctx, user, k)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProductID, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ProductID)
	}
	return out, nil
}

// RecommendScored is Recommend with the accumulated score of every product.
func (e *Engine) RecommendScored(ctx context.Context, user domain.UserID, k int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	selector, err := NewTopKSelector(k)
	if err != nil {
		return nil, fmt.Errorf("recommend for %s: %w", user, err)
	}

	timer := prometheus.NewTimer(metrics.RecommendLatency)
	defer timer.ObserveDuration()
	metrics.RecommendRequests.Inc()

	scores, err := e.accumulate(ctx, user)
	if err != nil {
		return nil, err
	}

	for product, score := range scores {
		if err := selector.Offer(score, product); err != nil {
			return nil, fmt.Errorf("offer %s: %w", product, err)
		}
	}

	// no partial output once cancelled
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	recs, err := selector.DrainScored()
	if err != nil {
		return nil, fmt.Errorf("drain top-k: %w", err)
	}

	logger.Debug("recommend",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", user,
		"k", k,
		"candidate_count", len(scores),
		"returned", len(recs),
	)

	return recs, nil
}

// Similarity exposes the engine's similarity source.
func (e *Engine) Similarity(a, b domain.UserID) int {
	return e.sims.Similarity(a, b)
}

// accumulate sums, per product the user does not own, the similarity of
// every other user who owns it. Zero-similarity users contribute nothing.
func (e *Engine) accumulate(ctx context.Context, user domain.UserID) (map[domain.ProductID]int, error) {
	owned := e.graph.ProductsOf(user)
	scores := make(map[domain.ProductID]int)

	for _, other := range e.graph.AllUsers() {
		if other == user {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context error: %w", err)
		}

		sim := e.sims.Similarity(user, other)
		if sim == 0 {
			continue
		}

		for product := range e.graph.ProductsOf(other) {
			if owned.Has(product) {
				continue
			}
			scores[product] += sim
		}
	}

	return scores, nil
}
