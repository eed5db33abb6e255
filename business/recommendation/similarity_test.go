package recommendation

import (
	"myGreenReco/domain"
	"myGreenReco/pkg/metrics"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLookup wraps a graph and counts reads.
type countingLookup struct {
	graph *InteractionGraph
	calls atomic.Int64
}

func (c *countingLookup) ProductsOf(user domain.UserID) domain.ProductSet {
	c.calls.Add(1)
	return c.graph.ProductsOf(user)
}

func newScenarioGraph() *InteractionGraph {
	g := NewInteractionGraph()
	g.AddInteraction("user1", "productA")
	g.AddInteraction("user1", "productB")
	g.AddInteraction("user2", "productB")
	g.AddInteraction("user2", "productC")
	g.AddInteraction("user3", "productA")
	g.AddInteraction("user3", "productD")
	return g
}

func TestSimilarityCache_Scenario(t *testing.T) {
	c := NewSimilarityCache(newScenarioGraph())

	assert.Equal(t, 1, c.Similarity("user1", "user2"))
	assert.Equal(t, 1, c.Similarity("user1", "user3"))
	assert.Equal(t, 0, c.Similarity("user2", "user3"))
}

func TestSimilarityCache_Symmetric(t *testing.T) {
	g := newScenarioGraph()
	c := NewSimilarityCache(g)

	users := append(g.AllUsers(), "ghost")
	for _, a := range users {
		for _, b := range users {
			assert.Equal(t, c.Similarity(a, b), c.Similarity(b, a), "sim(%s,%s)", a, b)
		}
	}
}

func TestSimilarityCache_SelfSimilarity(t *testing.T) {
	g := newScenarioGraph()
	g.AddInteraction("user1", "productE")
	c := NewSimilarityCache(g)

	for _, u := range g.AllUsers() {
		assert.Equal(t, g.ProductsOf(u).Len(), c.Similarity(u, u), "self similarity of %s", u)
	}
	assert.Equal(t, 3, c.Similarity("user1", "user1"))
}

func TestSimilarityCache_HitDoesNotTouchGraph(t *testing.T) {
	lookup := &countingLookup{graph: newScenarioGraph()}
	c := NewSimilarityCache(lookup)

	require.Equal(t, 1, c.Similarity("user1", "user2"))
	require.EqualValues(t, 2, lookup.calls.Load())

	assert.Equal(t, 1, c.Similarity("user2", "user1"))
	assert.Equal(t, 1, c.Similarity("user1", "user2"))
	assert.EqualValues(t, 2, lookup.calls.Load(), "cache hit re-read the graph")
	assert.Equal(t, 1, c.Len())
}

func TestSimilarityCache_StaleAfterMutation(t *testing.T) {
	g := newScenarioGraph()
	c := NewSimilarityCache(g)

	require.Equal(t, 1, c.Similarity("user1", "user2"))

	// user2 is now {A, B, C}; user1 stays {A, B}
	g.AddInteraction("user2", "productA")

	// the cached pair stays authoritative
	assert.Equal(t, 1, c.Similarity("user1", "user2"))
	assert.Equal(t, 1, c.Similarity("user2", "user1"))

	// a pair first seen after the mutation reflects the new graph
	assert.Equal(t, 2, NewSimilarityCache(g).Similarity("user1", "user2"))
}

func TestSimilarityCache_UnknownUsers(t *testing.T) {
	c := NewSimilarityCache(newScenarioGraph())

	assert.Equal(t, 0, c.Similarity("ghost", "user1"))
	assert.Equal(t, 0, c.Similarity("ghost", "ghost"))
}

func TestSimilarityCache_Metrics(t *testing.T) {
	c := NewSimilarityCache(newScenarioGraph())

	hits := testutil.ToFloat64(metrics.SimilarityLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(metrics.SimilarityLookups.WithLabelValues("miss"))

	c.Similarity("user1", "user2")
	c.Similarity("user2", "user1")
	c.Similarity("user1", "user3")

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.SimilarityLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(metrics.SimilarityLookups.WithLabelValues("miss")))
}

func TestSimilarityCache_ConcurrentLookups(t *testing.T) {
	lookup := &countingLookup{graph: newScenarioGraph()}
	c := NewSimilarityCache(lookup)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 1, c.Similarity("user1", "user2"))
			assert.Equal(t, 1, c.Similarity("user3", "user1"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, c.Len())
}

func TestIntersectCount(t *testing.T) {
	a := domain.ProductSet{"p1": {}, "p2": {}, "p3": {}}
	b := domain.ProductSet{"p2": {}, "p3": {}, "p4": {}, "p5": {}}

	assert.Equal(t, 2, intersectCount(a, b))
	assert.Equal(t, 2, intersectCount(b, a))
	assert.Equal(t, 0, intersectCount(a, nil))
}

// gatedLookup holds every read until release is closed.
type gatedLookup struct {
	graph   *InteractionGraph
	entered chan struct{}
	release chan struct{}
}

func (g *gatedLookup) ProductsOf(user domain.UserID) domain.ProductSet {
	g.entered <- struct{}{}
	<-g.release
	return g.graph.ProductsOf(user)
}

func TestPairKey_Unambiguous(t *testing.T) {
	a := newPairKey("a", "b\x00c")
	b := newPairKey("a\x00b", "c")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a.String(), b.String())
	assert.Equal(t, newPairKey("x", "y").String(), newPairKey("y", "x").String())
}

func TestSimilarityCache_ConcurrentMissesOnDistinctPairs(t *testing.T) {
	g := NewInteractionGraph()
	g.AddInteraction("a", "p1")
	g.AddInteraction("b\x00c", "p1")
	g.AddInteraction("a\x00b", "p2")
	g.AddInteraction("c", "p3")

	lookup := &gatedLookup{
		graph:   g,
		entered: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	c := NewSimilarityCache(lookup)

	var wg sync.WaitGroup
	var first, second int
	wg.Add(2)
	go func() {
		defer wg.Done()
		first = c.Similarity("a", "b\x00c")
	}()
	go func() {
		defer wg.Done()
		second = c.Similarity("a\x00b", "c")
	}()

	// both misses must be computing at once, not joined
	for i := 0; i < 2; i++ {
		select {
		case <-lookup.entered:
		case <-time.After(2 * time.Second):
			close(lookup.release)
			wg.Wait()
			t.Fatalf("lookup %d never started; distinct pairs were joined", i+1)
		}
	}
	close(lookup.release)
	wg.Wait()

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, 2, c.Len())
}
