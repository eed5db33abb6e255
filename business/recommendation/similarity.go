package recommendation

import (
	"myGreenReco/domain"
	"myGreenReco/pkg/metrics"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// pairKey is an unordered user pair; lo <= hi always.
type pairKey struct {
	lo, hi domain.UserID
}

func newPairKey(a, b domain.UserID) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// String is the singleflight key. The length prefix keeps ids containing
// any byte from colliding.
func (k pairKey) String() string {
	return strconv.Itoa(len(k.lo)) + ":" + string(k.lo) + string(k.hi)
}

// SimilarityCache memoizes |products(a) ∩ products(b)| per unordered user pair.
//
// Entries are computed lazily and kept for the lifetime of the cache. They are
// never invalidated: a pair looked up before a graph mutation keeps returning
// the value computed at that time.
type SimilarityCache struct {
	graph ProductLookup

	mu     sync.RWMutex
	scores map[pairKey]int

	group singleflight.Group
}

func NewSimilarityCache(graph ProductLookup) *SimilarityCache {
	return &SimilarityCache{
		graph:  graph,
		scores: make(map[pairKey]int),
	}
}

// Similarity returns the number of products a and b share. A cache hit does
// not read the graph. Similarity(u, u) is the size of u's own product set.
func (c *SimilarityCache) Similarity(a, b domain.UserID) int {
	key := newPairKey(a, b)

	if sim, ok := c.lookup(key); ok {
		metrics.SimilarityLookups.WithLabelValues("hit").Inc()
		return sim
	}
	metrics.SimilarityLookups.WithLabelValues("miss").Inc()

	// concurrent misses on the same pair share one computation
	v, _, _ := c.group.Do(key.String(), func() (any, error) {
		if sim, ok := c.lookup(key); ok {
			return sim, nil
		}

		sim := intersectCount(c.graph.ProductsOf(key.lo), c.graph.ProductsOf(key.hi))

		c.mu.Lock()
		c.scores[key] = sim
		c.mu.Unlock()

		return sim, nil
	})

	return v.(int)
}

// Len returns the number of cached pairs.
func (c *SimilarityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scores)
}

func (c *SimilarityCache) lookup(key pairKey) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sim, ok := c.scores[key]
	return sim, ok
}

func intersectCount(a, b domain.ProductSet) int {
	// iterate smaller
	if len(a) > len(b) {
		a, b = b, a
	}

	n := 0
	for p := range a {
		if _, ok := b[p]; ok {
			n++
		}
	}
	return n
}
