package recommendation

import (
	"myGreenReco/domain"
	"sort"
	"sync"
)

// ProductLookup is the read side of the graph the similarity cache needs.
type ProductLookup interface {
	ProductsOf(user domain.UserID) domain.ProductSet
}

// InteractionGraph stores the user -> product sets of the bipartite graph.
// It is safe for concurrent use; each mutation is atomic.
type InteractionGraph struct {
	mu    sync.RWMutex
	users map[domain.UserID]domain.ProductSet
}

func NewInteractionGraph() *InteractionGraph {
	return &InteractionGraph{
		users: make(map[domain.UserID]domain.ProductSet),
	}
}

// RegisterUser ensures the user has an entry. Existing entries are untouched.
func (g *InteractionGraph) RegisterUser(user domain.UserID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.users[user]; !ok {
		g.users[user] = make(domain.ProductSet)
	}
}

// AddInteraction records that user interacted with product, creating the
// user entry when needed.
func (g *InteractionGraph) AddInteraction(user domain.UserID, product domain.ProductID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.users[user]
	if !ok {
		set = make(domain.ProductSet)
		g.users[user] = set
	}
	set[product] = struct{}{}
}

// ProductsOf returns a copy of the user's products. Unknown users get an empty set.
func (g *InteractionGraph) ProductsOf(user domain.UserID) domain.ProductSet {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := g.users[user]
	out := make(domain.ProductSet, len(set))
	for p := range set {
		out[p] = struct{}{}
	}
	return out
}

// AllUsers returns every registered user in ascending order.
func (g *InteractionGraph) AllUsers() []domain.UserID {
	g.mu.RLock()
	out := make([]domain.UserID, 0, len(g.users))
	for u := range g.users {
		out = append(out, u)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g *InteractionGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.users)
}
