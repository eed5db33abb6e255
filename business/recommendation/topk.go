package recommendation

import (
	"errors"
	"myGreenReco/domain"
	"strings"

	"github.com/emirpasic/gods/trees/binaryheap"
)

var (
	ErrInvalidCapacity = errors.New("top-k capacity cannot be negative")
	ErrAlreadyDrained  = errors.New("top-k selector already drained")
)

type candidate struct {
	score   int
	product domain.ProductID
}

// byRank puts the best candidate first: higher score, then ascending product id.
func byRank(a, b interface{}) int {
	ca := a.(candidate)
	cb := b.(candidate)

	switch {
	case ca.score > cb.score:
		return -1
	case ca.score < cb.score:
		return 1
	default:
		return strings.Compare(string(ca.product), string(cb.product))
	}
}

// TopKSelector collects scored candidates and yields the k best exactly once.
//
// Every offer is kept; only the drained output is bounded by k. Equal scores
// are ordered by ascending product id. Once drained, Offer and DrainTop
// return ErrAlreadyDrained.
type TopKSelector struct {
	capacity int
	heap     *binaryheap.Heap
	drained  bool
}

func NewTopKSelector(k int) (*TopKSelector, error) {
	if k < 0 {
		return nil, ErrInvalidCapacity
	}

	return &TopKSelector{
		capacity: k,
		heap:     binaryheap.NewWith(byRank),
	}, nil
}

// Offer records a candidate. The same product may be offered more than once.
func (s *TopKSelector) Offer(score int, product domain.ProductID) error {
	if s.drained {
		return ErrAlreadyDrained
	}

	s.heap.Push(candidate{score: score, product: product})
	return nil
}

// DrainTop returns the min(k, offers) best products in descending score order.
func (s *TopKSelector) DrainTop() ([]domain.ProductID, error) {
	recs, err := s.DrainScored()
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProductID, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ProductID)
	}
	return out, nil
}

// DrainScored is DrainTop with the scores attached.
func (s *TopKSelector) DrainScored() ([]domain.Recommendation, error) {
	if s.drained {
		return nil, ErrAlreadyDrained
	}
	s.drained = true

	n := s.capacity
	if size := s.heap.Size(); size < n {
		n = size
	}

	out := make([]domain.Recommendation, 0, n)
	for i := 0; i < n; i++ {
		v, ok := s.heap.Pop()
		if !ok {
			break
		}
		c := v.(candidate)
		out = append(out, domain.Recommendation{ProductID: c.product, Score: c.score})
	}

	// leftovers are never returned
	s.heap.Clear()

	return out, nil
}

// Len is the number of candidates offered and not yet drained.
func (s *TopKSelector) Len() int {
	return s.heap.Size()
}
