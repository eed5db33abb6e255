package domain

import "sort"

// UserID identifies one side of the interaction graph.
type UserID string

// ProductID identifies the other side of the interaction graph.
type ProductID string

// ProductSet holds the distinct products a user interacted with.
type ProductSet map[ProductID]struct{}

func (s ProductSet) Has(p ProductID) bool {
	_, ok := s[p]
	return ok
}

func (s ProductSet) Len() int {
	return len(s)
}

// Sorted returns the products in ascending order.
func (s ProductSet) Sorted() []ProductID {
	out := make([]ProductID, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Interaction is one ingested user -> product row.
// An empty ProductID only registers the user.
type Interaction struct {
	UserID    UserID    `json:"user_id"`
	ProductID ProductID `json:"product_id"`
}

type Recommendation struct {
	ProductID ProductID `json:"product_id"`
	Score     int       `json:"score"`
}
