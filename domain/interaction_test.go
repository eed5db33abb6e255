package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductSet(t *testing.T) {
	s := ProductSet{"productC": {}, "productA": {}, "productB": {}}

	assert.True(t, s.Has("productA"))
	assert.False(t, s.Has("productZ"))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []ProductID{"productA", "productB", "productC"}, s.Sorted())
}

func TestProductSet_Empty(t *testing.T) {
	var s ProductSet

	assert.False(t, s.Has("productA"))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Sorted())
}
