package graphmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeSetOrderedMatchesSetMembership(t *testing.T) {
	es := NewEdgeSet(10)
	es.EmplaceEdge(30, FF)
	es.EmplaceEdge(20, RF)
	es.EmplaceEdge(20, FF)
	es.EmplaceEdge(30, FF) // duplicate, must not double-count

	assert.Equal(t, 3, es.Len())

	ordered := es.Ordered()
	assert.Len(t, ordered, 3)
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i-1].Less(ordered[i]), "ordered edges must be sorted")
	}
	for _, e := range ordered {
		_, ok := es.set[e]
		assert.True(t, ok, "every ordered edge must be present in the membership set")
	}
}

func TestEdgeSetSelfLoopCounting(t *testing.T) {
	es := NewEdgeSet(5)
	assert.False(t, es.HasSelfLoop())
	assert.Equal(t, 0, es.NumSelfEdges())

	es.EmplaceEdge(5, FF)
	assert.True(t, es.HasSelfLoop())
	assert.Equal(t, 1, es.NumSelfEdges())

	es.EraseEdgeKind(5, FF)
	assert.False(t, es.HasSelfLoop())
	assert.Equal(t, 0, es.NumSelfEdges())
}

func TestEdgeSetMockEdgesExcludedFromNumEdges(t *testing.T) {
	es := NewEdgeSet(1)
	es.EmplaceEdge(MockSourceID, FF)
	es.EmplaceEdge(MockSinkID, RR)
	es.EmplaceEdge(2, FF)
	es.EmplaceEdge(3, RF)

	assert.Equal(t, 4, es.Len())
	assert.Equal(t, 2, es.NumMockEdges())
	assert.Equal(t, 2, es.NumEdges())
}

func TestEdgeSetEraseEdgeIsIdempotentOnMissingEdge(t *testing.T) {
	es := NewEdgeSet(1)
	es.EmplaceEdge(2, FF)

	assert.NotPanics(t, func() {
		es.EraseEdge(99)
		es.EraseEdgeKind(99, RR)
	})
	assert.Equal(t, 1, es.NumEdges())
}

func TestEdgeSetEraseEdgeRemovesEveryKind(t *testing.T) {
	es := NewEdgeSet(1)
	es.EmplaceEdge(2, FF)
	es.EmplaceEdge(2, RR)
	assert.Equal(t, 2, es.NumEdges())

	es.EraseEdge(2)
	assert.Equal(t, 0, es.NumEdges())
	assert.False(t, es.HasConnection(2))
}

func TestEdgeSetNumEdgesDirection(t *testing.T) {
	es := NewEdgeSet(1)
	es.EmplaceEdge(2, FF) // src fwd
	es.EmplaceEdge(3, FR) // src fwd
	es.EmplaceEdge(4, RF) // src rev
	es.EmplaceEdge(MockSinkID, FF)

	assert.Equal(t, 2, es.NumEdgesDirection(StrandFwd))
	assert.Equal(t, 1, es.NumEdgesDirection(StrandRev))
}

func TestEdgeSetClearEdges(t *testing.T) {
	es := NewEdgeSet(1)
	es.EmplaceEdge(1, FF) // self edge
	es.EmplaceEdge(MockSinkID, FF)
	es.EmplaceEdge(2, RF)

	es.ClearEdges()
	assert.Equal(t, 0, es.Len())
	assert.Equal(t, 0, es.NumMockEdges())
	assert.Equal(t, 0, es.NumSelfEdges())
	assert.Empty(t, es.Ordered())
}
