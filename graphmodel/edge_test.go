package graphmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKindSrcDstDirection(t *testing.T) {
	assert.Equal(t, StrandFwd, FF.SrcDirection())
	assert.Equal(t, StrandFwd, FF.DstDirection())

	assert.Equal(t, StrandFwd, FR.SrcDirection())
	assert.Equal(t, StrandRev, FR.DstDirection())

	assert.Equal(t, StrandRev, RF.SrcDirection())
	assert.Equal(t, StrandFwd, RF.DstDirection())

	assert.Equal(t, StrandRev, RR.SrcDirection())
	assert.Equal(t, StrandRev, RR.DstDirection())
}

func TestMakeEdgeKindRoundTrips(t *testing.T) {
	for _, k := range []EdgeKind{FF, FR, RF, RR} {
		assert.Equal(t, k, MakeEdgeKind(k.SrcDirection(), k.DstDirection()))
	}
}

func TestEdgeKindReversedIsInvolution(t *testing.T) {
	for _, k := range []EdgeKind{FF, FR, RF, RR} {
		assert.Equal(t, k, k.Reversed().Reversed())
	}
	// Same-strand kinds reverse into the opposite-strand kind; mixed
	// kinds (FR, RF) are their own reverse, since swapping which end is
	// "source" doesn't change a fwd-to-rev strand pairing.
	assert.Equal(t, FR, FR.Reversed())
	assert.Equal(t, RF, RF.Reversed())
	assert.Equal(t, RR, FF.Reversed())
	assert.Equal(t, FF, RR.Reversed())
}

func TestEdgeLessIsTotalOrder(t *testing.T) {
	e1 := Edge{Destination: 1, Kind: FF}
	e2 := Edge{Destination: 1, Kind: FR}
	e3 := Edge{Destination: 2, Kind: FF}

	assert.True(t, e1.Less(e2))
	assert.False(t, e2.Less(e1))
	assert.True(t, e2.Less(e3))
	assert.False(t, e1.Less(e1))
}

func TestEdgeIsMockDestination(t *testing.T) {
	assert.True(t, Edge{Destination: MockSourceID}.IsMockDestination())
	assert.True(t, Edge{Destination: MockSinkID}.IsMockDestination())
	assert.False(t, Edge{Destination: 42}.IsMockDestination())
}
