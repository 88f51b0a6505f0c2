package graphmodel

import "sort"

// EdgeSet is the dual set+sorted-sequence representation described in
// SPEC_FULL.md §9: edgeSet gives O(1) membership, orderedEdges gives
// deterministic iteration for reproducible output and for the
// order-independent compaction algorithm.
type EdgeSet struct {
	set     map[Edge]struct{}
	ordered []Edge

	numMockEdges int
	numSelfEdges int
	ownerID      NodeIdentifier
}

// NewEdgeSet returns an empty edge set owned by a node with the given
// identity, so self-edges can be detected on insertion.
func NewEdgeSet(ownerID NodeIdentifier) *EdgeSet {
	return &EdgeSet{set: make(map[Edge]struct{}), ownerID: ownerID}
}

// EmplaceEdge inserts an edge if it is not already present, keeping
// orderedEdges a sorted permutation of the set and numMockEdges /
// numSelfEdges in sync.
func (es *EdgeSet) EmplaceEdge(dst NodeIdentifier, kind EdgeKind) {
	e := Edge{Destination: dst, Kind: kind}
	if _, exists := es.set[e]; exists {
		return
	}
	es.set[e] = struct{}{}
	es.ordered = append(es.ordered, e)
	sort.Slice(es.ordered, func(i, j int) bool { return es.ordered[i].Less(es.ordered[j]) })

	if e.IsMockDestination() {
		es.numMockEdges++
	}
	if dst == es.ownerID {
		es.numSelfEdges++
	}
}

// EraseEdgeKind removes a single (destination, kind) edge. Erasing an
// edge that does not exist is a no-op and preserves all counts and
// orderedEdges.
func (es *EdgeSet) EraseEdgeKind(dst NodeIdentifier, kind EdgeKind) {
	e := Edge{Destination: dst, Kind: kind}
	if _, exists := es.set[e]; !exists {
		return
	}
	delete(es.set, e)
	es.rebuildOrdered()

	if e.IsMockDestination() {
		es.numMockEdges--
	}
	if dst == es.ownerID {
		es.numSelfEdges--
	}
}

// allEdgeKinds enumerates every EdgeKind, used when erasing all edges
// to a destination regardless of orientation.
var allEdgeKinds = [4]EdgeKind{FF, FR, RF, RR}

// EraseEdge removes every edge to dst, of any kind.
func (es *EdgeSet) EraseEdge(dst NodeIdentifier) {
	for _, k := range allEdgeKinds {
		es.EraseEdgeKind(dst, k)
	}
}

func (es *EdgeSet) rebuildOrdered() {
	es.ordered = es.ordered[:0]
	for e := range es.set {
		es.ordered = append(es.ordered, e)
	}
	sort.Slice(es.ordered, func(i, j int) bool { return es.ordered[i].Less(es.ordered[j]) })
}

// ClearEdges empties both the set and the ordered sequence.
func (es *EdgeSet) ClearEdges() {
	es.set = make(map[Edge]struct{})
	es.ordered = nil
	es.numMockEdges = 0
	es.numSelfEdges = 0
}

// Ordered returns the edges in deterministic sorted order. The
// returned slice is owned by the EdgeSet and must not be mutated.
func (es *EdgeSet) Ordered() []Edge { return es.ordered }

// Len returns the total number of edges, including sentinel edges.
func (es *EdgeSet) Len() int { return len(es.set) }

// NumMockEdges returns the count of edges whose destination is a
// sentinel.
func (es *EdgeSet) NumMockEdges() int { return es.numMockEdges }

// NumSelfEdges returns the count of edges whose destination is the
// owning node itself.
func (es *EdgeSet) NumSelfEdges() int { return es.numSelfEdges }

// NumEdges returns the count of real (non-sentinel) edges.
func (es *EdgeSet) NumEdges() int { return len(es.set) - es.numMockEdges }

// NumEdgesDirection counts edges whose source end matches direction,
// excluding sentinel destinations (they exist only for path anchoring).
func (es *EdgeSet) NumEdgesDirection(direction Strand) int {
	count := 0
	for e := range es.set {
		if e.Kind.SrcDirection() == direction && !e.IsMockDestination() {
			count++
		}
	}
	return count
}

// HasConnection reports whether any edge of any kind points at dst.
func (es *EdgeSet) HasConnection(dst NodeIdentifier) bool {
	for _, k := range allEdgeKinds {
		if _, ok := es.set[Edge{Destination: dst, Kind: k}]; ok {
			return true
		}
	}
	return false
}

// HasSelfLoop reports whether this node has any edge back to itself.
func (es *EdgeSet) HasSelfLoop() bool { return es.numSelfEdges > 0 }
