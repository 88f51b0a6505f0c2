package graphmodel

import "github.com/hmmm42/lancetgo/kmer"

// Compact collapses every maximal non-branching chain in the graph
// into a single node ("buddy merge", SPEC_FULL.md §4.4). It repeatedly
// scans the table for a mergeable pair, merges the buddy into its
// neighbor, rewires the neighbor's edges to skip over the absorbed
// node, and removes the absorbed node from the table. It stops when a
// full pass finds nothing left to merge.
func Compact(table *Table, k int) {
	for {
		merged := compactOnePass(table, k)
		if !merged {
			return
		}
	}
}

func compactOnePass(table *Table, k int) bool {
	mergedAny := false
	for _, id := range table.Identities() {
		a := table.Get(id)
		if a == nil || a.IsMockNode() {
			continue
		}
		if tryMergeFromNode(table, a, k) {
			mergedAny = true
		}
	}
	return mergedAny
}

// tryMergeFromNode attempts to fold one of a's mergeable neighbours
// into a, returning true if a merge happened.
func tryMergeFromNode(table *Table, a *Node, k int) bool {
	for _, nb := range a.FindMergeableNeighbours() {
		buddy := table.Get(nb.Edge.Destination)
		if buddy == nil || buddy == a {
			continue
		}

		dir := directionFromEdgeKind(nb.Edge.Kind)
		if !a.CanMerge(buddy, dir, k) {
			continue
		}

		mergeAndRewire(table, a, buddy, dir, nb.Edge.Kind, k)
		return true
	}
	return false
}

// directionFromEdgeKind maps an outgoing edge's source strand to the
// merge-geometry side it implies: a forward-leaving edge extends the
// node at its back, a reverse-leaving edge extends it at its front.
func directionFromEdgeKind(kind EdgeKind) kmer.BuddyPosition {
	if kind.SrcDirection() == StrandRev {
		return kmer.FrontOfA
	}
	return kmer.BackOfA
}

// mergeAndRewire merges buddy into a and then rewires edges: buddy's
// incident edges (on every other neighbour) are erased and
// re-emplaced on a, with the edge kind's end nearest the absorbed node
// flipped if buddy's orientation was reversed during the merge. buddy
// is then removed from the table.
func mergeAndRewire(table *Table, a, buddy *Node, dir kmer.BuddyPosition, viaKind EdgeKind, k int) {
	reversedBuddy := buddy.Orientation() != a.Orientation()
	buddyID := buddy.Identity()
	aID := a.Identity()

	a.MergeBuddy(buddy, dir, k)

	for _, e := range buddy.Edges().Ordered() {
		if e.Destination == aID {
			// This is the edge back to a itself; it's being absorbed,
			// not rewired to point elsewhere.
			continue
		}

		other := table.Get(e.Destination)
		kind := e.Kind
		if reversedBuddy {
			kind = flipSourceEnd(kind)
		}

		a.EmplaceEdge(e.Destination, kind)
		if other != nil && other != a {
			// other's reciprocal edge pointed at buddy; re-point it at
			// a using the edge reversed, since kind already accounts
			// for any orientation flip buddy underwent during merge.
			other.EraseEdge(buddyID)
			other.EmplaceEdge(aID, kind.Reversed())
		}
	}

	a.EraseEdge(buddyID)
	table.Delete(buddyID)
	_ = viaKind
}

// flipSourceEnd flips the strand bit at the source end of kind,
// matching what happens to an edge whose owning node was just
// reverse-complemented during a merge.
func flipSourceEnd(kind EdgeKind) EdgeKind {
	return MakeEdgeKind(oppositeStrand(kind.SrcDirection()), kind.DstDirection())
}
