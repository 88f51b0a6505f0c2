package graphmodel

import "github.com/hmmm42/lancetgo/kmer"

// NodeIdentifier is the stable 64-bit identity of a node, equal to the
// canonical k-mer ID of the node it was created from. It never
// changes, even after the node's sequence is rewritten by compaction.
type NodeIdentifier = kmer.ID

// Sentinel identities anchor path enumeration without carrying any
// sequence. They are reserved and excluded from every counting
// operation on edges.
const (
	MockSourceID NodeIdentifier = 0
	MockSinkID   NodeIdentifier = ^NodeIdentifier(0)
)

// EdgeKind is a 2-bit tag over {FF, FR, RF, RR} encoding the strand of
// the source end and the strand of the destination end of an edge.
type EdgeKind uint8

const (
	FF EdgeKind = iota // source forward  -> destination forward
	FR                 // source forward  -> destination reverse
	RF                 // source reverse  -> destination forward
	RR                 // source reverse  -> destination reverse
)

func (k EdgeKind) String() string {
	switch k {
	case FF:
		return "FF"
	case FR:
		return "FR"
	case RF:
		return "RF"
	case RR:
		return "RR"
	default:
		return "?"
	}
}

// SrcDirection returns the strand of the edge's source end.
func (k EdgeKind) SrcDirection() Strand {
	if k == RF || k == RR {
		return StrandRev
	}
	return StrandFwd
}

// DstDirection returns the strand of the edge's destination end.
func (k EdgeKind) DstDirection() Strand {
	if k == FR || k == RR {
		return StrandRev
	}
	return StrandFwd
}

func strandBit(s Strand) uint8 {
	if s == StrandRev {
		return 1
	}
	return 0
}

// MakeEdgeKind builds the EdgeKind for the given source/destination
// strand pair.
func MakeEdgeKind(src, dst Strand) EdgeKind {
	return EdgeKind(strandBit(src)<<1 | strandBit(dst))
}

// Reversed flips both ends of the edge kind, matching what happens
// when an edge's direction of traversal is reversed.
func (k EdgeKind) Reversed() EdgeKind {
	return MakeEdgeKind(oppositeStrand(k.DstDirection()), oppositeStrand(k.SrcDirection()))
}

func oppositeStrand(s Strand) Strand {
	if s == StrandFwd {
		return StrandRev
	}
	return StrandFwd
}

// Edge is a directed connection to a destination node, tagged with the
// strand orientation at both ends.
type Edge struct {
	Destination NodeIdentifier
	Kind        EdgeKind
}

// Less orders edges lexicographically over (Destination, Kind), giving
// deterministic iteration of an edge set regardless of insertion order
// or platform.
func (e Edge) Less(other Edge) bool {
	if e.Destination != other.Destination {
		return e.Destination < other.Destination
	}
	return e.Kind < other.Kind
}

// Equal reports whether two edges have the same destination and kind.
func (e Edge) Equal(other Edge) bool {
	return e.Destination == other.Destination && e.Kind == other.Kind
}

// IsMockDestination reports whether e points at a sentinel node.
func (e Edge) IsMockDestination() bool {
	return e.Destination == MockSourceID || e.Destination == MockSinkID
}
