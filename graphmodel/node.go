// Package graphmodel implements the colored de Bruijn graph's node and
// edge model: canonical k-mer vertices, per-base annotation vectors
// that merge under chain compaction, and the compactor itself.
package graphmodel

import (
	"github.com/hmmm42/lancetgo/kmer"
)

// Node is a vertex of the colored de Bruijn graph. It holds one k-mer
// on creation; after compaction its mer is a longer PackedSeq-like
// string, but its identity — the canonical ID of the k-mer it was
// created from — never changes.
type Node struct {
	mer      kmer.Kmer
	identity NodeIdentifier

	quals  QualVector
	covs   CovVector
	labels LabelVector
	bxData BarcodeData
	hpData HPVector // nil until haplotype-tagged reads are seen

	edges *EdgeSet
}

// NewNode creates a node from a single k-mer, zero-initializing all
// per-base vectors to the k-mer's length.
func NewNode(k kmer.Kmer) *Node {
	length := k.Length()
	id := k.ID()
	return &Node{
		mer:      k,
		identity: id,
		quals:    NewQualVector(length),
		covs:     NewCovVector(length),
		labels:   NewLabelVector(length),
		edges:    NewEdgeSet(id),
	}
}

// NewMockNode creates a source or sink sentinel: it carries the given
// identity but no sequence or annotation.
func NewMockNode(id NodeIdentifier) *Node {
	return &Node{identity: id, edges: NewEdgeSet(id)}
}

// Identity returns the node's stable 64-bit identity.
func (n *Node) Identity() NodeIdentifier { return n.identity }

// Mer returns the node's current sequence (a single k-mer before
// compaction, the compacted PackedSeq afterwards).
func (n *Node) Mer() kmer.Kmer { return n.mer }

// Length returns the length of the node's current sequence.
func (n *Node) Length() int { return n.mer.Length() }

// Orientation returns the orientation of the node's current sequence.
func (n *Node) Orientation() kmer.Orientation { return n.mer.Orientation() }

// IsMockNode reports whether this node's identity is a sentinel.
func (n *Node) IsMockNode() bool {
	return n.identity == MockSourceID || n.identity == MockSinkID
}

// IsSource reports whether this is the source sentinel.
func (n *Node) IsSource() bool { return n.identity == MockSourceID }

// IsSink reports whether this is the sink sentinel.
func (n *Node) IsSink() bool { return n.identity == MockSinkID }

// Edges exposes the node's edge set for callers that need direct
// access (the compactor, graph dumpers, tests).
func (n *Node) Edges() *EdgeSet { return n.edges }

// Quals exposes the per-base quality vector.
func (n *Node) Quals() QualVector { return n.quals }

// Covs exposes the per-base coverage vector.
func (n *Node) Covs() CovVector { return n.covs }

// Labels exposes the per-base label vector.
func (n *Node) Labels() LabelVector { return n.labels }

// HasBXData reports whether any linked-read barcode has been recorded.
func (n *Node) HasBXData() bool { return !n.bxData.IsEmpty() }

// HasHPData reports whether any haplotype support has been recorded.
func (n *Node) HasHPData() bool { return !n.hpData.IsEmpty() }

// UpdateQual pushes one read's per-base qualities, aligned to the
// node's bases. len(quals) must equal n.Length(); a mismatch is a
// programmer error, not a data error, so it panics rather than
// returning an error.
func (n *Node) UpdateQual(quals []byte) { n.quals.Push(quals) }

// UpdateLabel records label as observed at every base of the node.
func (n *Node) UpdateLabel(label SampleLabel) { n.labels.Push(label) }

// UpdateCovInfo increments per-position coverage for ri's sample and
// strand. In linked-read mode it credits by barcode count instead of
// raw read count, so that PCR/barcode-amplified duplicates do not
// inflate support.
func (n *Node) UpdateCovInfo(ri ReadInfo, minBaseQual uint8, isLinkedReadMode bool) {
	bqPass := n.quals.HighQualPositions(float64(minBaseQual))
	if isLinkedReadMode {
		credit := n.bxData.BXCount(ri.Label, ri.Strand)
		n.covs.Update(ri.Label, ri.Strand, bqPass, credit)
		return
	}
	n.covs.Update(ri.Label, ri.Strand, bqPass, 1)
}

// UpdateHPInfo records haplotype support for ri, but only once per
// (sample, barcode): the first time a barcode is seen for a sample it
// is recorded in bxData and credited in hpData; subsequent reads
// sharing that barcode are no-ops here; since UpdateCovInfo's
// linked-read credit reads bxData, calling UpdateHPInfo before
// UpdateCovInfo is what makes barcode-aware coverage crediting work.
func (n *Node) UpdateHPInfo(ri ReadInfo, minBaseQual uint8) {
	bqPass := n.quals.HighQualPositions(float64(minBaseQual))
	if n.hpData == nil {
		n.hpData = NewHPVector(n.Length())
	}
	if ri.TenxBarcode != "" && n.bxData.IsBXMissing(ri.Label, ri.TenxBarcode) {
		n.bxData.AddBX(ri.Label, ri.Strand, ri.TenxBarcode)
		n.hpData.Update(ri.HaplotypeID, ri.Label, bqPass)
	}
}

// IncrementCov credits label/strand at a single base position, and
// mirrors it into hpData's unassigned (id 0) haplotype bucket when
// both barcode and haplotype data are already being tracked for this
// node.
func (n *Node) IncrementCov(label SampleLabel, s Strand, basePosition int) {
	n.covs.UpdateAt(label, s, basePosition)
	if n.HasBXData() && n.HasHPData() {
		if n.hpData[basePosition].bySample[label] == nil {
			n.hpData[basePosition].bySample[label] = make(map[int]uint16)
		}
		n.hpData[basePosition].bySample[label][0]++
	}
}

// FillColor mirrors lancet's graph-visualization convention.
func (n *Node) FillColor() string {
	switch {
	case n.IsSource():
		return "cyan3"
	case n.IsSink():
		return "yellow2"
	default:
		return n.labels.FillColor()
	}
}

func (n *Node) LabelRatio(label SampleLabel) float64 { return n.labels.LabelRatio(label) }
func (n *Node) HasLabel(label SampleLabel) bool       { return n.labels.HasLabel(label) }
func (n *Node) IsLabelOnly(label SampleLabel) bool     { return n.labels.IsLabelOnly(label) }

// TotalSampleCount sums raw coverage for Tumor and Normal.
func (n *Node) TotalSampleCount() uint16 {
	return n.SampleCount(Tumor) + n.SampleCount(Normal)
}

func (n *Node) SampleCount(label SampleLabel) uint16 { return n.covs.TotalCov(label) }

func (n *Node) SampleCountStrand(label SampleLabel, s Strand) uint16 {
	total := uint16(0)
	for _, b := range n.covs {
		total += b.StrandCov(label, s).Raw
	}
	return total
}

func (n *Node) BXCount(label SampleLabel, s Strand) uint16 { return n.bxData.BXCount(label, s) }

// MinSampleBaseCov returns the minimum, across all base positions, of
// the combined tumor+normal coverage — the bottleneck position that
// limits how confidently this node can be called. bqPass selects
// whether raw or base-quality-passing totals are used.
func (n *Node) MinSampleBaseCov(bqPass bool) uint16 {
	if len(n.covs) == 0 {
		return 0
	}
	min := ^uint16(0)
	for _, b := range n.covs {
		var total uint16
		if bqPass {
			total = b.BQPassTotalCov(Tumor) + b.BQPassTotalCov(Normal)
		} else {
			total = b.RawTotalCov(Tumor) + b.RawTotalCov(Normal)
		}
		if total < min {
			min = total
		}
	}
	return min
}

// LowQualPositions returns the indices of bases whose mean quality is
// below minBQ.
func (n *Node) LowQualPositions(minBQ uint8) []int {
	return n.quals.LowQualPositions(float64(minBQ))
}

// EmplaceEdge inserts an edge into the node's edge set.
func (n *Node) EmplaceEdge(dst NodeIdentifier, kind EdgeKind) { n.edges.EmplaceEdge(dst, kind) }

// EraseEdgeKind removes one (destination, kind) edge.
func (n *Node) EraseEdgeKind(dst NodeIdentifier, kind EdgeKind) { n.edges.EraseEdgeKind(dst, kind) }

// EraseEdge removes every edge to dst, of any kind.
func (n *Node) EraseEdge(dst NodeIdentifier) { n.edges.EraseEdge(dst) }

// ClearEdges empties the node's edge set.
func (n *Node) ClearEdges() { n.edges.ClearEdges() }

// HasSelfLoop reports whether this node has an edge back to itself.
func (n *Node) HasSelfLoop() bool { return n.edges.HasSelfLoop() }

// HasConnection reports whether any edge of any kind points at dst.
func (n *Node) HasConnection(dst NodeIdentifier) bool { return n.edges.HasConnection(dst) }

// NumEdgesDirection counts real edges whose source end matches
// direction.
func (n *Node) NumEdgesDirection(direction Strand) int { return n.edges.NumEdgesDirection(direction) }

// NumEdges returns the count of real (non-sentinel) edges.
func (n *Node) NumEdges() int { return n.edges.NumEdges() }

// NodeNeighbour is one endpoint returned by FindMergeableNeighbours:
// the edge leading to the candidate buddy.
type NodeNeighbour struct {
	Edge Edge
}

// FindMergeableNeighbours returns the (up to two) neighbours that
// satisfy the structural half of the buddy-merge precondition on this
// node's side: no self-edge, and exactly two ordered edges. Sentinel
// edges count toward those two but are never returned, so a chain end
// anchored to the source or sink yields a single neighbour, and a node
// with two real edges plus a sentinel edge yields none. The caller must
// still confirm the k-1 overlap condition via CanMerge before invoking
// MergeBuddy.
func (n *Node) FindMergeableNeighbours() []NodeNeighbour {
	if n.edges.NumSelfEdges() != 0 {
		return nil
	}
	ordered := n.edges.Ordered()
	if len(ordered) != 2 {
		return nil
	}

	var results []NodeNeighbour
	for _, e := range ordered {
		if e.IsMockDestination() {
			continue
		}
		results = append(results, NodeNeighbour{Edge: e})
	}
	return results
}

// CanMerge reports whether buddy can be merged into n in the given
// direction: neither side may be a sentinel, and the k-1 overlap
// condition (accounting for relative orientation) must hold.
func (n *Node) CanMerge(buddy *Node, dir kmer.BuddyPosition, k int) bool {
	if n.IsMockNode() || buddy.IsMockNode() {
		return false
	}
	reverseBuddy := buddy.Orientation() != n.Orientation()
	return kmer.CanMergeKmers(n.mer.Sequence(), buddy.mer.Sequence(), dir, reverseBuddy, k)
}

// MergeBuddy merges everything except edges from buddy into n: the
// sequence and every per-base vector are concatenated/aggregated under
// the chain-compaction geometry of SPEC_FULL.md §4.4. Edges are not
// touched here — the caller (the compactor) rewires them afterwards by
// erasing buddy's incident edges and re-emplacing them on n with the
// edge kind transformed for any reversal of buddy.
func (n *Node) MergeBuddy(buddy *Node, dir kmer.BuddyPosition, k int) {
	reverseBuddy := buddy.Orientation() != n.Orientation()

	// hpData, when one side never saw a linked read, is materialized
	// against that side's own pre-merge length: HPVector.MergeBuddy
	// applies the same k-1 overlap geometry as covs/quals, so the
	// lengths it is handed must match what covs/quals had before this
	// merge, not n.covs.Length() after it already grew.
	nLen, buddyLen := n.covs.Length(), buddy.covs.Length()

	mergedSeq := kmer.MergeSequence(n.mer.Sequence(), buddy.mer.Sequence(), dir, reverseBuddy, k)
	n.mer = kmer.New(mergedSeq)

	n.quals = n.quals.MergeBuddy(buddy.quals, dir, reverseBuddy, k)
	n.covs = n.covs.MergeBuddy(buddy.covs, dir, reverseBuddy, k)
	n.labels = n.labels.MergeBuddy(buddy.labels, dir, reverseBuddy, k)

	if !n.bxData.IsEmpty() || !buddy.bxData.IsEmpty() {
		n.bxData.Merge(&buddy.bxData)
	}

	if !n.hpData.IsEmpty() || !buddy.hpData.IsEmpty() {
		if n.hpData.IsEmpty() {
			n.hpData = NewHPVector(nLen)
		}
		buddyHP := buddy.hpData
		if buddyHP.IsEmpty() {
			buddyHP = NewHPVector(buddyLen)
		}
		n.hpData = n.hpData.MergeBuddy(buddyHP, dir, reverseBuddy, k)
	}
}
