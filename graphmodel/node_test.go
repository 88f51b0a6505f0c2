package graphmodel

import (
	"testing"

	"github.com/hmmm42/lancetgo/kmer"
	"github.com/stretchr/testify/assert"
)

func TestNewNodeZeroInitializesVectors(t *testing.T) {
	n := NewNode(kmer.New("ACGTA"))
	assert.Equal(t, 5, n.Length())
	assert.Equal(t, 5, n.Quals().Length())
	assert.Equal(t, 5, n.Covs().Length())
	assert.Equal(t, 5, n.Labels().Length())
	assert.False(t, n.IsMockNode())
	assert.False(t, n.HasBXData())
	assert.False(t, n.HasHPData())
}

func TestMockNodeHasNoSequence(t *testing.T) {
	src := NewMockNode(MockSourceID)
	assert.True(t, src.IsMockNode())
	assert.True(t, src.IsSource())
	assert.Equal(t, 0, src.Length())
}

func TestNodeUpdateCovInfoUsesQualGatedCredit(t *testing.T) {
	n := NewNode(kmer.New("ACGTA"))
	n.UpdateQual([]byte{40, 40, 40, 40, 10})

	ri := ReadInfo{Label: Tumor, Strand: StrandFwd}
	n.UpdateCovInfo(ri, 20, false)

	assert.Equal(t, uint16(1), n.Covs()[0].RawTotalCov(Tumor))
	assert.Equal(t, uint16(1), n.Covs()[0].BQPassTotalCov(Tumor))
	assert.Equal(t, uint16(0), n.Covs()[4].BQPassTotalCov(Tumor))
}

func TestNodeUpdateHPInfoDedupsByBarcode(t *testing.T) {
	n := NewNode(kmer.New("ACGTA"))
	n.UpdateQual([]byte{40, 40, 40, 40, 40})

	ri := ReadInfo{Label: Tumor, Strand: StrandFwd, TenxBarcode: "BX1", HaplotypeID: 1}
	n.UpdateHPInfo(ri, 20)
	n.UpdateHPInfo(ri, 20) // same barcode again, must be a no-op

	assert.Equal(t, uint16(1), n.HPVectorCountForTest(0, Tumor, 1))
	assert.Equal(t, uint16(1), n.BXCount(Tumor, StrandFwd))
}

// HPVectorCountForTest exposes hpData.Count for assertions without
// widening Node's public surface for production callers.
func (n *Node) HPVectorCountForTest(pos int, label SampleLabel, hp int) uint16 {
	if n.hpData == nil {
		return 0
	}
	return n.hpData.Count(pos, label, hp)
}

func TestNodeMinSampleBaseCov(t *testing.T) {
	n := NewNode(kmer.New("ACGTA"))
	n.UpdateQual([]byte{40, 40, 40, 40, 40})

	n.UpdateCovInfo(ReadInfo{Label: Tumor, Strand: StrandFwd}, 20, false)
	// every base was covered by the one read, so the minimum across
	// positions equals the per-base coverage that read contributed.
	assert.Equal(t, uint16(1), n.MinSampleBaseCov(false))

	assert.Equal(t, uint16(0), NewNode(kmer.New("ACGTA")).MinSampleBaseCov(false))
}

func TestNodeFillColorSentinelsAndLabels(t *testing.T) {
	src := NewMockNode(MockSourceID)
	sink := NewMockNode(MockSinkID)
	assert.Equal(t, "cyan3", src.FillColor())
	assert.Equal(t, "yellow2", sink.FillColor())

	n := NewNode(kmer.New("ACGTA"))
	n.UpdateLabel(Tumor)
	assert.Equal(t, "brown3", n.FillColor())
}

func TestFindMergeableNeighboursRequiresExactlyTwoEdges(t *testing.T) {
	n := NewNode(kmer.New("ACGTA"))

	// Zero edges: not mergeable.
	assert.Nil(t, n.FindMergeableNeighbours())

	n.EmplaceEdge(100, FF)
	// One edge: not mergeable (degree-1 chain end).
	assert.Nil(t, n.FindMergeableNeighbours())

	n.EmplaceEdge(200, RF)
	neighbours := n.FindMergeableNeighbours()
	assert.Len(t, neighbours, 2)
}

func TestFindMergeableNeighboursExcludesSelfLoops(t *testing.T) {
	n := NewNode(kmer.New("ACGTA"))
	n.EmplaceEdge(n.Identity(), FF)
	n.EmplaceEdge(100, FF)
	assert.Nil(t, n.FindMergeableNeighbours())
}

func TestCanMergeRejectsSentinelNodes(t *testing.T) {
	n := NewNode(kmer.New("ACGTA"))
	src := NewMockNode(MockSourceID)
	assert.False(t, n.CanMerge(src, kmer.BackOfA, 5))
}

func TestNodeMergeBuddyConcatenatesSequenceAndVectors(t *testing.T) {
	a := NewNode(kmer.New("ACGTA"))
	b := NewNode(kmer.New("CGTAC"))
	a.UpdateLabel(Tumor)
	b.UpdateLabel(Normal)

	require := a.CanMerge(b, kmer.BackOfA, 5)
	assert.True(t, require)

	a.MergeBuddy(b, kmer.BackOfA, 5)
	assert.Equal(t, "ACGTAC", a.Mer().Sequence())
	assert.Equal(t, 6, a.Labels().Length())
	assert.True(t, a.Labels().HasLabel(Tumor))
	assert.True(t, a.Labels().HasLabel(Normal))
}

// TestNodeMergeBuddySizesOneSidedHaplotypeDataToPreMergeLength covers
// the case where only one side of a merge ever saw a linked read:
// hpData must come out the same length as the merged mer/covs, not
// the pre-merge length of whichever side happened to be empty.
func TestNodeMergeBuddySizesOneSidedHaplotypeDataToPreMergeLength(t *testing.T) {
	a := NewNode(kmer.New("ACGTA"))
	b := NewNode(kmer.New("CGTAC"))

	a.UpdateQual([]byte{40, 40, 40, 40, 40})
	a.UpdateHPInfo(ReadInfo{Label: Tumor, Strand: StrandFwd, TenxBarcode: "BX1", HaplotypeID: 1}, 20)
	assert.True(t, a.HasHPData())
	assert.False(t, b.HasHPData())

	a.MergeBuddy(b, kmer.BackOfA, 5)

	assert.Equal(t, a.Covs().Length(), a.Length())
	assert.Equal(t, a.Length(), len(a.hpData))
	assert.Equal(t, uint16(1), a.HPVectorCountForTest(0, Tumor, 1))
}
