package graphmodel

import "github.com/hmmm42/lancetgo/kmer"

// HPBase is the per-sample, per-haplotype read-support count recorded
// at a single base position.
type HPBase struct {
	bySample [3]map[int]uint16
}

func (h HPBase) isEmpty() bool {
	for _, m := range h.bySample {
		if len(m) != 0 {
			return false
		}
	}
	return true
}

func mergeHPBase(a, b HPBase) HPBase {
	var out HPBase
	for label := 0; label < 3; label++ {
		out.bySample[label] = make(map[int]uint16, len(a.bySample[label])+len(b.bySample[label]))
		for hp, n := range a.bySample[label] {
			out.bySample[label][hp] += n
		}
		for hp, n := range b.bySample[label] {
			out.bySample[label][hp] += n
		}
	}
	return out
}

// HPVector is the per-base haplotype-support vector of a Node. It is
// optional: a Node created from raw reads starts with a nil HPVector,
// and NewHPVector is only called lazily once haplotype-tagged reads
// are seen.
type HPVector []HPBase

// NewHPVector allocates a zeroed vector of the given length. Used both
// for direct construction and to materialize an empty side of a merge
// against the current covs geometry, per DESIGN.md's Open Question
// decision on bxData/hpData merge identity elements.
func NewHPVector(length int) HPVector {
	return make(HPVector, length)
}

// IsEmpty reports whether no haplotype support has been recorded at
// any position.
func (h HPVector) IsEmpty() bool {
	for _, b := range h {
		if !b.isEmpty() {
			return false
		}
	}
	return true
}

// Update records one unit of support for haplotypeID/label at every
// base position flagged true in bqPass.
func (h HPVector) Update(haplotypeID int, label SampleLabel, bqPass []bool) {
	if len(bqPass) != len(h) {
		panic("graphmodel: HPVector Update bqPass length mismatch")
	}
	for i, pass := range bqPass {
		if !pass {
			continue
		}
		if h[i].bySample[label] == nil {
			h[i].bySample[label] = make(map[int]uint16)
		}
		h[i].bySample[label][haplotypeID]++
	}
}

// Count returns the recorded support for haplotypeID/label at pos.
func (h HPVector) Count(pos int, label SampleLabel, haplotypeID int) uint16 {
	return h[pos].bySample[label][haplotypeID]
}

// MergeBuddy combines h with buddy under the chain-compaction
// geometry: the k-1 base overlap is merged by summing per-haplotype
// counts, and the buddy's non-overlapping remainder is
// appended/prepended.
func (h HPVector) MergeBuddy(buddy HPVector, dir kmer.BuddyPosition, reverseBuddy bool, k int) HPVector {
	return mergeSlices(h, buddy, dir, reverseBuddy, k, mergeHPBase)
}
