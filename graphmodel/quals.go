package graphmodel

import "github.com/hmmm42/lancetgo/kmer"

// QualStat aggregates the base-quality distribution observed at one
// position of a node: how many qualities were pushed, and their sum,
// so the running mean can be recovered without retaining every value.
type QualStat struct {
	Sum   uint64
	Count uint32
}

// Mean returns the average quality pushed at this position, or 0 if
// nothing has been pushed yet.
func (q QualStat) Mean() float64 {
	if q.Count == 0 {
		return 0
	}
	return float64(q.Sum) / float64(q.Count)
}

func sumQualStat(a, b QualStat) QualStat {
	return QualStat{Sum: a.Sum + b.Sum, Count: a.Count + b.Count}
}

// QualVector is the per-base quality-distribution vector of a Node.
type QualVector []QualStat

// NewQualVector allocates a zeroed vector of the given length.
func NewQualVector(length int) QualVector {
	return make(QualVector, length)
}

// Length reports the number of bases this vector covers.
func (q QualVector) Length() int { return len(q) }

// Push records one read's per-base quality scores, aligned to the
// node's bases. The input must have the same length as the vector.
func (q QualVector) Push(quals []byte) {
	if len(quals) != len(q) {
		panic("graphmodel: Push quality length mismatch")
	}
	for i, v := range quals {
		q[i].Sum += uint64(v)
		q[i].Count++
	}
}

// HighQualPositions returns, for each base, whether the mean quality
// at that position is at or above threshold.
func (q QualVector) HighQualPositions(threshold float64) []bool {
	out := make([]bool, len(q))
	for i, s := range q {
		out[i] = s.Mean() >= threshold
	}
	return out
}

// LowQualPositions returns the indices of bases whose mean quality is
// below threshold.
func (q QualVector) LowQualPositions(threshold float64) []int {
	var out []int
	for i, s := range q {
		if s.Mean() < threshold {
			out = append(out, i)
		}
	}
	return out
}

// MergeBuddy combines q with buddy under the chain-compaction geometry:
// the k-1 base overlap is summed, and the buddy's non-overlapping
// remainder is appended/prepended.
func (q QualVector) MergeBuddy(buddy QualVector, dir kmer.BuddyPosition, reverseBuddy bool, k int) QualVector {
	return mergeSlices(q, buddy, dir, reverseBuddy, k, sumQualStat)
}
