package graphmodel

import "github.com/hmmm42/lancetgo/kmer"

// LabelSet is a bitmask of the sample labels observed at one base.
type LabelSet uint8

func labelBit(l SampleLabel) LabelSet { return 1 << uint(l) }

// Has reports whether label is present in the set.
func (s LabelSet) Has(l SampleLabel) bool { return s&labelBit(l) != 0 }

// With returns the set with label added.
func (s LabelSet) With(l SampleLabel) LabelSet { return s | labelBit(l) }

func unionLabelSet(a, b LabelSet) LabelSet { return a | b }

// LabelVector is the per-base sample-label vector of a Node.
type LabelVector []LabelSet

// NewLabelVector allocates a zeroed vector of the given length.
func NewLabelVector(length int) LabelVector {
	return make(LabelVector, length)
}

// Length reports the number of bases this vector covers.
func (l LabelVector) Length() int { return len(l) }

// Push adds label as observed at every base of the node.
func (l LabelVector) Push(label SampleLabel) {
	for i := range l {
		l[i] = l[i].With(label)
	}
}

// HasLabel reports whether any base carries label.
func (l LabelVector) HasLabel(label SampleLabel) bool {
	for _, s := range l {
		if s.Has(label) {
			return true
		}
	}
	return false
}

// IsLabelOnly reports whether every base that carries any label
// carries only label.
func (l LabelVector) IsLabelOnly(label SampleLabel) bool {
	seenAny := false
	for _, s := range l {
		if s == 0 {
			continue
		}
		seenAny = true
		if s != labelBit(label) {
			return false
		}
	}
	return seenAny
}

// LabelRatio returns the fraction of bases that carry label.
func (l LabelVector) LabelRatio(label SampleLabel) float64 {
	if len(l) == 0 {
		return 0
	}
	count := 0
	for _, s := range l {
		if s.Has(label) {
			count++
		}
	}
	return float64(count) / float64(len(l))
}

// FillColor mirrors lancet's graph-visualization convention: nodes
// seen only in the tumor, only in the normal, or in both get distinct
// colors so rendered graphs read at a glance.
func (l LabelVector) FillColor() string {
	switch {
	case l.IsLabelOnly(Tumor):
		return "brown3"
	case l.IsLabelOnly(Normal):
		return "steelblue3"
	case l.HasLabel(Tumor) && l.HasLabel(Normal):
		return "seagreen3"
	default:
		return "gray88"
	}
}

// MergeBuddy combines l with buddy under the chain-compaction
// geometry: the k-1 base overlap is set-unioned, and the buddy's
// non-overlapping remainder is appended/prepended.
func (l LabelVector) MergeBuddy(buddy LabelVector, dir kmer.BuddyPosition, reverseBuddy bool, k int) LabelVector {
	return mergeSlices(l, buddy, dir, reverseBuddy, k, unionLabelSet)
}
