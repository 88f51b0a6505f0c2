package graphmodel

import "github.com/hmmm42/lancetgo/kmer"

// mergeSlices implements the shared "buddy merge" geometry described in
// SPEC_FULL.md §4.4: the k-1 base overlap between a node and its buddy
// is combined element-wise, and the non-overlapping remainder of the
// buddy is appended (BackOfA) or prepended (FrontOfA). b is reversed
// before merging when reverseB is true, so it lines up with a node
// whose k-mer was reverse-complemented during compaction.
func mergeSlices[T any](a, b []T, dir kmer.BuddyPosition, reverseB bool, k int, combine func(T, T) T) []T {
	bb := b
	if reverseB {
		bb = reverseCopy(b)
	}

	overlap := k - 1
	switch dir {
	case kmer.BackOfA:
		overlapA := a[len(a)-overlap:]
		overlapB := bb[:overlap]
		merged := make([]T, overlap)
		for i := range merged {
			merged[i] = combine(overlapA[i], overlapB[i])
		}
		out := make([]T, 0, len(a)+len(bb)-overlap)
		out = append(out, a[:len(a)-overlap]...)
		out = append(out, merged...)
		out = append(out, bb[overlap:]...)
		return out
	case kmer.FrontOfA:
		overlapB := bb[len(bb)-overlap:]
		overlapA := a[:overlap]
		merged := make([]T, overlap)
		for i := range merged {
			merged[i] = combine(overlapB[i], overlapA[i])
		}
		out := make([]T, 0, len(a)+len(bb)-overlap)
		out = append(out, bb[:len(bb)-overlap]...)
		out = append(out, merged...)
		out = append(out, a[overlap:]...)
		return out
	default:
		return a
	}
}

func reverseCopy[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
