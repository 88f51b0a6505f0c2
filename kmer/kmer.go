// Package kmer implements the canonical, fixed-length nucleotide word
// used as the vertex key of the colored de Bruijn graph.
package kmer

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Orientation records which of a sequence or its reverse complement was
// chosen as the canonical form.
type Orientation uint8

const (
	// Forward means the canonical form equals the original sequence.
	Forward Orientation = iota
	// Reverse means the canonical form is the reverse complement of the
	// original sequence.
	Reverse
)

func (o Orientation) String() string {
	if o == Reverse {
		return "Reverse"
	}
	return "Forward"
}

// ID is the stable 64-bit identity of a canonical k-mer.
type ID uint64

// BuddyPosition names which end of a node a mergeable neighbour sits at.
type BuddyPosition uint8

const (
	// FrontOfA means the buddy's suffix overlaps A's prefix.
	FrontOfA BuddyPosition = iota
	// BackOfA means A's suffix overlaps the buddy's prefix.
	BackOfA
)

// Kmer is a fixed-length string over {A,C,G,T}, stored in canonical
// orientation: the lexicographically smaller of the sequence and its
// reverse complement.
type Kmer struct {
	canonical   string
	orientation Orientation
}

// New canonicalizes seq and returns the Kmer wrapping it.
func New(seq string) Kmer {
	canon, orient := Canonicalize(seq)
	return Kmer{canonical: canon, orientation: orient}
}

// Canonicalize returns the lexicographically smaller of s and its
// reverse complement, plus the orientation tag recording which one was
// chosen.
func Canonicalize(s string) (string, Orientation) {
	rc := ReverseComplement(s)
	if rc < s {
		return rc, Reverse
	}
	return s, Forward
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Any base other than A, C, G, T or N maps to 'N'.
func ReverseComplement(seq string) string {
	complement := map[byte]byte{
		'A': 'T', 'T': 'A',
		'C': 'G', 'G': 'C',
		'N': 'N',
	}
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		base := seq[n-1-i]
		if comp, ok := complement[base]; ok {
			out[i] = comp
		} else {
			out[i] = 'N'
		}
	}
	return string(out)
}

// Sequence returns the canonical form of the k-mer.
func (k Kmer) Sequence() string { return k.canonical }

// Orientation reports whether the canonical form equals the original
// sequence (Forward) or its reverse complement (Reverse).
func (k Kmer) Orientation() Orientation { return k.orientation }

// Length returns the number of bases in the k-mer.
func (k Kmer) Length() int { return len(k.canonical) }

// ID returns a stable hash of the canonical form. Two Kmers built from
// a sequence and its reverse complement always produce the same ID,
// since they share a canonical form.
func (k Kmer) ID() ID {
	return ID(xxhash.Sum64String(k.canonical))
}

// Equal reports whether two Kmers have the same canonical form.
func (k Kmer) Equal(other Kmer) bool { return k.canonical == other.canonical }

// CanMergeKmers reports whether the k-1 suffix (or prefix) of one
// k-mer equals the k-1 prefix (or suffix) of the other, taking
// reverse-complementation of b into account when reverseB is true.
//
// position == FrontOfA means b's overlap sits before a (b's suffix
// equals a's prefix); position == BackOfA means b's overlap sits after
// a (a's suffix equals b's prefix).
func CanMergeKmers(a, b string, position BuddyPosition, reverseB bool, k int) bool {
	if len(a) < k-1 || len(b) < k-1 {
		return false
	}
	bSeq := b
	if reverseB {
		bSeq = ReverseComplement(b)
	}

	switch position {
	case FrontOfA:
		// b's suffix (k-1 bases) must equal a's prefix (k-1 bases).
		return bSeq[len(bSeq)-(k-1):] == a[:k-1]
	case BackOfA:
		// a's suffix (k-1 bases) must equal b's prefix (k-1 bases).
		return a[len(a)-(k-1):] == bSeq[:k-1]
	default:
		return false
	}
}

// MergeSequence concatenates b onto a at the end indicated by
// position, reverse-complementing b first when reverseB is true, and
// dropping the k-1 base overlap. The result has length
// len(a)+len(b)-(k-1).
func MergeSequence(a, b string, position BuddyPosition, reverseB bool, k int) string {
	bSeq := b
	if reverseB {
		bSeq = ReverseComplement(b)
	}

	var sb strings.Builder
	sb.Grow(len(a) + len(bSeq) - (k - 1))
	switch position {
	case FrontOfA:
		sb.WriteString(bSeq[:len(bSeq)-(k-1)])
		sb.WriteString(a)
	case BackOfA:
		sb.WriteString(a)
		sb.WriteString(bSeq[k-1:])
	}
	return sb.String()
}
