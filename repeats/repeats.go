package repeats

import (
	"strings"

	"github.com/hmmm42/lancetgo/kmer"
)

// Repeat is one maximal run of a repeated unit found in a query
// sequence, confirmed against a reference sequence in either
// orientation.
type Repeat struct {
	// QueryStart is the 0-based offset into query where the run begins.
	QueryStart int
	// RefStart is the offset in ref of the unit's first occurrence; for
	// an inverted match it is the offset of the unit's reverse
	// complement.
	RefStart int
	// UnitLength is the length of one copy of the repeated unit.
	UnitLength int
	// Count is how many consecutive copies of the unit appear in query.
	Count int
	// Inverted reports whether the unit matched ref as its reverse
	// complement rather than directly.
	Inverted bool
}

// End returns the offset one past the run's last base in query.
func (r Repeat) End() int { return r.QueryStart + r.UnitLength*r.Count }

// Find scans query for maximal runs of a unit that repeats
// consecutively, where each unit is confirmed to occur somewhere in
// ref (forward or reverse-complement). Grounded on the teacher's
// analyzeDuplicates: ref plays the role its "ref" parameter did there
// (the vocabulary of known units, indexed once per orientation), query
// plays the role of its "query" (the sequence scanned for repetition).
// A caller comparing an assembled contig's sequence against its
// window's own reference sequence uses this to tell a real event apart
// from a repeat expansion or inverted duplication of existing
// reference content.
func Find(query, ref string) []Repeat {
	if len(query) == 0 || len(ref) == 0 {
		return nil
	}

	forward := buildSuffixAutomaton(ref)
	invertedRef := kmer.ReverseComplement(ref)
	inverted := buildSuffixAutomaton(invertedRef)

	type unitMatch struct {
		length   int
		inverted bool
	}
	matches := make([]unitMatch, len(query))
	for pos := range query {
		fwdLen := forward.longestMatch(query, pos)
		invLen := inverted.longestMatch(query, pos)
		isInverted := invLen > fwdLen
		best := fwdLen
		if isInverted {
			best = invLen
		}
		matches[pos] = unitMatch{length: best, inverted: isInverted}
	}

	var out []Repeat
	pos := 0
	for pos < len(query) {
		m := matches[pos]
		if m.length == 0 {
			pos++
			continue
		}

		unitLength := m.length
		unit := query[pos : pos+unitLength]

		count := 1
		next := pos + unitLength
		for next+unitLength <= len(query) &&
			query[next:next+unitLength] == unit &&
			matches[next].length >= unitLength &&
			matches[next].inverted == m.inverted {
			count++
			next += unitLength
		}

		refUnit := unit
		if m.inverted {
			refUnit = kmer.ReverseComplement(unit)
		}
		refStart := strings.Index(ref, refUnit)

		out = append(out, Repeat{
			QueryStart: pos,
			RefStart:   refStart,
			UnitLength: unitLength,
			Count:      count,
			Inverted:   m.inverted,
		})
		pos = next
	}
	return out
}
