package graphmodel

import "github.com/hmmm42/lancetgo/kmer"

// StrandCov holds the raw and base-quality-passing coverage totals for
// one strand at one base.
type StrandCov struct {
	Raw    uint16
	BQPass uint16
}

func sumStrandCov(a, b StrandCov) StrandCov {
	return StrandCov{Raw: a.Raw + b.Raw, BQPass: a.BQPass + b.BQPass}
}

// sampleCovs indexes coverage by Strand for a single sample.
type sampleCovs [2]StrandCov // [StrandFwd, StrandRev]

// BaseCoverage is the per-sample, per-strand coverage recorded at a
// single base position.
type BaseCoverage struct {
	bySample [3]sampleCovs // indexed by SampleLabel
}

// RawTotalCov returns the raw coverage total (both strands) for label.
func (b BaseCoverage) RawTotalCov(label SampleLabel) uint16 {
	s := b.bySample[label]
	return s[StrandFwd].Raw + s[StrandRev].Raw
}

// BQPassTotalCov returns the base-quality-passing coverage total (both
// strands) for label.
func (b BaseCoverage) BQPassTotalCov(label SampleLabel) uint16 {
	s := b.bySample[label]
	return s[StrandFwd].BQPass + s[StrandRev].BQPass
}

// StrandCov returns the coverage recorded for label on strand s.
func (b BaseCoverage) StrandCov(label SampleLabel, s Strand) StrandCov {
	return b.bySample[label][s]
}

func sumBaseCoverage(a, b BaseCoverage) BaseCoverage {
	var out BaseCoverage
	for label := 0; label < 3; label++ {
		out.bySample[label][StrandFwd] = sumStrandCov(a.bySample[label][StrandFwd], b.bySample[label][StrandFwd])
		out.bySample[label][StrandRev] = sumStrandCov(a.bySample[label][StrandRev], b.bySample[label][StrandRev])
	}
	return out
}

// CovVector is the per-base coverage vector of a Node.
type CovVector []BaseCoverage

// NewCovVector allocates a zeroed vector of the given length.
func NewCovVector(length int) CovVector {
	return make(CovVector, length)
}

// Length reports the number of bases this vector covers.
func (c CovVector) Length() int { return len(c) }

// Update increments coverage for label/strand at every base of the
// node: raw coverage always, and base-quality-passing coverage only
// where bqPass is true. credit scales the increment — 1 for a normal
// read, or the read's barcode count in linked-read mode, so that
// barcode-duplicated reads do not inflate support past one vote per
// molecule.
func (c CovVector) Update(label SampleLabel, s Strand, bqPass []bool, credit uint16) {
	if len(bqPass) != len(c) {
		panic("graphmodel: Update bqPass length mismatch")
	}
	if credit == 0 {
		credit = 1
	}
	for i := range c {
		sc := &c[i].bySample[label][s]
		sc.Raw += credit
		if bqPass[i] {
			sc.BQPass += credit
		}
	}
}

// UpdateAt increments raw coverage for label/strand at a single base
// position, used when crediting an already-known haplotype assignment
// rather than a fresh read.
func (c CovVector) UpdateAt(label SampleLabel, s Strand, pos int) {
	c[pos].bySample[label][s].Raw++
}

// TotalCov sums raw coverage for label across the whole node.
func (c CovVector) TotalCov(label SampleLabel) uint16 {
	var total uint16
	for _, b := range c {
		total += b.RawTotalCov(label)
	}
	return total
}

// MergeBuddy combines c with buddy under the chain-compaction
// geometry: the k-1 base overlap is summed per sample/strand, and the
// buddy's non-overlapping remainder is appended/prepended.
func (c CovVector) MergeBuddy(buddy CovVector, dir kmer.BuddyPosition, reverseBuddy bool, k int) CovVector {
	return mergeSlices(c, buddy, dir, reverseBuddy, k, sumBaseCoverage)
}
