// Package window implements the reference window job type and the
// region/BED parsing and slicing that build a sorted, densely indexed
// list of them (SPEC_FULL.md §4.6).
package window

import (
	"fmt"
	"math"

	"github.com/hmmm42/lancetgo/internal/errs"
)

// Window is one reference interval assigned to a worker: a chromosome
// name, a 0-based half-open [Start0, End0) range, the reference
// sequence for that padded range, and a dense monotone Index assigned
// by Sort.
type Window struct {
	Chromosome string
	Start0     int64
	End0       int64
	Sequence   string
	Index      int
}

// Length returns the window's span in bases.
func (w Window) Length() int64 { return w.End0 - w.Start0 }

// RegionString renders the window the way samtools-style 1-based
// region strings would, for log lines and VCF region filters.
func (w Window) RegionString() string {
	return fmt.Sprintf("%s:%d-%d", w.Chromosome, w.Start0+1, w.End0)
}

// ContigInfo names a reference contig and its length, as reported by
// a Reference.
type ContigInfo struct {
	Name   string
	Length int64
}

// Reference is the subset of the reference-reader contract the window
// builder needs: contig metadata and region sequence lookup. It is
// satisfied by refio.FastaReader; defined here, at the point of use,
// rather than in refio, per Go convention.
type Reference interface {
	ContigsInfo() ([]ContigInfo, error)
	ContigLength(chromosome string) (int64, error)
	RegionSequence(chromosome string, start0, end0 int64) (string, error)
}

// splitRegionTokens splits s on every ':' or '-', the way
// absl::StrSplit(s, ByAnyChar(":-")) does in the original samtools
// region parser: empty tokens are kept, not skipped, so a bare ":"
// yields two empty strings rather than none.
func splitRegionTokens(s string) []string {
	tokens := make([]string, 0, 3)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ':' || s[i] == '-' {
			tokens = append(tokens, s[start:i])
			start = i + 1
		}
	}
	return append(tokens, s[start:])
}

// ParseSamtoolsRegion parses a samtools-style region string: "name",
// "name:start", or "name:start-end". Start and end each have one
// subtracted (start is floored at 0), so "chr1:100-200" yields Start0
// 99 and End0 199. A missing end defaults to
// the largest representable position, to be clamped against the
// contig length by the caller.
func ParseSamtoolsRegion(s string) (Window, error) {
	tokens := splitRegionTokens(s)
	if len(tokens) == 0 || len(tokens) > 3 {
		return Window{}, errs.Newf(errs.InvalidArgument, "invalid samtools region string: %s", s)
	}

	chromosome := tokens[0]
	if chromosome == "" {
		return Window{}, errs.Newf(errs.InvalidArgument, "invalid samtools region string: %s", s)
	}

	start := int64(0)
	end := int64(math.MaxInt64)

	if len(tokens) >= 2 {
		start = parsePositionOrZero(tokens[1]) - 1
		if start < 0 {
			start = 0
		}
	}
	if len(tokens) == 3 {
		end = parsePositionOrZero(tokens[2]) - 1
	}

	return Window{Chromosome: chromosome, Start0: start, End0: end}, nil
}

// parsePositionOrZero mirrors strtoull's behavior on a malformed or
// empty numeric token: it parses as many leading digits as it can and
// returns 0 for the rest, since the samtools region grammar treats an
// absent or malformed number as "unspecified", not as a parse failure.
func parsePositionOrZero(s string) int64 {
	var v int64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		v = v*10 + int64(s[i]-'0')
	}
	return v
}
