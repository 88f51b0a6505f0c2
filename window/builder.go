package window

import (
	"math"
	"sort"

	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/hmmm42/lancetgo/internal/logging"
)

// Builder accumulates input regions (from region strings, a BED file,
// or every reference contig) and slices them into the padded,
// fixed-length, overlap-stepped windows the scheduler consumes.
type Builder struct {
	ref           Reference
	regionPadding int64
	windowLength  int64
	pctOverlap    uint32

	inputRegions []Window
}

// NewBuilder returns a Builder reading sequence and contig metadata
// from ref.
func NewBuilder(ref Reference, regionPadding, windowLength int64, pctOverlap uint32) *Builder {
	return &Builder{ref: ref, regionPadding: regionPadding, windowLength: windowLength, pctOverlap: pctOverlap}
}

// AddSamtoolsRegion parses and stages one --region flag value.
func (b *Builder) AddSamtoolsRegion(regionStr string) error {
	w, err := ParseSamtoolsRegion(regionStr)
	if err != nil {
		return err
	}
	b.inputRegions = append(b.inputRegions, w)
	return nil
}

// AddBedFileRegions parses and stages every region in a BED file.
func (b *Builder) AddBedFileRegions(path string) error {
	ws, err := ParseBedFile(path)
	if err != nil {
		return err
	}
	b.inputRegions = append(b.inputRegions, ws...)
	return nil
}

// AddAllContigs stages one region per reference contig, covering it
// in full. Used when the caller supplied neither --region nor --bed.
func (b *Builder) AddAllContigs() error {
	contigs, err := b.ref.ContigsInfo()
	if err != nil {
		return err
	}
	for _, c := range contigs {
		b.inputRegions = append(b.inputRegions, Window{Chromosome: c.Name, Start0: 0, End0: c.Length})
	}
	return nil
}

// IsEmpty reports whether any input region has been staged yet.
func (b *Builder) IsEmpty() bool { return len(b.inputRegions) == 0 }

// Size returns the number of staged input regions.
func (b *Builder) Size() int { return len(b.inputRegions) }

// StepSize computes the distance consecutive window starts advance
// by, rounded to the nearest multiple of 100 so that overlapping runs
// with slightly different --pct-overlap values still land on
// reproducible boundaries.
func StepSize(pctOverlap uint32, windowLength int64) int64 {
	raw := (float64(100-pctOverlap) / 100.0) * float64(windowLength)
	return int64(math.Round(raw/100.0) * 100.0)
}

// BuildWindows pads, slices, sorts, and indexes every staged input
// region against the reference named in contigIDs. A contig named in
// an input region but absent from contigIDs is a fatal argument
// error. A truncated reference lookup on a sliced window is skipped
// when skipTruncSeqs is set, and otherwise returned as an error.
func (b *Builder) BuildWindows(contigIDs map[string]int, skipTruncSeqs bool) ([]Window, error) {
	if b.IsEmpty() {
		return nil, errs.New(errs.FailedPrecondition, "no input regions provided to build windows")
	}

	var results []Window
	stepSize := StepSize(b.pctOverlap, b.windowLength)

	for _, inRegion := range b.inputRegions {
		if _, ok := contigIDs[inRegion.Chromosome]; !ok {
			return nil, errs.Newf(errs.NotFound, "contig %s is not present in reference", inRegion.Chromosome)
		}

		region, err := b.padWindow(inRegion)
		if err != nil {
			return nil, err
		}

		if region.Length() <= b.windowLength {
			seq, err := b.ref.RegionSequence(region.Chromosome, region.Start0, region.End0)
			if err != nil {
				return nil, err
			}
			region.Sequence = seq
			results = append(results, region)
			continue
		}

		currStart := region.Start0
		maxWindowPos := inRegion.End0

		for currStart < maxWindowPos {
			currEnd := currStart + b.windowLength
			w := Window{Chromosome: region.Chromosome, Start0: currStart, End0: currEnd}

			seq, err := b.ref.RegionSequence(w.Chromosome, w.Start0, w.End0)
			if err != nil {
				if errs.Is(err, errs.FailedPrecondition) && skipTruncSeqs {
					logging.WarnLog("skipping window %s with truncated reference sequence in fasta", w.RegionString())
					currStart += stepSize
					continue
				}
				return nil, err
			}

			w.Sequence = seq
			results = append(results, w)
			currStart += stepSize
		}
	}

	Sort(results, contigIDs)
	return results, nil
}

// padWindow extends w by regionPadding on both ends, clamped to
// [0, contigLength).
func (b *Builder) padWindow(w Window) (Window, error) {
	contigMax, err := b.ref.ContigLength(w.Chromosome)
	if err != nil {
		return Window{}, err
	}

	startUnderflows := w.Start0 < b.regionPadding
	endOverflows := w.End0 >= contigMax || (contigMax-w.End0) < b.regionPadding

	result := w
	if startUnderflows {
		result.Start0 = 0
	} else {
		result.Start0 = w.Start0 - b.regionPadding
	}
	if endOverflows {
		result.End0 = contigMax
	} else {
		result.End0 = w.End0 + b.regionPadding
	}
	return result, nil
}

// Sort orders windows by (contig order, start, end) using contigIDs
// for chromosome order, then assigns each a dense 0..N-1 Index. The
// index counter is a local loop variable, never package-level state,
// so repeated calls never leak state across each other.
func Sort(windows []Window, contigIDs map[string]int) {
	sort.Slice(windows, func(i, j int) bool {
		wi, wj := windows[i], windows[j]
		if wi.Chromosome != wj.Chromosome {
			return contigIDs[wi.Chromosome] < contigIDs[wj.Chromosome]
		}
		if wi.Start0 != wj.Start0 {
			return wi.Start0 < wj.Start0
		}
		return wi.End0 < wj.End0
	})

	for idx := range windows {
		windows[idx].Index = idx
	}
}
