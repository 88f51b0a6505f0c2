// Package assemble implements the §6 Assembler contract named but not
// designed by spec.md: the per-window unit of work a schedule.Pool
// worker runs. MicroAssembler is a reference implementation real
// enough to exercise graphmodel end to end — it folds a window's tumor
// and normal reads into one colored de Bruijn graph, compacts it, and
// records one placeholder variant per surviving tumor-only node. Path
// enumeration, reference realignment and somatic variant calling
// proper are named but not designed here, per §1's explicit scope
// boundary; a real caller would replace candidateVariants, not the
// graph-build/compact steps.
package assemble

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/hmmm42/lancetgo/alnio"
	"github.com/hmmm42/lancetgo/graphmodel"
	"github.com/hmmm42/lancetgo/internal/logging"
	"github.com/hmmm42/lancetgo/kmer"
	"github.com/hmmm42/lancetgo/repeats"
	"github.com/hmmm42/lancetgo/schedule"
	"github.com/hmmm42/lancetgo/variantstore"
	"github.com/hmmm42/lancetgo/window"
)

// MicroAssembler folds every tumor and normal read overlapping a
// window into one graph, compacts it, and flags nodes carrying tumor
// coverage only as candidates.
type MicroAssembler struct {
	Tumor  alnio.Source
	Normal alnio.Source

	KmerLength       int
	MinBaseQual      uint8
	IsLinkedReadMode bool
}

// NewMicroAssembler returns an assembler reading from tumor/normal and
// folding reads into kmerLength-mers.
func NewMicroAssembler(tumor, normal alnio.Source, kmerLength int, minBaseQual uint8, isLinkedReadMode bool) *MicroAssembler {
	return &MicroAssembler{
		Tumor:            tumor,
		Normal:           normal,
		KmerLength:       kmerLength,
		MinBaseQual:      minBaseQual,
		IsLinkedReadMode: isLinkedReadMode,
	}
}

// cloneableSource is an alnio.Source that can hand back an independent
// copy of itself holding its own file handle, e.g. *alnio.HTSReader.
type cloneableSource interface {
	alnio.Source
	Clone() (*alnio.HTSReader, error)
}

// NewMicroAssemblerFactory returns a schedule.NewAssembler that builds
// one MicroAssembler per call, each wrapping its own clone of tumor and
// normal rather than the shared handles passed in — satisfying §4.5's
// "each worker owns an assembler instance" and §5's "each worker may
// hold its own handle" requirements for an Assembler, like
// MicroAssembler, backed by a seek-and-reread reader that is unsafe to
// share across goroutines.
func NewMicroAssemblerFactory(tumor, normal cloneableSource, kmerLength int, minBaseQual uint8, isLinkedReadMode bool) schedule.NewAssembler {
	return func() (schedule.Assembler, error) {
		tumorClone, err := tumor.Clone()
		if err != nil {
			return nil, err
		}
		normalClone, err := normal.Clone()
		if err != nil {
			tumorClone.Close()
			return nil, err
		}
		return NewMicroAssembler(tumorClone, normalClone, kmerLength, minBaseQual, isLinkedReadMode), nil
	}
}

// Close releases Tumor and Normal if they hold their own handle (e.g.
// a per-worker alnio.HTSReader built by NewMicroAssemblerFactory).
// schedule.Pool calls this when a worker holding this instance exits.
func (a *MicroAssembler) Close() error {
	var firstErr error
	for _, src := range []alnio.Source{a.Tumor, a.Normal} {
		if closer, ok := src.(io.Closer); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Process implements schedule.Assembler. Per §7's propagation policy,
// a read-source failure is logged and the window is marked done with
// nothing recorded — Process itself returns an error only for
// something a caller must treat as fatal, which this reference
// implementation never produces; ctx carries no cooperative
// cancellation point inside a window, per §5's scheduling model.
func (a *MicroAssembler) Process(_ context.Context, w window.Window, store schedule.VariantAdder) (schedule.CompletionRecord, error) {
	start := time.Now()

	reads, err := alnio.CollectReadSet(a.Tumor, a.Normal, w.Chromosome, w.Start0, w.End0)
	if err != nil {
		logging.WarnLog("assemble: window %s: reading alignments: %v (skipped)", w.RegionString(), err)
		return schedule.CompletionRecord{WindowIdx: w.Index, Runtime: time.Since(start)}, nil
	}

	table := graphmodel.NewTable()
	a.foldReads(table, reads.Tumor)
	a.foldReads(table, reads.Normal)
	graphmodel.Compact(table, a.KmerLength)

	if variants := candidateVariants(table, w); len(variants) > 0 {
		if err := store.AddVariantsForWindow(w.Index, variants...); err != nil {
			logging.WarnLog("assemble: window %s: recording variants: %v", w.RegionString(), err)
		}
	}

	return schedule.CompletionRecord{WindowIdx: w.Index, Runtime: time.Since(start)}, nil
}

func (a *MicroAssembler) foldReads(table *graphmodel.Table, reads []alnio.AlignedRead) {
	for _, read := range reads {
		a.foldRead(table, read)
	}
}

// foldRead inserts every KmerLength-mer of read into table, updating
// its annotation vectors and wiring a forward/reciprocal edge to the
// k-mer immediately before it in read order. The read's first and last
// k-mer are anchored to the source/sink sentinels the same way
// buildLinearChain wires a chain in graphmodel's compactor tests — a
// real unbranching run of k-mers only collapses into a single node
// once both its interior links and its two endpoints bring every node
// on the path to edge-degree 2.
func (a *MicroAssembler) foldRead(table *graphmodel.Table, read alnio.AlignedRead) {
	k := a.KmerLength
	if len(read.Seq) < k {
		return
	}

	var prev *graphmodel.Node
	var prevOrientation kmer.Orientation

	for pos := 0; pos+k <= len(read.Seq); pos++ {
		km := kmer.New(read.Seq[pos : pos+k])
		node := table.GetOrCreate(km)

		node.UpdateQual(alignQualsToCanonical(read.Qual[pos:pos+k], km.Orientation()))
		node.UpdateLabel(read.Info.Label)
		if a.IsLinkedReadMode {
			node.UpdateHPInfo(read.Info, a.MinBaseQual)
		}
		node.UpdateCovInfo(read.Info, a.MinBaseQual, a.IsLinkedReadMode)

		if prev != nil {
			kind := graphmodel.MakeEdgeKind(orientationToStrand(prevOrientation), orientationToStrand(km.Orientation()))
			prev.EmplaceEdge(node.Identity(), kind)
			node.EmplaceEdge(prev.Identity(), kind.Reversed())
		} else {
			node.EmplaceEdge(graphmodel.MockSourceID, graphmodel.FF)
			table.Get(graphmodel.MockSourceID).EmplaceEdge(node.Identity(), graphmodel.RR)
		}

		prev = node
		prevOrientation = km.Orientation()
	}

	prev.EmplaceEdge(graphmodel.MockSinkID, graphmodel.FF)
	table.Get(graphmodel.MockSinkID).EmplaceEdge(prev.Identity(), graphmodel.RR)
}

func alignQualsToCanonical(quals []byte, o kmer.Orientation) []byte {
	if o != kmer.Reverse {
		return quals
	}
	out := make([]byte, len(quals))
	for i, q := range quals {
		out[len(quals)-1-i] = q
	}
	return out
}

func orientationToStrand(o kmer.Orientation) graphmodel.Strand {
	if o == kmer.Reverse {
		return graphmodel.StrandRev
	}
	return graphmodel.StrandFwd
}

// candidateVariants returns one placeholder Variant per surviving,
// non-sentinel node whose coverage is tumor-only: a private k-mer is
// the cheapest signal a real somatic caller would investigate first,
// but turning it into an actual call needs path enumeration and
// reference realignment, which this reference implementation does not
// do (§1). Pos is pinned to the window's start since a compacted node
// no longer carries a single reference coordinate without that
// realignment step.
func candidateVariants(table *graphmodel.Table, w window.Window) []variantstore.Variant {
	var out []variantstore.Variant
	for _, id := range table.Identities() {
		node := table.Get(id)
		if node == nil || node.IsMockNode() || !node.IsLabelOnly(graphmodel.Tumor) {
			continue
		}

		seq := node.Mer().Sequence()
		ref := "N"
		if len(seq) > 0 {
			ref = seq[:1]
		}

		info := map[string]string{
			"NODELEN":   strconv.Itoa(node.Length()),
			"TUMORCOV":  strconv.Itoa(int(node.SampleCount(graphmodel.Tumor))),
			"CANDIDATE": "",
		}
		if isLowComplexity(seq, w.Sequence) {
			info["LOWCOMPLEXITY"] = ""
		}

		out = append(out, variantstore.Variant{
			Chromosome: w.Chromosome,
			Pos:        w.Start0 + 1,
			Ref:        ref,
			Alt:        seq,
			Filter:     "PASS",
			Info:       info,
		})
	}
	return out
}

// isLowComplexity reports whether seq looks like a repeat expansion or
// inverted duplication of the window's own reference rather than a
// private k-mer worth investigating: a node sequence made of two or
// more consecutive copies of a unit already present in the reference,
// in either orientation.
func isLowComplexity(seq, refSeq string) bool {
	for _, r := range repeats.Find(seq, refSeq) {
		if r.Count >= 2 {
			return true
		}
	}
	return false
}
