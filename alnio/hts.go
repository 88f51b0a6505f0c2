// Package alnio implements the alignment reader collaborator named
// but not designed by §6: a BAM-backed adapter built on
// github.com/biogo/hts/bam and github.com/biogo/hts/sam, grounded on
// tanghaibao-allhic__anchor.go's bam.NewReader/header-walk/Read-loop
// idiom.
package alnio

import (
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/hmmm42/lancetgo/graphmodel"
	"github.com/hmmm42/lancetgo/internal/errs"
)

// AlignedRead is one alignment record reduced to what the assembler
// needs: enough to seed a node's sequence/quality and enough
// per-base context (graphmodel.ReadInfo) to update coverage, label
// and barcode/haplotype vectors.
type AlignedRead struct {
	Name string
	Pos  int64 // 0-based leftmost reference position
	Seq  string
	Qual []byte
	MapQ byte
	Info graphmodel.ReadInfo
}

// HTSReader opens one BAM file and serves §6's Alignment reader
// contract: report the file's sample name(s), and hand back reads
// overlapping a window for the assembler to fold into its graph.
type HTSReader struct {
	path  string
	label graphmodel.SampleLabel

	f      *os.File
	reader *bam.Reader
}

// NewHTSReader opens path for streaming reads, tagging every read it
// returns with label (Tumor or Normal) so the assembler's per-base
// vectors can tell tumor support from normal support.
func NewHTSReader(path string, label graphmodel.SampleLabel) (*HTSReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.Fatal, err, "opening alignment file")
	}
	r, err := bam.NewReader(f, 0)
	if err != nil {
		f.Close()
		return nil, errs.Wrap(errs.Fatal, err, "reading bam header")
	}
	return &HTSReader{path: path, label: label, f: f, reader: r}, nil
}

// Close releases the underlying file handle.
func (h *HTSReader) Close() error {
	h.reader.Close()
	return h.f.Close()
}

// Clone opens a fresh, independent file handle onto the same path,
// tagged with the same sample label. §5 lets each pool worker hold its
// own handle rather than share one; ReadsInRegion seeks and re-reads
// against h.f with no locking, so two goroutines are never meant to
// call it on the same *HTSReader concurrently — Clone is how a caller
// gets one HTSReader per worker instead.
func (h *HTSReader) Clone() (*HTSReader, error) {
	return NewHTSReader(h.path, h.label)
}

// SampleNames returns every distinct SM value across the file's read
// groups. A well-formed single-sample BAM yields exactly one name;
// §6 treats anything else as the caller's hard-error condition to
// check, not this reader's.
func (h *HTSReader) SampleNames() ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, rg := range h.reader.Header().RGs() {
		sample := rg.Get(sam.Tag{'S', 'M'})
		if sample == "" || seen[sample] {
			continue
		}
		seen[sample] = true
		names = append(names, sample)
	}
	if len(names) == 0 {
		return nil, errs.New(errs.Fatal, "alignment file declares no read groups with a sample name")
	}
	return names, nil
}

// ReadsInRegion streams every primary alignment overlapping
// [start0, end0) on chromosome, tagged with this reader's sample
// label. Supplementary/secondary/unmapped/duplicate records are
// skipped; they would otherwise double-count or misattribute coverage.
func (h *HTSReader) ReadsInRegion(chromosome string, start0, end0 int64) ([]AlignedRead, error) {
	if _, err := h.f.Seek(0, io.SeekStart); err != nil {
		return nil, errs.Wrap(errs.Internal, err, "seeking to start of alignment file")
	}
	reader, err := bam.NewReader(h.f, 0)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, err, "re-opening bam reader")
	}
	defer reader.Close()

	var out []AlignedRead
	for {
		rec, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errs.Wrap(errs.Internal, err, "reading bam record")
		}

		if rec.Ref == nil || rec.Ref.Name() != chromosome {
			continue
		}
		if skipRecord(rec) {
			continue
		}
		pos := int64(rec.Pos)
		end := pos + int64(rec.Len())
		if end <= start0 || pos >= end0 {
			continue
		}

		out = append(out, AlignedRead{
			Name: rec.Name,
			Pos:  pos,
			Seq:  string(rec.Seq.Expand()),
			Qual: rec.Qual,
			MapQ: rec.MapQ,
			Info: graphmodel.ReadInfo{
				Label:       h.label,
				Strand:      readStrand(rec),
				TenxBarcode: barcodeTag(rec),
			},
		})
	}
	return out, nil
}

const (
	flagUnmapped      = sam.Unmapped
	flagSecondary     = sam.Secondary
	flagSupplementary = sam.Supplementary
	flagDuplicate     = sam.Duplicate
)

func skipRecord(rec *sam.Record) bool {
	return rec.Flags&(flagUnmapped|flagSecondary|flagSupplementary|flagDuplicate) != 0
}

func readStrand(rec *sam.Record) graphmodel.Strand {
	if rec.Flags&sam.Reverse != 0 {
		return graphmodel.StrandRev
	}
	return graphmodel.StrandFwd
}

// barcodeTag returns the 10x Genomics "BX" tag value, or "" if absent
// (non-linked-read data).
func barcodeTag(rec *sam.Record) string {
	aux := rec.AuxFields.Get(sam.Tag{'B', 'X'})
	if aux == nil {
		return ""
	}
	return aux.Value().(string)
}
