// Package refio implements the reference-genome reader collaborator
// named but not designed by §6: a FASTA-backed adapter satisfying
// window.Reference, built on github.com/biogo/hts/fai the same way
// tanghaibao-allhic__anchor.go opens alignment files through biogo/hts.
package refio

import (
	"io"
	"os"
	"sort"

	"github.com/biogo/hts/fai"
	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/hmmm42/lancetgo/window"
)

// FastaReader reads reference sequence and contig metadata from an
// indexed FASTA file (a ".fa"/".fasta" with a sibling ".fai"), backed
// by biogo/hts/fai's random-access index. It implements
// window.Reference.
type FastaReader struct {
	raw   *os.File
	file  *fai.File
	index fai.Index
}

// NewFastaReader opens path and its ".fai" index (created alongside it
// with samtools faidx, or by fai.CreateIndex if the index is missing).
func NewFastaReader(path string) (*FastaReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.Fatal, err, "opening reference fasta")
	}

	idx, err := readOrBuildIndex(path, f)
	if err != nil {
		f.Close()
		return nil, err
	}

	faiFile := fai.NewFile(f, idx)
	return &FastaReader{raw: f, file: faiFile, index: idx}, nil
}

func readOrBuildIndex(path string, f *os.File) (fai.Index, error) {
	idxFile, err := os.Open(path + ".fai")
	if err == nil {
		defer idxFile.Close()
		idx, err := fai.ReadFrom(idxFile)
		if err != nil {
			return nil, errs.Wrap(errs.Fatal, err, "reading fai index")
		}
		return idx, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errs.Wrap(errs.Fatal, err, "seeking reference fasta")
	}
	idx, err := fai.NewIndex(f)
	if err != nil {
		return nil, errs.Wrap(errs.Fatal, err, "building fai index from reference fasta")
	}
	return idx, nil
}

// Close releases the underlying file handle.
func (r *FastaReader) Close() error {
	return r.raw.Close()
}

// ContigsInfo lists every contig in the index, in file order (by each
// record's byte offset in the FASTA).
func (r *FastaReader) ContigsInfo() ([]window.ContigInfo, error) {
	records := make([]fai.Record, 0, len(r.index))
	for _, rec := range r.index {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Start < records[j].Start })

	out := make([]window.ContigInfo, 0, len(records))
	for _, rec := range records {
		out = append(out, window.ContigInfo{Name: rec.Name, Length: int64(rec.Length)})
	}
	return out, nil
}

// ContigLength reports chromosome's length, or NotFound if it's absent
// from the index.
func (r *FastaReader) ContigLength(chromosome string) (int64, error) {
	for _, rec := range r.index {
		if rec.Name == chromosome {
			return int64(rec.Length), nil
		}
	}
	return 0, errs.Newf(errs.NotFound, "contig %s is not present in reference", chromosome)
}

// RegionSequence returns the bases in [start0, end0) on chromosome. A
// request extending past the contig's length is a FailedPrecondition
// (truncated) error, per §7's taxonomy, so callers like window.Builder
// can decide whether to skip or abort.
func (r *FastaReader) RegionSequence(chromosome string, start0, end0 int64) (string, error) {
	length, err := r.ContigLength(chromosome)
	if err != nil {
		return "", err
	}
	if err := checkRegionBounds(chromosome, start0, end0, length); err != nil {
		return "", err
	}
	if start0 >= end0 {
		return "", nil
	}

	region, err := r.file.SeqRange(chromosome, int(start0), int(end0))
	if err != nil {
		return "", errs.Wrap(errs.Internal, err, "reading reference region")
	}
	bases, err := io.ReadAll(region)
	if err != nil {
		return "", errs.Wrap(errs.Internal, err, "reading reference region bytes")
	}
	return string(bases), nil
}

// checkRegionBounds reports a FailedPrecondition error iff end0 runs
// past contigLength, the condition window.Builder's skipTruncSeqs
// branch watches for.
func checkRegionBounds(chromosome string, start0, end0, contigLength int64) error {
	if end0 > contigLength {
		return errs.Newf(errs.FailedPrecondition,
			"requested region %s:%d-%d extends past contig length %d", chromosome, start0, end0, contigLength)
	}
	return nil
}
