package variantstore

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/hmmm42/lancetgo/internal/errs"
)

// windowBucket holds one window's accumulated variants behind its own
// mutex, so concurrent AddVariantsForWindow calls for different
// windows never contend with each other.
type windowBucket struct {
	mu       sync.Mutex
	variants []Variant
	flushed  bool
}

// Store is the concurrency-safe, in-memory VariantStore: workers
// append into per-window buckets concurrently, the driver flushes
// buckets in ascending window index. Grounded on the per-window bucket
// shape of `grailbio-bio__pileup.go`'s position-keyed accumulation,
// generalized from per-base pileups to per-window variant lists.
type Store struct {
	sampleOrder []string

	bucketsMu sync.RWMutex
	buckets   map[int]*windowBucket
}

// NewStore returns an empty Store. sampleOrder fixes the FORMAT column
// order written by FlushWindow/FlushAll; it must match the order
// sample names were declared to BuildVcfHeader.
func NewStore(sampleOrder []string) *Store {
	return &Store{
		sampleOrder: sampleOrder,
		buckets:     make(map[int]*windowBucket),
	}
}

func (s *Store) bucket(windowIdx int) *windowBucket {
	s.bucketsMu.RLock()
	b, ok := s.buckets[windowIdx]
	s.bucketsMu.RUnlock()
	if ok {
		return b
	}

	s.bucketsMu.Lock()
	defer s.bucketsMu.Unlock()
	if b, ok = s.buckets[windowIdx]; ok {
		return b
	}
	b = &windowBucket{}
	s.buckets[windowIdx] = b
	return b
}

// AddVariantsForWindow appends variants to windowIdx's bucket.
// Concurrent calls for distinct windowIdx values proceed independently;
// concurrent calls for the same windowIdx are serialized by that
// bucket's own mutex.
func (s *Store) AddVariantsForWindow(windowIdx int, variants ...Variant) error {
	b := s.bucket(windowIdx)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.flushed {
		return errs.Newf(errs.Internal, "window %d: cannot add variants after it was flushed", windowIdx)
	}
	b.variants = append(b.variants, variants...)
	return nil
}

// FlushWindow writes windowIdx's buffered variants, sorted by
// position, to writer and marks the bucket flushed. It returns true
// iff at least one variant was written. Safe to call concurrently with
// AddVariantsForWindow for any other window index.
func (s *Store) FlushWindow(windowIdx int, writer io.Writer, contigIDs map[string]int) (bool, error) {
	b := s.bucket(windowIdx)
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.variants) == 0 {
		b.flushed = true
		return false, nil
	}

	sort.SliceStable(b.variants, func(i, j int) bool {
		return b.variants[i].Pos < b.variants[j].Pos
	})

	bw := bufio.NewWriter(writer)
	for _, v := range b.variants {
		if _, ok := contigIDs[v.Chromosome]; !ok {
			return false, errs.Newf(errs.NotFound, "contig %s is not present in reference", v.Chromosome)
		}
		if _, err := fmt.Fprintln(bw, v.line(s.sampleOrder)); err != nil {
			return false, errs.Wrap(errs.Internal, err, "writing vcf record")
		}
	}
	if err := bw.Flush(); err != nil {
		return false, errs.Wrap(errs.Internal, err, "flushing vcf writer")
	}

	b.flushed = true
	b.variants = nil
	return true, nil
}

// FlushAll writes every window's remaining buffered variants, in
// ascending window index, regardless of whether the driver's ordered
// look-ahead loop reached them. Called once at shutdown so no variant
// is silently dropped if the driver exits early.
func (s *Store) FlushAll(writer io.Writer, contigIDs map[string]int) error {
	s.bucketsMu.RLock()
	indices := make([]int, 0, len(s.buckets))
	for idx := range s.buckets {
		indices = append(indices, idx)
	}
	s.bucketsMu.RUnlock()
	sort.Ints(indices)

	for _, idx := range indices {
		if _, err := s.FlushWindow(idx, writer, contigIDs); err != nil {
			return err
		}
	}
	return nil
}
