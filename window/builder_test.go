package window

import (
	"testing"

	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReference is a minimal in-memory Reference for exercising the
// builder without a real FASTA file.
type fakeReference struct {
	contigs map[string]int64
}

func newFakeReference(contigs map[string]int64) *fakeReference {
	return &fakeReference{contigs: contigs}
}

func (f *fakeReference) ContigsInfo() ([]ContigInfo, error) {
	out := make([]ContigInfo, 0, len(f.contigs))
	for name, length := range f.contigs {
		out = append(out, ContigInfo{Name: name, Length: length})
	}
	return out, nil
}

func (f *fakeReference) ContigLength(chromosome string) (int64, error) {
	length, ok := f.contigs[chromosome]
	if !ok {
		return 0, errs.Newf(errs.NotFound, "contig %s is not present in reference", chromosome)
	}
	return length, nil
}

func (f *fakeReference) RegionSequence(chromosome string, start0, end0 int64) (string, error) {
	length, ok := f.contigs[chromosome]
	if !ok {
		return "", errs.Newf(errs.NotFound, "contig %s is not present in reference", chromosome)
	}
	if end0 > length {
		end0 = length // the reference silently clips a request past the contig end
	}
	if start0 >= end0 {
		return "", nil
	}
	return string(make([]byte, end0-start0)), nil
}

func TestStepSizeScenarios(t *testing.T) {
	assert.Equal(t, int64(600), StepSize(0, 600))
	assert.Equal(t, int64(300), StepSize(50, 600))
	assert.Equal(t, int64(500), StepSize(25, 600))
	assert.Equal(t, int64(0), StepSize(99, 600))
}

func TestWindowSlicingScenario(t *testing.T) {
	ref := newFakeReference(map[string]int64{"chr1": 2500})
	b := NewBuilder(ref, 0, 1000, 0)
	require.NoError(t, b.AddSamtoolsRegion("chr1:1-2500"))

	windows, err := b.BuildWindows(map[string]int{"chr1": 0}, false)
	require.NoError(t, err)
	require.Len(t, windows, 3)

	assert.Equal(t, int64(0), windows[0].Start0)
	assert.Equal(t, int64(1000), windows[0].End0)
	assert.Equal(t, int64(1000), windows[1].Start0)
	assert.Equal(t, int64(2000), windows[1].End0)
	assert.Equal(t, int64(2000), windows[2].Start0)
	assert.Equal(t, int64(3000), windows[2].End0)
	// sequence for the last window is clipped to the contig's actual length.
	assert.Len(t, windows[2].Sequence, 500)
}

func TestWindowIndexIsDenseAndContiguous(t *testing.T) {
	ref := newFakeReference(map[string]int64{"chr1": 2500, "chr2": 1000})
	b := NewBuilder(ref, 0, 1000, 0)
	require.NoError(t, b.AddSamtoolsRegion("chr2:1-1000"))
	require.NoError(t, b.AddSamtoolsRegion("chr1:1-2500"))

	windows, err := b.BuildWindows(map[string]int{"chr1": 0, "chr2": 1}, false)
	require.NoError(t, err)

	for i, w := range windows {
		assert.Equal(t, i, w.Index)
	}
	// chr1 sorts before chr2 by contig order even though chr2 was added first.
	assert.Equal(t, "chr1", windows[0].Chromosome)
	assert.Equal(t, "chr2", windows[len(windows)-1].Chromosome)
}

func TestBuildWindowsRejectsUnknownContig(t *testing.T) {
	ref := newFakeReference(map[string]int64{"chr1": 2500})
	b := NewBuilder(ref, 0, 1000, 0)
	require.NoError(t, b.AddSamtoolsRegion("chrZ:1-100"))

	_, err := b.BuildWindows(map[string]int{"chr1": 0}, false)
	assert.True(t, errs.Is(err, errs.NotFound))
}

func TestBuildWindowsRequiresAtLeastOneRegion(t *testing.T) {
	ref := newFakeReference(map[string]int64{"chr1": 2500})
	b := NewBuilder(ref, 0, 1000, 0)

	_, err := b.BuildWindows(map[string]int{"chr1": 0}, false)
	assert.True(t, errs.Is(err, errs.FailedPrecondition))
}

func TestPadWindowClampsToContigBounds(t *testing.T) {
	ref := newFakeReference(map[string]int64{"chr1": 1000})
	b := NewBuilder(ref, 50, 1000, 0)
	require.NoError(t, b.AddSamtoolsRegion("chr1:1-1000")) // spans the whole contig already

	windows, err := b.BuildWindows(map[string]int{"chr1": 0}, false)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, int64(0), windows[0].Start0)
	assert.Equal(t, int64(1000), windows[0].End0)
}

func TestAddAllContigsStagesOneRegionPerContig(t *testing.T) {
	ref := newFakeReference(map[string]int64{"chr1": 500, "chr2": 800})
	b := NewBuilder(ref, 0, 1000, 0)
	require.NoError(t, b.AddAllContigs())
	assert.Equal(t, 2, b.Size())
}
