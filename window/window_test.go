package window

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSamtoolsRegionScenarios(t *testing.T) {
	w, err := ParseSamtoolsRegion("chr1:100-200")
	require.NoError(t, err)
	assert.Equal(t, Window{Chromosome: "chr1", Start0: 99, End0: 199}, w)

	w, err = ParseSamtoolsRegion("chr1:50")
	require.NoError(t, err)
	assert.Equal(t, "chr1", w.Chromosome)
	assert.Equal(t, int64(49), w.Start0)
	assert.Equal(t, int64(math.MaxInt64), w.End0)

	w, err = ParseSamtoolsRegion("chrX")
	require.NoError(t, err)
	assert.Equal(t, Window{Chromosome: "chrX", Start0: 0, End0: math.MaxInt64}, w)

	_, err = ParseSamtoolsRegion(":")
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestParseSamtoolsRegionTooManyTokens(t *testing.T) {
	_, err := ParseSamtoolsRegion("chr1:1-2-3")
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestWindowRegionString(t *testing.T) {
	w := Window{Chromosome: "chr1", Start0: 99, End0: 199}
	assert.Equal(t, "chr1:100-199", w.RegionString())
}

func TestParseBedFileSkipsBlankLinesAndParsesColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.bed")
	content := "chr1\t0\t100\n\nchr2\t200\t300\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	windows, err := ParseBedFile(path)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, Window{Chromosome: "chr1", Start0: 0, End0: 100}, windows[0])
	assert.Equal(t, Window{Chromosome: "chr2", Start0: 200, End0: 300}, windows[1])
}

func TestParseBedFileRejectsWrongColumnCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.bed")
	require.NoError(t, os.WriteFile(path, []byte("chr1\t0\n"), 0o644))

	_, err := ParseBedFile(path)
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestParseBedFileRejectsNonIntegerColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.bed")
	require.NoError(t, os.WriteFile(path, []byte("chr1\tabc\t100\n"), 0o644))

	_, err := ParseBedFile(path)
	assert.True(t, errs.Is(err, errs.Internal))
}
