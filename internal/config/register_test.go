package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoundFlagSet(t *testing.T) (*pflag.FlagSet, *viper.Viper) {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := viper.New()
	require.NoError(t, RegisterFlags(flags, v))
	return flags, v
}

func TestLoadYieldsFlagDefaultsWhenNothingIsSet(t *testing.T) {
	_, v := newBoundFlagSet(t)

	p, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Defaults().WindowLength, p.WindowLength)
	assert.Equal(t, Defaults().PctOverlap, p.PctOverlap)
	assert.Equal(t, Defaults().KmerLength, p.KmerLength)
	assert.Equal(t, Defaults().MinBaseQual, p.MinBaseQual)
	assert.Equal(t, Defaults().MaxIndelLength, p.MaxIndelLength)
	assert.Equal(t, Defaults().RegionPad, p.RegionPad)
	assert.Equal(t, Defaults().NumThreads, p.NumThreads)
	assert.Equal(t, "", p.TumorPath)
}

func TestLoadPicksUpOverriddenFlags(t *testing.T) {
	flags, v := newBoundFlagSet(t)

	require.NoError(t, flags.Set("tumor", "tumor.bam"))
	require.NoError(t, flags.Set("window-length", "1000"))
	require.NoError(t, flags.Set("skip-truncated", "true"))

	p, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "tumor.bam", p.TumorPath)
	assert.Equal(t, int64(1000), p.WindowLength)
	assert.True(t, p.SkipTruncated)
}

func TestLoadCollectsRepeatedRegionFlag(t *testing.T) {
	flags, v := newBoundFlagSet(t)

	require.NoError(t, flags.Set("region", "chr1:1-100"))
	require.NoError(t, flags.Set("region", "chr2"))

	p, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"chr1:1-100", "chr2"}, p.Regions)
}
