package alnio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	reads []AlignedRead
	err   error
}

func (f fakeSource) ReadsInRegion(_ string, _, _ int64) ([]AlignedRead, error) {
	return f.reads, f.err
}

func TestCollectReadSetSplitsBySample(t *testing.T) {
	tumor := fakeSource{reads: []AlignedRead{{Name: "t1"}, {Name: "t2"}}}
	normal := fakeSource{reads: []AlignedRead{{Name: "n1"}}}

	set, err := CollectReadSet(tumor, normal, "chr1", 0, 100)
	require.NoError(t, err)
	assert.Len(t, set.Tumor, 2)
	assert.Len(t, set.Normal, 1)
	assert.Equal(t, "n1", set.Normal[0].Name)
}

func TestCollectReadSetPropagatesTumorReadFailure(t *testing.T) {
	tumor := fakeSource{err: errors.New("boom")}
	normal := fakeSource{}

	_, err := CollectReadSet(tumor, normal, "chr1", 0, 100)
	assert.Error(t, err)
}

func TestCollectReadSetPropagatesNormalReadFailure(t *testing.T) {
	tumor := fakeSource{}
	normal := fakeSource{err: errors.New("boom")}

	_, err := CollectReadSet(tumor, normal, "chr1", 0, 100)
	assert.Error(t, err)
}
