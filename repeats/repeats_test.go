package repeats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDetectsTandemRepeatRun(t *testing.T) {
	repeats := Find("AGAGAG", "AG")

	require.Len(t, repeats, 1)
	r := repeats[0]
	assert.Equal(t, 0, r.QueryStart)
	assert.Equal(t, 0, r.RefStart)
	assert.Equal(t, 2, r.UnitLength)
	assert.Equal(t, 3, r.Count)
	assert.False(t, r.Inverted)
	assert.Equal(t, 6, r.End())
}

func TestFindDetectsInvertedRepeatRun(t *testing.T) {
	repeats := Find("CCTCCT", "AGG")

	require.Len(t, repeats, 1)
	r := repeats[0]
	assert.Equal(t, 0, r.QueryStart)
	assert.Equal(t, 0, r.RefStart)
	assert.Equal(t, 3, r.UnitLength)
	assert.Equal(t, 2, r.Count)
	assert.True(t, r.Inverted)
	assert.Equal(t, 6, r.End())
}

func TestFindReportsSingleCopyWhenNothingRepeats(t *testing.T) {
	repeats := Find("ACACAC", "ACAC")

	require.Len(t, repeats, 2)
	for _, r := range repeats {
		assert.Equal(t, 1, r.Count)
	}
	assert.Equal(t, 0, repeats[0].QueryStart)
	assert.Equal(t, 4, repeats[1].QueryStart)
}

func TestFindReturnsNilOnEmptyInput(t *testing.T) {
	assert.Nil(t, Find("", "AG"))
	assert.Nil(t, Find("AG", ""))
}
