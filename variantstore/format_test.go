package variantstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinInfoSortsKeysAndHandlesFlags(t *testing.T) {
	assert.Equal(t, "AC=1;SOMATIC", joinInfo(map[string]string{"SOMATIC": "", "AC": "1"}))
}

func TestFormatKeysPutsGTFirst(t *testing.T) {
	keys := formatKeys([]SampleCall{{Sample: "tumor", Format: map[string]string{"AD": "1,2", "GT": "0/1"}}})
	assert.Equal(t, "GT:AD", keys)
}

func TestFormatKeysDefaultsToGTWhenNoSamples(t *testing.T) {
	assert.Equal(t, "GT", formatKeys(nil))
}

func TestFormatValuesFillsMissingWithDot(t *testing.T) {
	assert.Equal(t, "0/1:.", formatValues("GT:AD", map[string]string{"GT": "0/1"}))
}

func TestMissingFormatRendersDotPerKey(t *testing.T) {
	assert.Equal(t, ".:.:.", missingFormat("GT:AD:DP"))
}

func TestVariantLineRendersSampleColumnsInGivenOrder(t *testing.T) {
	v := Variant{
		Chromosome: "chr1", Pos: 42, Ref: "A", Alt: "T",
		Samples: []SampleCall{
			{Sample: "normal", Format: map[string]string{"GT": "0/0"}},
			{Sample: "tumor", Format: map[string]string{"GT": "0/1"}},
		},
	}
	line := v.line([]string{"tumor", "normal"})
	assert.Equal(t, "chr1\t42\t.\tA\tT\t.\t.\t.\tGT\t0/1\t0/0", line)
}
