package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() Params {
	p := Defaults()
	p.TumorPath = "tumor.bam"
	p.NormalPath = "normal.bam"
	p.ReferencePath = "ref.fa"
	p.OutVcfPath = "out.vcf"
	return p
}

func TestValidateAcceptsDefaultsWithRequiredPathsFilled(t *testing.T) {
	assert.NoError(t, validParams().Validate())
}

func TestValidateRejectsMissingRequiredPaths(t *testing.T) {
	p := validParams()
	p.TumorPath = ""
	err := p.Validate()
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.KindOf(err))
}

func TestValidateRejectsTumorEqualsNormal(t *testing.T) {
	p := validParams()
	p.NormalPath = p.TumorPath
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different files")
}

func TestValidateRejectsEvenKmerLength(t *testing.T) {
	p := validParams()
	p.KmerLength = 10
	err := p.Validate()
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.KindOf(err))
}

func TestValidateRejectsPctOverlapAboveRange(t *testing.T) {
	p := validParams()
	p.PctOverlap = 100
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pct-overlap")
}

func TestValidateRejectsStepSizeRoundingToZero(t *testing.T) {
	p := validParams()
	p.WindowLength = 600
	p.PctOverlap = 99 // StepSize(99, 600) rounds to 0, per the step-size scenario
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step size")
}

func TestValidateRejectsZeroNumThreads(t *testing.T) {
	p := validParams()
	p.NumThreads = 0
	err := p.Validate()
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.KindOf(err))
}

func TestEnsureOutGraphsDirCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graphs")
	p := Params{OutGraphsDir: dir}

	require.NoError(t, p.EnsureOutGraphsDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureOutGraphsDirIsNoopWhenUnset(t *testing.T) {
	assert.NoError(t, Params{}.EnsureOutGraphsDir())
}
