package config

import (
	"os"

	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/hmmm42/lancetgo/window"
)

// Validate implements the §7 config-validation error kind: every
// failure here is an errs.InvalidArgument, matching
// original_source/run_pipeline.cpp's ValidateParams/exit(EXIT_FAILURE)
// setup-phase abort.
func (p Params) Validate() error {
	switch {
	case p.TumorPath == "":
		return errs.New(errs.InvalidArgument, "--tumor is required")
	case p.NormalPath == "":
		return errs.New(errs.InvalidArgument, "--normal is required")
	case p.ReferencePath == "":
		return errs.New(errs.InvalidArgument, "--reference is required")
	case p.OutVcfPath == "":
		return errs.New(errs.InvalidArgument, "--out-vcf is required")
	case p.TumorPath == p.NormalPath:
		return errs.New(errs.InvalidArgument, "--tumor and --normal must name different files")
	case p.KmerLength < 3 || p.KmerLength%2 == 0:
		return errs.Newf(errs.InvalidArgument, "--kmer-length must be an odd integer >= 3, got %d", p.KmerLength)
	case p.WindowLength < 100:
		return errs.Newf(errs.InvalidArgument, "--window-length must be >= 100, got %d", p.WindowLength)
	case p.PctOverlap > 99:
		return errs.Newf(errs.InvalidArgument, "--pct-overlap must be in [0,99], got %d", p.PctOverlap)
	case window.StepSize(p.PctOverlap, p.WindowLength) <= 0:
		return errs.Newf(errs.InvalidArgument, "--window-length %d and --pct-overlap %d round to a zero step size", p.WindowLength, p.PctOverlap)
	case p.MaxIndelLength < 0:
		return errs.Newf(errs.InvalidArgument, "--max-indel-length must be >= 0, got %d", p.MaxIndelLength)
	case p.RegionPad < 0:
		return errs.Newf(errs.InvalidArgument, "--region-pad must be >= 0, got %d", p.RegionPad)
	case p.NumThreads < 1:
		return errs.Newf(errs.InvalidArgument, "--num-threads must be >= 1, got %d", p.NumThreads)
	case p.MinBaseQual < 0 || p.MinBaseQual > 93:
		return errs.Newf(errs.InvalidArgument, "--min-base-qual must be in [0,93], got %d", p.MinBaseQual)
	}
	return nil
}

// EnsureOutGraphsDir creates OutGraphsDir if one was named, matching
// run_pipeline.cpp's "could not create output graphs dir" fatal check.
// A caller that gets an error here should FatalLog and abort the
// process, per §7's setup-phase propagation policy; it's a no-op when
// OutGraphsDir is unset.
func (p Params) EnsureOutGraphsDir() error {
	if p.OutGraphsDir == "" {
		return nil
	}
	if err := os.MkdirAll(p.OutGraphsDir, 0o755); err != nil {
		return errs.Wrap(errs.Fatal, err, "could not create output graphs dir "+p.OutGraphsDir)
	}
	return nil
}
