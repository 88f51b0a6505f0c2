package config

import (
	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RegisterFlags adds every §6 CLI flag (plus --kmer-length) to flags
// with the same defaults Defaults returns, and binds each one to v so
// that Load's viper.Unmarshal sees flag values, then config-file
// values, then these defaults, in that order of precedence — mirroring
// make.go's StringVarP/viper.BindPFlag pairing, generalized over every
// field instead of two.
func RegisterFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	d := Defaults()

	flags.String("tumor", "", "path to the tumor BAM file")
	flags.String("normal", "", "path to the normal BAM file")
	flags.String("reference", "", "path to the reference FASTA file")
	flags.String("out-vcf", "", "path to write the output VCF")

	flags.Int("num-threads", d.NumThreads, "number of worker threads")
	flags.Int64("window-length", d.WindowLength, "length in bases of each assembly window")
	flags.Uint32("pct-overlap", d.PctOverlap, "percent overlap between consecutive windows, 0-99")
	flags.Int64("max-indel-length", d.MaxIndelLength, "maximum indel length considered")
	flags.Int64("region-pad", d.RegionPad, "bases of padding added to each input region")

	flags.String("bed", "", "path to a BED file of regions to restrict the run to")
	flags.StringArray("region", nil, "a samtools-style region string, may be repeated")

	flags.String("out-graphs-dir", "", "directory to dump per-window assembly graphs into")
	flags.Bool("skip-truncated", false, "skip rather than fail on a reference lookup truncated at a contig boundary")
	flags.Int("min-base-qual", d.MinBaseQual, "minimum base quality counted towards coverage")
	flags.Bool("linked-reads", false, "fold linked-read barcode/haplotype annotations into the graph")

	flags.Int("kmer-length", d.KmerLength, "k-mer length the assembler builds its graph from (must be odd)")

	for _, name := range []string{
		"tumor", "normal", "reference", "out-vcf",
		"num-threads", "window-length", "pct-overlap", "max-indel-length", "region-pad",
		"bed", "region",
		"out-graphs-dir", "skip-truncated", "min-base-qual", "linked-reads",
		"kmer-length",
	} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return errs.Wrap(errs.Internal, err, "binding flag "+name)
		}
	}
	return nil
}

// Load unmarshals v's current settings (bound flags, an optional
// --config file already merged into v by the caller, then pflag
// defaults) into a Params.
func Load(v *viper.Viper) (Params, error) {
	var p Params
	if err := v.Unmarshal(&p); err != nil {
		return Params{}, errs.Wrap(errs.InvalidArgument, err, "decoding config into Params")
	}
	return p, nil
}
