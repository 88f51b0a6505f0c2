// Package config defines the CLI/config-file surface of the pipeline:
// a Params struct unmarshalled by github.com/spf13/viper from bound
// github.com/spf13/cobra flags and an optional YAML/TOML file, grounded
// on jjti-repp's config.Config/NewConfig pattern.
package config

// Params is the root-level settings struct, populated from the command
// line and/or a --config file. Field tags name the flag/config key each
// one is bound to.
type Params struct {
	TumorPath     string `mapstructure:"tumor"`
	NormalPath    string `mapstructure:"normal"`
	ReferencePath string `mapstructure:"reference"`
	OutVcfPath    string `mapstructure:"out-vcf"`

	NumThreads     int    `mapstructure:"num-threads"`
	WindowLength   int64  `mapstructure:"window-length"`
	PctOverlap     uint32 `mapstructure:"pct-overlap"`
	MaxIndelLength int64  `mapstructure:"max-indel-length"`
	RegionPad      int64  `mapstructure:"region-pad"`

	BedPath string   `mapstructure:"bed"`
	Regions []string `mapstructure:"region"`

	OutGraphsDir  string `mapstructure:"out-graphs-dir"`
	SkipTruncated bool   `mapstructure:"skip-truncated"`
	MinBaseQual   int    `mapstructure:"min-base-qual"`
	LinkedReads   bool   `mapstructure:"linked-reads"`

	// KmerLength is additive: spec.md's CLI minimum doesn't name it, but
	// assemble.MicroAssembler needs a k-mer size to build its graph from,
	// so it gets a flag with a lancet-typical default rather than a
	// hardcoded constant.
	KmerLength int `mapstructure:"kmer-length"`
}

// Defaults returns the Params fields populated the same way
// RegisterFlags' pflag defaults do, for callers (tests, --config-less
// runs) that build a Params without going through cobra/viper at all.
func Defaults() Params {
	return Params{
		NumThreads:     1,
		WindowLength:   600,
		PctOverlap:     0,
		MaxIndelLength: 50,
		RegionPad:      250,
		MinBaseQual:    17,
		KmerLength:     11,
	}
}
