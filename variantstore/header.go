package variantstore

import (
	"fmt"
	"strings"

	"github.com/hmmm42/lancetgo/internal/errs"
)

// ContigHeaderInfo names one reference contig and its length, for the
// VCF header's ##contig lines.
type ContigHeaderInfo struct {
	Name   string
	Length int64
}

// HeaderMeta carries everything BuildVcfHeader needs beyond sample
// names: contig order/lengths and the command line that produced the
// run, for the ##source/##command provenance lines. It is deliberately
// independent of internal/config so variantstore never needs to import
// the CLI layer; the cmd package builds a HeaderMeta from the
// reference's contigs and the process arguments.
type HeaderMeta struct {
	Contigs []ContigHeaderInfo
	Command string
}

// BuildVcfHeader renders the fixed VCF preamble plus the #CHROM column
// line naming sampleNames, called once on the driver before any worker
// starts. Exactly two sample names (tumor, normal) or exactly one is
// accepted; anything else is a setup-phase argument error.
func BuildVcfHeader(sampleNames []string, meta HeaderMeta) ([]byte, error) {
	if len(sampleNames) == 0 || len(sampleNames) > 2 {
		return nil, errs.Newf(errs.InvalidArgument, "vcf header requires one or two sample names, got %d", len(sampleNames))
	}

	var b strings.Builder
	b.WriteString("##fileformat=VCFv4.2\n")
	b.WriteString("##source=lancetgo\n")
	if meta.Command != "" {
		fmt.Fprintf(&b, "##command=%s\n", meta.Command)
	}
	for _, c := range meta.Contigs {
		fmt.Fprintf(&b, "##contig=<ID=%s,length=%d>\n", c.Name, c.Length)
	}
	b.WriteString("##INFO=<ID=SOMATIC,Number=0,Type=Flag,Description=\"Somatic variant\">\n")
	b.WriteString("##FORMAT=<ID=GT,Number=1,Type=String,Description=\"Genotype\">\n")
	b.WriteString("##FORMAT=<ID=AD,Number=R,Type=Integer,Description=\"Allelic depths\">\n")

	columns := []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}
	if len(sampleNames) > 0 {
		columns = append(columns, "FORMAT")
		columns = append(columns, sampleNames...)
	}
	b.WriteString(strings.Join(columns, "\t"))
	b.WriteString("\n")

	return []byte(b.String()), nil
}
