// Package variantstore implements the shared sink workers append
// discovered variants into and the driver flushes in reference
// coordinate order, plus VCF header/record serialization.
package variantstore

import "fmt"

// Variant is a single called variant, shaped like a VCF data line.
// Info/Format carry through arbitrary extra fields without needing a
// type per possible annotation.
type Variant struct {
	Chromosome string
	Pos        int64 // 1-based, matching VCF convention
	ID         string
	Ref        string
	Alt        string
	Qual       float64
	Filter     string
	Info       map[string]string
	Samples    []SampleCall
}

// SampleCall is one sample's genotype/format fields for a Variant.
type SampleCall struct {
	Sample string
	Format map[string]string
}

// IsSNV reports whether the variant substitutes a single base.
func (v Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.Alt) == 1
}

// IsIndel reports whether the variant changes allele length.
func (v Variant) IsIndel() bool {
	return len(v.Ref) != len(v.Alt)
}

// line renders v as a tab-separated VCF data line with no trailing
// newline. Samples are emitted in the order given, which must match
// the header's sample column order.
func (v Variant) line(sampleOrder []string) string {
	id := v.ID
	if id == "" {
		id = "."
	}
	filter := v.Filter
	if filter == "" {
		filter = "."
	}

	info := "."
	if len(v.Info) > 0 {
		info = joinInfo(v.Info)
	}

	line := fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s",
		v.Chromosome, v.Pos, id, v.Ref, v.Alt, formatQual(v.Qual), filter, info)

	if len(sampleOrder) == 0 {
		return line
	}

	byName := make(map[string]SampleCall, len(v.Samples))
	for _, s := range v.Samples {
		byName[s.Sample] = s
	}

	keys := formatKeys(v.Samples)
	line += "\t" + keys
	for _, name := range sampleOrder {
		call, ok := byName[name]
		if !ok {
			line += "\t" + missingFormat(keys)
			continue
		}
		line += "\t" + formatValues(keys, call.Format)
	}
	return line
}

func formatQual(q float64) string {
	if q == 0 {
		return "."
	}
	return fmt.Sprintf("%.2f", q)
}
