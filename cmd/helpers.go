package cmd

import (
	"github.com/hmmm42/lancetgo/internal/errs"
	"github.com/hmmm42/lancetgo/variantstore"
	"github.com/hmmm42/lancetgo/window"
)

// buildContigIndex turns a reference's contig list into the two
// shapes the rest of the pipeline needs: a name->dense-index map for
// window.Builder.BuildWindows and the driver's flush-time contig
// validation, and the ##contig header lines BuildVcfHeader renders,
// both in the reference's own file order.
func buildContigIndex(contigs []window.ContigInfo) (map[string]int, []variantstore.ContigHeaderInfo) {
	contigIDs := make(map[string]int, len(contigs))
	headerContigs := make([]variantstore.ContigHeaderInfo, len(contigs))
	for i, contig := range contigs {
		contigIDs[contig.Name] = i
		headerContigs[i] = variantstore.ContigHeaderInfo{Name: contig.Name, Length: contig.Length}
	}
	return contigIDs, headerContigs
}

// singleSampleName extracts the one sample name a well-formed
// alignment file must declare. fileKind ("tumor"/"normal") names which
// file a caller should report if this fails.
func singleSampleName(fileKind string, names []string) (string, error) {
	if len(names) != 1 {
		return "", errs.Newf(errs.Fatal, "%s alignment file must declare exactly one sample, got %v", fileKind, names)
	}
	return names[0], nil
}
