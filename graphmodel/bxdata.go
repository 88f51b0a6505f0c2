package graphmodel

// BarcodeData tracks, per sample and strand, the distinct 10x-style
// linked-read barcodes observed at a node. It is node-level rather
// than per-base: a barcode either has or hasn't been seen supporting
// this node at all.
type BarcodeData struct {
	seen  [3][2]map[string]struct{} // [SampleLabel][Strand] -> barcode set
	count [3][2]uint16
}

// IsEmpty reports whether no barcode has been recorded for any
// sample/strand.
func (b *BarcodeData) IsEmpty() bool {
	if b == nil {
		return true
	}
	for _, byStrand := range b.count {
		if byStrand[StrandFwd] != 0 || byStrand[StrandRev] != 0 {
			return false
		}
	}
	return true
}

// IsBXMissing reports whether barcode has not yet been recorded for
// label, on either strand. Lancet dedups at most-once-per-barcode
// regardless of which strand first observed it.
func (b *BarcodeData) IsBXMissing(label SampleLabel, barcode string) bool {
	if b == nil {
		return true
	}
	for _, s := range [2]Strand{StrandFwd, StrandRev} {
		if set := b.seen[label][s]; set != nil {
			if _, ok := set[barcode]; ok {
				return false
			}
		}
	}
	return true
}

// AddBX records barcode as observed for label on strand s.
func (b *BarcodeData) AddBX(label SampleLabel, s Strand, barcode string) {
	if b.seen[label][s] == nil {
		b.seen[label][s] = make(map[string]struct{})
	}
	if _, ok := b.seen[label][s][barcode]; ok {
		return
	}
	b.seen[label][s][barcode] = struct{}{}
	b.count[label][s]++
}

// BXCount returns the number of distinct barcodes recorded for
// label/strand.
func (b *BarcodeData) BXCount(label SampleLabel, s Strand) uint16 {
	if b == nil {
		return 0
	}
	return b.count[label][s]
}

// Merge unions buddy's barcode sets into b. Per SPEC_FULL.md/DESIGN.md,
// an empty side is the identity element: merging an empty BarcodeData
// into a populated one leaves the populated one's barcodes unchanged.
func (b *BarcodeData) Merge(buddy *BarcodeData) {
	if buddy == nil {
		return
	}
	for label := 0; label < 3; label++ {
		for _, s := range [2]Strand{StrandFwd, StrandRev} {
			for barcode := range buddy.seen[label][s] {
				b.AddBX(SampleLabel(label), s, barcode)
			}
		}
	}
}
