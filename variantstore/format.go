package variantstore

import (
	"sort"
	"strings"
)

// joinInfo renders an INFO map as "KEY=VAL;KEY=VAL", keys sorted so
// output is reproducible across runs.
func joinInfo(info map[string]string) string {
	keys := sortedKeys(info)
	parts := make([]string, len(keys))
	for i, k := range keys {
		if info[k] == "" {
			parts[i] = k // flag-style INFO field, no value
			continue
		}
		parts[i] = k + "=" + info[k]
	}
	return strings.Join(parts, ";")
}

// formatKeys collects the union of FORMAT keys across every sample
// call, sorted, with GT forced first when present since that's the VCF
// convention every reader expects.
func formatKeys(samples []SampleCall) string {
	seen := map[string]bool{}
	for _, s := range samples {
		for k := range s.Format {
			seen[k] = true
		}
	}
	if len(seen) == 0 {
		return "GT"
	}

	hasGT := seen["GT"]
	delete(seen, "GT")
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if hasGT {
		keys = append([]string{"GT"}, keys...)
	}
	return strings.Join(keys, ":")
}

// formatValues renders one sample's FORMAT column in the order given
// by keys (a colon-joined key list from formatKeys).
func formatValues(keys string, format map[string]string) string {
	parts := strings.Split(keys, ":")
	values := make([]string, len(parts))
	for i, k := range parts {
		v, ok := format[k]
		if !ok || v == "" {
			v = "."
		}
		values[i] = v
	}
	return strings.Join(values, ":")
}

// missingFormat renders an entirely-absent sample call's column.
func missingFormat(keys string) string {
	n := strings.Count(keys, ":") + 1
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "."
	}
	return strings.Join(parts, ":")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
