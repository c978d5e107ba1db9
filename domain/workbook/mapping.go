package workbook

import "sort"

// Mapping is field key -> cell reference string.
type Mapping map[string]string

// Keys returns the mapping keys sorted, so replay order is stable.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Invalid returns the keys whose value fails the cell reference shape check.
func (m Mapping) Invalid() []string {
	var bad []string
	for _, k := range m.Keys() {
		if !LooksLikeCellRef(m[k]) {
			bad = append(bad, k)
		}
	}
	return bad
}
