package warehouse

import "sort"

const (
	// UnknownKey is the surrogate key of the sentinel dimension row used when
	// a fact cannot resolve a real member.
	UnknownKey = -1
	// UnknownNaturalKey is the sentinel row's natural key. Real business ids
	// are lowercase hex, so the literal cannot collide with one.
	UnknownNaturalKey = "UNKNOWN"
)

// KeyTable maps a dimension's natural keys to surrogate keys. Keys are
// assigned 1..n over the ascending natural-key order, which makes assignment
// reproducible across runs on identical conformed input. Every downstream
// join depends on that.
type KeyTable struct {
	keys map[string]int
}

func NewKeyTable(naturalKeys []string) *KeyTable {
	sorted := make([]string, len(naturalKeys))
	copy(sorted, naturalKeys)
	sort.Strings(sorted)

	keys := make(map[string]int, len(sorted))
	next := 1
	for _, nk := range sorted {
		if _, dup := keys[nk]; dup {
			continue
		}
		keys[nk] = next
		next++
	}
	return &KeyTable{keys: keys}
}

// Lookup returns the surrogate key for a natural key, or UnknownKey when the
// member does not exist (including the empty natural key).
func (kt *KeyTable) Lookup(naturalKey string) int {
	if naturalKey == "" {
		return UnknownKey
	}
	if key, ok := kt.keys[naturalKey]; ok {
		return key
	}
	return UnknownKey
}

func (kt *KeyTable) Len() int {
	return len(kt.keys)
}
