package keys

import "strings"

// Interner deduplicates the character strings produced while resolving a
// layout, so repeated keys share backing storage and compare by identity.
// Entries are never evicted; growth is bounded by the small number of
// distinct characters a layout can produce.
//
// An Interner is not safe for concurrent use. The layout cache owns one
// and serializes access under its own lock.
type Interner struct {
	entries map[string]string
}

// NewInterner returns an empty interner.
func NewInterner() *Interner {
	return &Interner{entries: make(map[string]string)}
}

// GetOrInsert returns a stable string equal to s. The first insertion
// stores a detached copy; later calls with equal content return the same
// stored string.
func (i *Interner) GetOrInsert(s string) string {
	if v, ok := i.entries[s]; ok {
		return v
	}
	owned := strings.Clone(s)
	i.entries[owned] = owned
	return owned
}

// Len returns the number of distinct entries.
func (i *Interner) Len() int { return len(i.entries) }
