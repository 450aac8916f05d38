package keys

import "strings"

// ModifierSet is the platform-neutral set of live modifier keys.
type ModifierSet uint8

const (
	ModShift ModifierSet = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether every modifier in m is present in s.
func (s ModifierSet) Has(m ModifierSet) bool { return s&m == m }

func (s ModifierSet) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if s.Has(ModControl) {
		parts = append(parts, "Control")
	}
	if s.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if s.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}
