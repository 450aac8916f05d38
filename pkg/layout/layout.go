// Package layout resolves Windows keyboard layouts into logical key
// tables and maps live key events to stable keys.Key values.
//
// The OS interface this sits on is ambiguous and stateful: virtual keys do
// not distinguish left/right modifier instances, numpad virtual keys change
// meaning with NumLock, ToUnicodeEx mutates a hidden dead-key latch as a
// side effect of being queried, and the AltGr modifier is never reported
// directly and has to be inferred by comparing probe output across modifier
// states. Building the per-layout tables takes up to 256 virtual keys times
// 16 modifier combinations of probes, so resolved layouts are cached for
// the life of the process.
package layout

import "keylayout/pkg/keys"

// LayoutID is the opaque numeric identifier of an OS keyboard layout
// (an HKL on Windows). It is stable for the life of the process and is
// the cache key for resolved layouts.
type LayoutID uint64

// Windows primary language identifiers relevant to IME key
// disambiguation.
const (
	langJapanese = 0x11
	langKorean   = 0x12
)

// primaryLang extracts the primary language id from the low word of the
// layout id.
func (id LayoutID) primaryLang() uint16 {
	return uint16(id) & 0x3FF
}

// Layout holds the resolved key tables of one keyboard layout. A Layout
// is immutable once returned by the cache.
type Layout struct {
	id LayoutID

	// numlockOnKeys maps numpad-specific virtual keys to the character
	// they produce while NumLock is on. Some of these differ per locale;
	// VK_DECIMAL is "." on some layouts and "," on others. Keeping this
	// separate from keyTables avoids treating NumLock as a seventeenth
	// modifier combination, which would double the table count.
	numlockOnKeys map[uint32]keys.Key

	// numlockOffKeys maps the same virtual keys to the key the physical
	// numpad position aliases while NumLock is off (Numpad8 acts as
	// ArrowUp, and so on).
	numlockOffKeys map[uint32]keys.Key

	// keyTables maps each synthesized modifier combination to the keys
	// produced per physical position. One table per combination because
	// ToUnicodeEx output depends on the whole modifier state, including
	// CapsLock.
	keyTables map[ModBits]map[keys.KeyCode]keys.Key

	hasAltGraph bool
}

// ID returns the layout identifier this Layout was built for.
func (l *Layout) ID() LayoutID { return l.id }

// HasAltGraph reports whether the layout has a third-level AltGr
// modifier, detected during construction by comparing Control+Alt
// characters against the unmodified ones.
func (l *Layout) HasAltGraph() bool { return l.hasAltGraph }

// GetKey resolves a live key event to its logical key.
//
// Resolution order: a virtual key other than the ambiguous generic
// VK_MENU is tried against the non-character key mapping first. The
// virtual key is preferred over the scan code here because
// MapVirtualKeyExW sometimes produced odd scan codes during construction
// that do not match the ones delivered with KEYDOWN; VK_LEFT maps to
// 0x004B while the live left-arrow scan code is 0xE04B. Using the
// layout's known AltGr state also lets a live right-Alt resolve to
// AltGraph even though construction assumed no AltGr at this step. Then
// the NumLock-appropriate numpad map by virtual key, then the
// per-combination character table by key code, and finally Unidentified
// carrying the native scan code.
func (l *Layout) GetKey(mods ModBits, numLockOn bool, vkey uint32, scancode uint16, code keys.KeyCode) keys.Key {
	native := keys.NewNativeCode(scancode)

	if vkey != VK_MENU {
		if k := vkeyToNonCharKey(vkey, native, l.id, l.hasAltGraph); !k.IsUnidentified() {
			return k
		}
	}
	if numLockOn {
		if k, ok := l.numlockOnKeys[vkey]; ok {
			return k
		}
	} else {
		if k, ok := l.numlockOffKeys[vkey]; ok {
			return k
		}
	}
	if table, ok := l.keyTables[mods]; ok {
		if k, ok := table[code]; ok {
			return k
		}
	}
	return keys.NewUnidentified(native)
}

// Combinations returns the modifier combinations the layout has tables
// for, in ascending bit order.
func (l *Layout) Combinations() []ModBits {
	combos := make([]ModBits, 0, len(l.keyTables))
	for m := ModBits(0); m < modBitsEnd; m++ {
		if _, ok := l.keyTables[m]; ok {
			combos = append(combos, m)
		}
	}
	return combos
}

// KeyTable returns a copy of the key table for one modifier combination.
func (l *Layout) KeyTable(mods ModBits) map[keys.KeyCode]keys.Key {
	table, ok := l.keyTables[mods]
	if !ok {
		return nil
	}
	out := make(map[keys.KeyCode]keys.Key, len(table))
	for code, k := range table {
		out[code] = k
	}
	return out
}

// NumLockOnKeys returns a copy of the NumLock-on numpad map.
func (l *Layout) NumLockOnKeys() map[uint32]keys.Key {
	out := make(map[uint32]keys.Key, len(l.numlockOnKeys))
	for vk, k := range l.numlockOnKeys {
		out[vk] = k
	}
	return out
}

// NumLockOffKeys returns a copy of the NumLock-off numpad map.
func (l *Layout) NumLockOffKeys() map[uint32]keys.Key {
	out := make(map[uint32]keys.Key, len(l.numlockOffKeys))
	for vk, k := range l.numlockOffKeys {
		out[vk] = k
	}
	return out
}
