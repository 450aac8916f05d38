package layout

import (
	"fmt"
	"strings"
)

// ModBits is the 4-bit modifier combination used while building layout
// tables. CapsLock is synthesized as a combination member here even though
// it is a toggle rather than a held key, because ToUnicodeEx output
// depends on it.
type ModBits uint8

const (
	ModShift ModBits = 1 << iota
	ModControl
	ModAlt
	ModCapsLock

	// modBitsEnd is one past the highest combination; iterating
	// 0..modBitsEnd visits all 16 states.
	modBitsEnd
)

const (
	keyDownBit   = 0x80
	keyToggleBit = 0x01
)

// Has reports whether every bit in m is set in b.
func (b ModBits) Has(m ModBits) bool { return b&m == m }

// applyToKeyState writes the combination into a 256-entry key-state
// array as ToUnicodeEx expects it. Clearing a held modifier also clears
// both its left and right instances; setting one sets only the generic
// key, which is sufficient for the conversion.
func (b ModBits) applyToKeyState(state *[256]byte) {
	if b.Has(ModShift) {
		state[VK_SHIFT] |= keyDownBit
	} else {
		state[VK_SHIFT] &^= keyDownBit
		state[VK_LSHIFT] &^= keyDownBit
		state[VK_RSHIFT] &^= keyDownBit
	}
	if b.Has(ModControl) {
		state[VK_CONTROL] |= keyDownBit
	} else {
		state[VK_CONTROL] &^= keyDownBit
		state[VK_LCONTROL] &^= keyDownBit
		state[VK_RCONTROL] &^= keyDownBit
	}
	if b.Has(ModAlt) {
		state[VK_MENU] |= keyDownBit
	} else {
		state[VK_MENU] &^= keyDownBit
		state[VK_LMENU] &^= keyDownBit
		state[VK_RMENU] &^= keyDownBit
	}
	if b.Has(ModCapsLock) {
		state[VK_CAPITAL] |= keyToggleBit
	} else {
		state[VK_CAPITAL] &^= keyToggleBit
	}
}

// ModBitsFromState reads the active combination out of a live key-state
// snapshot, considering the generic and the left/right instances of each
// held modifier and the CapsLock toggle bit.
func ModBitsFromState(state *[256]byte) ModBits {
	down := func(vk int) bool { return state[vk]&keyDownBit != 0 }

	var b ModBits
	if down(VK_SHIFT) || down(VK_LSHIFT) || down(VK_RSHIFT) {
		b |= ModShift
	}
	if down(VK_CONTROL) || down(VK_LCONTROL) || down(VK_RCONTROL) {
		b |= ModControl
	}
	if down(VK_MENU) || down(VK_LMENU) || down(VK_RMENU) {
		b |= ModAlt
	}
	if state[VK_CAPITAL]&keyToggleBit != 0 {
		b |= ModCapsLock
	}
	return b
}

// RemoveOnlyCtrl drops Control when Alt is not also present. Windows
// reports AltGr as Control+Alt, so a caller that wants to strip a plain
// Control must leave the pair intact.
func (b ModBits) RemoveOnlyCtrl() ModBits {
	if !b.Has(ModAlt) {
		b &^= ModControl
	}
	return b
}

// ParseModBits parses a combination like "shift+control" or
// "Alt+CapsLock". The empty string and "none" mean no modifiers.
func ParseModBits(s string) (ModBits, error) {
	var b ModBits
	if s == "" || strings.EqualFold(s, "none") {
		return b, nil
	}
	for _, part := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			b |= ModShift
		case "control", "ctrl":
			b |= ModControl
		case "alt":
			b |= ModAlt
		case "capslock", "caps":
			b |= ModCapsLock
		default:
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return b, nil
}

func (b ModBits) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	if b.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if b.Has(ModControl) {
		parts = append(parts, "Control")
	}
	if b.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if b.Has(ModCapsLock) {
		parts = append(parts, "CapsLock")
	}
	return strings.Join(parts, "+")
}
