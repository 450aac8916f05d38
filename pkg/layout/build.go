package layout

import (
	"log/slog"
	"time"

	"keylayout/pkg/keys"
)

// buildLayout resolves the full key tables for one layout id. It issues
// up to 256 virtual keys x 16 modifier combinations of probes, which is
// why the result is cached. The caller holds the cache lock.
func buildLayout(native NativeAPI, interner *keys.Interner, id LayoutID, log *slog.Logger) *Layout {
	start := time.Now()
	l := &Layout{
		id:             id,
		numlockOnKeys:  make(map[uint32]keys.Key),
		numlockOffKeys: make(map[uint32]keys.Key),
		keyTables:      make(map[ModBits]map[keys.KeyCode]keys.Key, modBitsEnd),
	}

	// All zeros simulates a state with no modifier active.
	var keyState [256]byte

	// MapToScanCode maps numpad-agnostic virtual keys as if NumLock
	// were off. A virtual key that is not numpad-specific but lands on
	// a numpad position therefore names what that position aliases
	// while NumLock is off:
	//
	//   src vkey  ==>  scan code (on the numpad)
	//      ||                 ||
	//      \/                 \/
	//   aliased Key  <--  numpad vkey
	for vk := uint32(0); vk < 256; vk++ {
		scancode := native.MapToScanCode(vk, id)
		if scancode == 0 {
			continue
		}
		code := keyCodeFromScanCode(scancode)
		if isNumpadSpecific(vk) || !numpadKeyCodes[code] {
			continue
		}
		mapVK := keyCodeToVKey(code, id)
		if mapVK == 0 {
			continue
		}
		nc := keys.NewNativeCode(uint16(scancode))
		mapValue := vkeyToNonCharKey(vk, nc, id, false)
		if mapValue.IsUnidentified() {
			continue
		}
		l.numlockOffKeys[mapVK] = mapValue
	}

	for _, vk := range numpadVKeys {
		scancode := native.MapToScanCode(vk, id)
		res := settleProbe(native, vk, scancode, &keyState, id)
		if res.kind == ProbeText {
			l.numlockOnKeys[vk] = keys.NewCharacter(interner.GetOrInsert(res.text))
		}
	}

	// Every modifier combination, in ascending numeric order. The
	// ordering is a precondition, not an accident: AltGr detection
	// below compares against the empty combination, which must have
	// been built by the time Control+Alt comes up.
	for mod := ModBits(0); mod < modBitsEnd; mod++ {
		table := make(map[keys.KeyCode]keys.Key, 256)
		mod.applyToKeyState(&keyState)

		for vk := uint32(0); vk < 256; vk++ {
			scancode := native.MapToScanCode(vk, id)
			if scancode == 0 {
				continue
			}
			nc := keys.NewNativeCode(uint16(scancode))
			code := keyCodeFromScanCode(scancode)

			// Whether the layout has AltGr is unknown at this point,
			// so assume it does not; the retrofit pass below relabels
			// AltRight once the tables are complete.
			preliminary := vkeyToNonCharKey(vk, nc, id, false)
			if !preliminary.IsUnidentified() {
				table[code] = preliminary
				continue
			}

			var key keys.Key
			res := settleProbe(native, vk, scancode, &keyState, id)
			switch res.kind {
			case ProbeText:
				key = keys.NewCharacter(interner.GetOrInsert(res.text))
			case ProbeDead:
				key = keys.NewDead(res.dead)
			default:
				// ToUnicodeEx fails to produce a string for the
				// numpad divide key; force the slash.
				if !mod.Has(ModAlt) && !mod.Has(ModControl) && code == keys.CodeNumpadDivide {
					key = keys.NewCharacter("/")
				} else {
					key = preliminary
				}
			}

			// A layout has AltGr when some position types a different
			// character under Control+Alt than with no modifier.
			if !l.hasAltGraph && mod == ModControl|ModAlt {
				plain := l.keyTables[0]
				if base, ok := plain[code]; ok &&
					base.Kind() == keys.KindCharacter &&
					key.Kind() == keys.KindCharacter {
					l.hasAltGraph = base.Character() != key.Character()
				}
			}

			table[code] = key
		}
		l.keyTables[mod] = table
	}

	// Retrofit: construction assumed no AltGr, so the right-Alt entry
	// of every table still says Alt.
	if l.hasAltGraph {
		for mod := ModBits(0); mod < modBitsEnd; mod++ {
			if table, ok := l.keyTables[mod]; ok {
				if _, ok := table[keys.CodeAltRight]; ok {
					table[keys.CodeAltRight] = keys.NewNamed(keys.NamedAltGraph)
				}
			}
		}
	}

	log.Debug("keyboard layout resolved",
		"layout_id", uint64(id),
		"alt_graph", l.hasAltGraph,
		"numlock_on_keys", len(l.numlockOnKeys),
		"numlock_off_keys", len(l.numlockOffKeys),
		"elapsed", time.Since(start),
	)

	return l
}
