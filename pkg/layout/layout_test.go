package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keylayout/pkg/keys"
)

// Test helpers

func newUSCache(t *testing.T) (*Simulated, *Cache) {
	t.Helper()
	sim := NewSimulated(USQwerty())
	return sim, NewCacheWith(sim)
}

// altGrLayout derives a US variant with a third character level, the
// way european layouts place the euro sign on AltGr+E.
func altGrLayout() *SimLayout {
	l := USQwerty().Clone()
	l.ID = 0x04070407

	e := l.Keys[0x45]
	e.AltGr = "€"
	l.Keys[0x45] = e

	q := l.Keys[0x51]
	q.AltGr = "@"
	l.Keys[0x51] = q

	return l
}

// deadKeyLayout derives a US variant with a grave dead key on the
// backquote position.
func deadKeyLayout() *SimLayout {
	l := USQwerty().Clone()
	l.ID = 0x040C040C

	bq := l.Keys[VK_OEM_3]
	bq.Base = ""
	bq.Shift = ""
	bq.DeadBase = '`'
	bq.DeadShift = '~'
	l.Keys[VK_OEM_3] = bq

	l.Compose[[2]rune{'`', 'a'}] = 'à'
	l.Compose[[2]rune{'`', 'e'}] = 'è'
	return l
}

// =============================================================================
// Cache Tests
// =============================================================================

func TestCacheResolvesLayoutOnce(t *testing.T) {
	_, cache := newUSCache(t)

	id1, l1 := cache.GetCurrentLayout()
	id2, l2 := cache.GetCurrentLayout()

	assert.Equal(t, usQwertyID, id1)
	assert.Equal(t, id1, id2)
	assert.Same(t, l1, l2, "repeated lookups must return the cached layout")
}

func TestCacheKeepsLayoutsAcrossSwitches(t *testing.T) {
	sim, cache := newUSCache(t)

	_, us := cache.GetCurrentLayout()

	sim.SetActiveLayout(altGrLayout())
	id, de := cache.GetCurrentLayout()
	require.Equal(t, LayoutID(0x04070407), id)
	assert.NotSame(t, us, de)

	sim.SetActiveLayout(USQwerty())
	_, again := cache.GetCurrentLayout()
	assert.Same(t, us, again, "switching back must reuse the first resolution")
}

func TestCacheInternsCharacters(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	// "8" reached via the top row and via the numpad is one Key value.
	plain := l.KeyTable(0)
	numOn := l.NumLockOnKeys()
	require.Equal(t, keys.KindCharacter, plain[keys.CodeDigit8].Kind())
	assert.Equal(t, plain[keys.CodeDigit8], numOn[VK_NUMPAD8])
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestLayoutBuildsAllCombinations(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	combos := l.Combinations()
	require.Len(t, combos, 16)
	for i, combo := range combos {
		assert.Equal(t, ModBits(i), combo)
	}
}

func TestCharacterTables(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	tests := []struct {
		mods ModBits
		code keys.KeyCode
		want string
	}{
		{0, keys.CodeKeyA, "a"},
		{ModShift, keys.CodeKeyA, "A"},
		{ModCapsLock, keys.CodeKeyA, "A"},
		{ModShift | ModCapsLock, keys.CodeKeyA, "a"},
		{0, keys.CodeDigit2, "2"},
		{ModShift, keys.CodeDigit2, "@"},
		{ModCapsLock, keys.CodeDigit2, "2"},
		{0, keys.CodeBackquote, "`"},
		{ModShift, keys.CodeSemicolon, ":"},
		// Without a third level, Control+Alt mirrors the plain table.
		{ModControl | ModAlt, keys.CodeKeyA, "a"},
	}
	for _, tt := range tests {
		k := l.KeyTable(tt.mods)[tt.code]
		require.Equal(t, keys.KindCharacter, k.Kind(), "%v %v", tt.mods, tt.code)
		assert.Equal(t, tt.want, k.Character(), "%v %v", tt.mods, tt.code)
	}

	assert.False(t, l.HasAltGraph())
}

func TestControlSuppressesCharacters(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	k := l.KeyTable(ModControl)[keys.CodeKeyA]
	assert.True(t, k.IsUnidentified(), "Control alone must not produce a character")
}

func TestNumpadDivideFallback(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	k := l.KeyTable(0)[keys.CodeNumpadDivide]
	require.Equal(t, keys.KindCharacter, k.Kind())
	assert.Equal(t, "/", k.Character())

	// The fallback only applies without Control or Alt held.
	assert.True(t, l.KeyTable(ModControl)[keys.CodeNumpadDivide].IsUnidentified())
	assert.True(t, l.KeyTable(ModAlt)[keys.CodeNumpadDivide].IsUnidentified())
	assert.False(t, l.KeyTable(ModShift)[keys.CodeNumpadDivide].IsUnidentified())
}

func TestNumLockMaps(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	on := l.NumLockOnKeys()
	require.Equal(t, keys.KindCharacter, on[VK_NUMPAD8].Kind())
	assert.Equal(t, "8", on[VK_NUMPAD8].Character())
	assert.Equal(t, ".", on[VK_DECIMAL].Character())
	_, hasDivide := on[VK_DIVIDE]
	assert.False(t, hasDivide, "divide translates to nothing and stays out of the NumLock map")

	off := l.NumLockOffKeys()
	assert.Equal(t, keys.NewNamed(keys.NamedArrowUp), off[VK_NUMPAD8])
	assert.Equal(t, keys.NewNamed(keys.NamedHome), off[VK_NUMPAD7])
	assert.Equal(t, keys.NewNamed(keys.NamedClear), off[VK_NUMPAD5])
	assert.Equal(t, keys.NewNamed(keys.NamedDelete), off[VK_DECIMAL])
	assert.Equal(t, keys.NewNamed(keys.NamedInsert), off[VK_NUMPAD0])
}

// =============================================================================
// AltGr Tests
// =============================================================================

func TestAltGrDetection(t *testing.T) {
	sim := NewSimulated(altGrLayout())
	cache := NewCacheWith(sim)
	_, l := cache.GetCurrentLayout()

	require.True(t, l.HasAltGraph())

	third := l.KeyTable(ModControl | ModAlt)
	require.Equal(t, keys.KindCharacter, third[keys.CodeKeyE].Kind())
	assert.Equal(t, "€", third[keys.CodeKeyE].Character())
	assert.Equal(t, "@", third[keys.CodeKeyQ].Character())

	// Positions without a third level keep their plain character.
	assert.Equal(t, "a", third[keys.CodeKeyA].Character())
}

func TestAltGrRetrofitsAltRight(t *testing.T) {
	sim := NewSimulated(altGrLayout())
	cache := NewCacheWith(sim)
	_, l := cache.GetCurrentLayout()

	altGraph := keys.NewNamed(keys.NamedAltGraph)
	for _, combo := range l.Combinations() {
		assert.Equal(t, altGraph, l.KeyTable(combo)[keys.CodeAltRight],
			"combination %v", combo)
	}

	// Live right-Alt events resolve through the virtual key path.
	k := l.GetKey(0, true, VK_RMENU, 0xE038, keys.CodeAltRight)
	assert.Equal(t, altGraph, k)
}

func TestAltRightStaysAltWithoutAltGr(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	alt := keys.NewNamed(keys.NamedAlt)
	assert.Equal(t, alt, l.KeyTable(0)[keys.CodeAltRight])
	assert.Equal(t, alt, l.GetKey(0, true, VK_RMENU, 0xE038, keys.CodeAltRight))
}

// =============================================================================
// Dead Key Tests
// =============================================================================

func TestDeadKeyTables(t *testing.T) {
	sim := NewSimulated(deadKeyLayout())
	cache := NewCacheWith(sim)
	_, l := cache.GetCurrentLayout()

	assert.Equal(t, keys.NewDead('`'), l.KeyTable(0)[keys.CodeBackquote])
	assert.Equal(t, keys.NewDead('~'), l.KeyTable(ModShift)[keys.CodeBackquote])

	// Probing the dead key while building must not leak latched state
	// into neighboring positions.
	assert.Equal(t, "a", l.KeyTable(0)[keys.CodeKeyA].Character())
	assert.Equal(t, "b", l.KeyTable(0)[keys.CodeKeyB].Character())
}

func TestSettleProbeClearsLatch(t *testing.T) {
	sim := NewSimulated(deadKeyLayout())
	var state [256]byte

	out := settleProbe(sim, VK_OEM_3, 0x29, &state, 0x040C040C)
	require.Equal(t, ProbeDead, out.kind)
	assert.Equal(t, '`', out.dead)

	// A follow-up translation of a plain letter sees no pending accent.
	res := sim.ToUnicode(0x41, 0x1E, &state, 0x040C040C)
	require.Equal(t, ProbeText, res.Kind)
	assert.Equal(t, "a", res.Text)
}

func TestSimulatedDeadKeyComposition(t *testing.T) {
	sim := NewSimulated(deadKeyLayout())
	var state [256]byte

	// Latch the accent, then type a composable letter.
	res := sim.ToUnicode(VK_OEM_3, 0x29, &state, 0x040C040C)
	require.Equal(t, ProbeDead, res.Kind)
	res = sim.ToUnicode(0x41, 0x1E, &state, 0x040C040C)
	require.Equal(t, ProbeText, res.Kind)
	assert.Equal(t, "à", res.Text)

	// Non-composable letters get the accent prepended.
	sim.ToUnicode(VK_OEM_3, 0x29, &state, 0x040C040C)
	res = sim.ToUnicode(0x58, 0x2D, &state, 0x040C040C)
	require.Equal(t, ProbeText, res.Kind)
	assert.Equal(t, "`x", res.Text)
}

// =============================================================================
// GetKey Tests
// =============================================================================

func TestGetKeyPrecedence(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	// Non-character virtual keys win over everything.
	assert.Equal(t, keys.NewNamed(keys.NamedEscape),
		l.GetKey(0, true, VK_ESCAPE, 0x01, keys.CodeEscape))
	assert.Equal(t, keys.NewNamed(keys.NamedShift),
		l.GetKey(ModShift, true, VK_LSHIFT, 0x2A, keys.CodeShiftLeft))

	// The generic Alt virtual key skips that path so right-Alt can
	// resolve through the tables.
	assert.Equal(t, keys.NewNamed(keys.NamedAlt),
		l.GetKey(0, true, VK_MENU, 0x38, keys.CodeAltLeft))

	// Numpad digits split on NumLock.
	assert.Equal(t, "8", l.GetKey(0, true, VK_NUMPAD8, 0x48, keys.CodeNumpad8).Character())
	assert.Equal(t, keys.NewNamed(keys.NamedArrowUp),
		l.GetKey(0, false, VK_NUMPAD8, 0x48, keys.CodeNumpad8))

	// Characters resolve per modifier combination.
	assert.Equal(t, "A", l.GetKey(ModShift, true, 0x41, 0x1E, keys.CodeKeyA).Character())

	// Unknown positions fall out with their native identity.
	k := l.GetKey(0, true, 0xE8, 0x7F, keys.CodeUnidentified)
	require.True(t, k.IsUnidentified())
	sc, ok := k.Native().Scancode()
	require.True(t, ok)
	assert.Equal(t, uint16(0x7F), sc)
}

func TestGetKeyNumpadDivide(t *testing.T) {
	_, cache := newUSCache(t)
	_, l := cache.GetCurrentLayout()

	k := l.GetKey(0, true, VK_DIVIDE, 0xE035, keys.CodeNumpadDivide)
	require.Equal(t, keys.KindCharacter, k.Kind())
	assert.Equal(t, "/", k.Character())
}

// =============================================================================
// Modifier State Tests
// =============================================================================

func TestModBitsStateRoundTrip(t *testing.T) {
	var state [256]byte
	for combo := ModBits(0); combo < modBitsEnd; combo++ {
		combo.applyToKeyState(&state)
		assert.Equal(t, combo, ModBitsFromState(&state))
	}
}

func TestApplyClearsSidedModifiers(t *testing.T) {
	var state [256]byte
	state[VK_LSHIFT] = keyDownBit
	state[VK_RCONTROL] = keyDownBit
	state[VK_LMENU] = keyDownBit

	ModBits(0).applyToKeyState(&state)
	assert.Equal(t, ModBits(0), ModBitsFromState(&state))
}

func TestRemoveOnlyCtrl(t *testing.T) {
	assert.Equal(t, ModBits(0), ModControl.RemoveOnlyCtrl())
	assert.Equal(t, ModShift, (ModShift | ModControl).RemoveOnlyCtrl())
	// The Control+Alt pair stays intact; it may be AltGr.
	assert.Equal(t, ModControl|ModAlt, (ModControl | ModAlt).RemoveOnlyCtrl())
}

func TestParseModBits(t *testing.T) {
	tests := []struct {
		in   string
		want ModBits
	}{
		{"", 0},
		{"none", 0},
		{"shift", ModShift},
		{"shift+control", ModShift | ModControl},
		{"Ctrl+Alt", ModControl | ModAlt},
		{"capslock", ModCapsLock},
	}
	for _, tt := range tests {
		got, err := ParseModBits(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseModBits("hyper")
	assert.Error(t, err)
}

func TestAgnosticModifiers(t *testing.T) {
	sim, cache := newUSCache(t)

	assert.Equal(t, keys.ModifierSet(0), cache.AgnosticModifiers())

	sim.SetKeyDown(VK_SHIFT, true)
	sim.SetKeyDown(VK_LWIN, true)
	assert.Equal(t, keys.ModShift|keys.ModSuper, cache.AgnosticModifiers())

	sim.SetKeyDown(VK_SHIFT, false)
	sim.SetKeyDown(VK_LWIN, false)
	sim.SetKeyDown(VK_CONTROL, true)
	sim.SetKeyDown(VK_MENU, true)
	sim.SetKeyDown(VK_RMENU, true)
	// Without AltGr, right Alt reports as ordinary Control+Alt.
	assert.Equal(t, keys.ModControl|keys.ModAlt, cache.AgnosticModifiers())
}

func TestAgnosticModifiersSuppressesAltGr(t *testing.T) {
	sim := NewSimulated(altGrLayout())
	cache := NewCacheWith(sim)

	sim.SetKeyDown(VK_CONTROL, true)
	sim.SetKeyDown(VK_MENU, true)
	sim.SetKeyDown(VK_RMENU, true)
	assert.Equal(t, keys.ModifierSet(0), cache.AgnosticModifiers())

	// Shift still reports alongside a held AltGr.
	sim.SetKeyDown(VK_SHIFT, true)
	assert.Equal(t, keys.ModShift, cache.AgnosticModifiers())
}

// =============================================================================
// Mapping Tests
// =============================================================================

func TestKeyCodeFromScanCode(t *testing.T) {
	tests := []struct {
		scan uint32
		want keys.KeyCode
	}{
		{0x0001, keys.CodeEscape},
		{0x001E, keys.CodeKeyA},
		{0x0029, keys.CodeBackquote},
		{0x0048, keys.CodeNumpad8},
		{0x0038, keys.CodeAltLeft},
		{0xE038, keys.CodeAltRight},
		{0xE035, keys.CodeNumpadDivide},
		{0xE048, keys.CodeArrowUp},
		{0xE05B, keys.CodeSuperLeft},
		{0x0000, keys.CodeUnidentified},
		{0x00FF, keys.CodeUnidentified},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyCodeFromScanCode(tt.scan), "scan 0x%04X", tt.scan)
	}
}

func TestKeyCodeToVKeyShiftPositions(t *testing.T) {
	// The shift positions resolve to the opposite-side virtual keys;
	// the mapping is kept that way on purpose.
	assert.Equal(t, uint32(VK_RSHIFT), keyCodeToVKey(keys.CodeShiftLeft, usQwertyID))
	assert.Equal(t, uint32(VK_LSHIFT), keyCodeToVKey(keys.CodeShiftRight, usQwertyID))

	assert.Equal(t, uint32(VK_LCONTROL), keyCodeToVKey(keys.CodeControlLeft, usQwertyID))
	assert.Equal(t, uint32(VK_RCONTROL), keyCodeToVKey(keys.CodeControlRight, usQwertyID))
	assert.Equal(t, uint32(VK_LMENU), keyCodeToVKey(keys.CodeAltLeft, usQwertyID))
	assert.Equal(t, uint32(VK_RMENU), keyCodeToVKey(keys.CodeAltRight, usQwertyID))
}

func TestVKeyLanguageDisambiguation(t *testing.T) {
	const (
		korean   LayoutID = 0x04120412
		japanese LayoutID = 0x04110411
	)
	nc := keys.NewNativeCode(0x70)

	assert.Equal(t, keys.NewNamed(keys.NamedHangulMode),
		vkeyToNonCharKey(VK_KANA, nc, korean, false))
	assert.Equal(t, keys.NewNamed(keys.NamedKanaMode),
		vkeyToNonCharKey(VK_KANA, nc, japanese, false))
	assert.True(t, vkeyToNonCharKey(VK_KANA, nc, usQwertyID, false).IsUnidentified())

	assert.Equal(t, keys.NewNamed(keys.NamedHanjaMode),
		vkeyToNonCharKey(VK_HANJA, nc, korean, false))
	assert.Equal(t, keys.NewNamed(keys.NamedKanjiMode),
		vkeyToNonCharKey(VK_HANJA, nc, japanese, false))

	assert.Equal(t, keys.NewNamed(keys.NamedKatakana),
		vkeyToNonCharKey(VK_OEM_FINISH, nc, japanese, false))
	assert.True(t, vkeyToNonCharKey(VK_OEM_FINISH, nc, usQwertyID, false).IsUnidentified())
}

func TestMouseButtonsHaveNoIdentity(t *testing.T) {
	nc := keys.NewNativeCode(0x1234)
	for _, vk := range []uint32{VK_LBUTTON, VK_RBUTTON, VK_MBUTTON, VK_XBUTTON1, VK_XBUTTON2} {
		k := vkeyToNonCharKey(vk, nc, usQwertyID, false)
		require.True(t, k.IsUnidentified())
		_, known := k.Native().Scancode()
		assert.False(t, known, "mouse button 0x%02X must not carry a scan code", vk)
	}
}
