package layout

// ProbeKind classifies the outcome of a single Unicode conversion probe.
type ProbeKind uint8

const (
	// ProbeNone means the conversion produced nothing.
	ProbeNone ProbeKind = iota
	// ProbeText means the conversion settled on a character string.
	ProbeText
	// ProbeDead means the key is dead under the probed state. A dead
	// result has latched hidden OS composition state as a side effect.
	ProbeDead
)

// ProbeResult is the outcome of one raw ToUnicode call. For ProbeText,
// Text holds the settled string; for ProbeDead it holds whatever the
// conversion emitted, typically the accent character itself.
type ProbeResult struct {
	Kind ProbeKind
	Text string
}

// NativeAPI is the slice of the host platform the engine consumes. It is
// an interface so layout construction and key resolution can be driven by
// a scripted backend in tests and off Windows.
//
// Implementations never return errors: a query that fails on the OS side
// reports the same result as "no mapping", and the engine degrades to
// Unidentified keys.
type NativeAPI interface {
	// ActiveLayoutID returns the keyboard layout active for the current
	// thread.
	ActiveLayoutID() LayoutID

	// MapToScanCode maps a virtual key to its extended scan code under
	// the given layout (MAPVK_VK_TO_VSC_EX). This is a pure mapping,
	// independent of live key state; 0 means the key does not exist on
	// the layout. Numpad-agnostic virtual keys map as if NumLock were
	// off, which the engine relies on to discover numpad aliasing.
	MapToScanCode(vkey uint32, id LayoutID) uint32

	// ToUnicode converts a key under a synthesized key state into text.
	// This is the stateful probe: a ProbeDead result leaves the OS
	// dead-key latch set, and the caller is required to probe once more
	// at the same inputs to clear it before probing anything else. Use
	// settleProbe for the full peek-then-consume sequence.
	ToUnicode(vkey, scancode uint32, state *[256]byte, id LayoutID) ProbeResult

	// KeyboardState returns a fresh 256-entry snapshot of live key
	// state: bit 0x80 set while a key is held, bit 0x01 tracking the
	// toggle of CapsLock and NumLock.
	KeyboardState() [256]byte
}
