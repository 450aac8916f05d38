// Package keys defines the logical key model shared by the layout engine
// and its consumers: resolved keys, physical key positions, named
// non-printable keys, native scan codes, and live modifier state.
//
// The naming follows the W3C UI Events conventions: Key values correspond
// to KeyboardEvent.key, KeyCode values to KeyboardEvent.code.
package keys

import "fmt"

// Kind discriminates the variants of a resolved Key.
type Kind uint8

const (
	// KindUnidentified is a key with no symbolic identity under the
	// current layout; only the native scan code is preserved.
	KindUnidentified Kind = iota
	// KindCharacter is a key producing a printable character string.
	KindCharacter
	// KindDead is a dead key: it produces nothing on its own and
	// modifies the next character instead.
	KindDead
	// KindNamed is a non-printable key with a well-known name.
	KindNamed
)

// Key is the resolved logical identity of a pressed key.
//
// Key is a small comparable value. Character strings stored in a Key come
// from a shared Interner, so two Character keys with the same content also
// share backing storage and compare by identity.
type Key struct {
	kind   Kind
	char   string
	dead   rune
	named  NamedKey
	native NativeCode
}

// NewCharacter returns a Character key. The caller is expected to pass an
// interned string so repeated keys share storage.
func NewCharacter(s string) Key {
	return Key{kind: KindCharacter, char: s}
}

// NewDead returns a Dead key. base is the character the dead key composes
// with a following space, or 0 when it could not be determined.
func NewDead(base rune) Key {
	return Key{kind: KindDead, dead: base}
}

// NewNamed returns a Named key.
func NewNamed(n NamedKey) Key {
	return Key{kind: KindNamed, named: n}
}

// NewUnidentified returns an Unidentified key carrying the native code.
func NewUnidentified(nc NativeCode) Key {
	return Key{kind: KindUnidentified, native: nc}
}

// Kind returns the variant of the key.
func (k Key) Kind() Kind { return k.kind }

// Character returns the produced character string. It is empty unless
// Kind is KindCharacter.
func (k Key) Character() string { return k.char }

// DeadChar returns the base character of a dead key. ok is false when the
// key is not dead or the base character is unknown.
func (k Key) DeadChar() (base rune, ok bool) {
	return k.dead, k.kind == KindDead && k.dead != 0
}

// Named returns the name of a KindNamed key, or NamedUnknown otherwise.
func (k Key) Named() NamedKey {
	if k.kind != KindNamed {
		return NamedUnknown
	}
	return k.named
}

// Native returns the native code preserved for the key. It is only
// meaningful for KindUnidentified keys.
func (k Key) Native() NativeCode { return k.native }

// IsUnidentified reports whether the key has no symbolic identity.
func (k Key) IsUnidentified() bool { return k.kind == KindUnidentified }

func (k Key) String() string {
	switch k.kind {
	case KindCharacter:
		return fmt.Sprintf("%q", k.char)
	case KindDead:
		if k.dead != 0 {
			return fmt.Sprintf("Dead(%c)", k.dead)
		}
		return "Dead"
	case KindNamed:
		return k.named.String()
	default:
		return fmt.Sprintf("Unidentified(%s)", k.native)
	}
}

// NativeCode preserves the raw scan code of a key that lacks a symbolic
// identity. The zero value means "no native identity"; it is used for
// virtual keys that do not correspond to a keyboard key at all, such as
// mouse buttons.
type NativeCode struct {
	scancode uint16
	known    bool
}

// NewNativeCode returns the native code for a scan code.
func NewNativeCode(scancode uint16) NativeCode {
	return NativeCode{scancode: scancode, known: true}
}

// Scancode returns the raw scan code. ok is false for the zero value.
func (n NativeCode) Scancode() (sc uint16, ok bool) {
	return n.scancode, n.known
}

func (n NativeCode) String() string {
	if !n.known {
		return "none"
	}
	return fmt.Sprintf("0x%04X", n.scancode)
}
