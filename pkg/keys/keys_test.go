package keys

import (
	"testing"
	"unsafe"
)

func TestKeyKinds(t *testing.T) {
	ch := NewCharacter("é")
	if ch.Kind() != KindCharacter {
		t.Errorf("expected character kind, got %v", ch.Kind())
	}
	if ch.Character() != "é" {
		t.Errorf("expected é, got %q", ch.Character())
	}

	dead := NewDead('^')
	if dead.Kind() != KindDead {
		t.Errorf("expected dead kind, got %v", dead.Kind())
	}
	base, ok := dead.DeadChar()
	if !ok || base != '^' {
		t.Errorf("expected dead base ^, got %q (ok=%v)", base, ok)
	}

	named := NewNamed(NamedEnter)
	if named.Kind() != KindNamed {
		t.Errorf("expected named kind, got %v", named.Kind())
	}
	if named.Named() != NamedEnter {
		t.Errorf("expected Enter, got %v", named.Named())
	}

	unk := NewUnidentified(NewNativeCode(0x1E))
	if !unk.IsUnidentified() {
		t.Error("expected unidentified key")
	}
	sc, ok := unk.Native().Scancode()
	if !ok || sc != 0x1E {
		t.Errorf("expected scancode 0x1E, got 0x%X (ok=%v)", sc, ok)
	}
}

func TestKeyComparable(t *testing.T) {
	if NewCharacter("a") != NewCharacter("a") {
		t.Error("equal character keys should compare equal")
	}
	if NewCharacter("a") == NewCharacter("b") {
		t.Error("distinct character keys should not compare equal")
	}
	if NewNamed(NamedShift) == NewNamed(NamedControl) {
		t.Error("distinct named keys should not compare equal")
	}
	// Mouse buttons carry no native identity and collapse to one value.
	if NewUnidentified(NativeCode{}) != NewUnidentified(NativeCode{}) {
		t.Error("identity-free unidentified keys should compare equal")
	}
}

func TestNamedKeyNamesKey(t *testing.T) {
	zero := Key{}
	if zero.Named() != NamedUnknown {
		t.Errorf("non-named key should report NamedUnknown, got %v", zero.Named())
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{NewCharacter("a"), `"a"`},
		{NewNamed(NamedArrowUp), "ArrowUp"},
		{NewDead('`'), "Dead(`)"},
		{NewUnidentified(NewNativeCode(0x29)), "Unidentified(0x0029)"},
		{NewUnidentified(NativeCode{}), "Unidentified(none)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestModifierSet(t *testing.T) {
	mods := ModShift | ModControl
	if !mods.Has(ModShift) || !mods.Has(ModControl) {
		t.Error("expected Shift and Control present")
	}
	if mods.Has(ModAlt) || mods.Has(ModSuper) {
		t.Error("expected Alt and Super absent")
	}
	if got := mods.String(); got != "Shift+Control" {
		t.Errorf("String() = %q", got)
	}
	if got := ModifierSet(0).String(); got != "none" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestParseKeyCode(t *testing.T) {
	code, err := ParseKeyCode("KeyA")
	if err != nil {
		t.Fatalf("ParseKeyCode: %v", err)
	}
	if code != CodeKeyA {
		t.Errorf("expected CodeKeyA, got %v", code)
	}
	if _, err := ParseKeyCode("NotAKey"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestInternerSharesStorage(t *testing.T) {
	in := NewInterner()

	first := in.GetOrInsert(string([]byte{'a', 'b', 'c'}))
	second := in.GetOrInsert(string([]byte{'a', 'b', 'c'}))

	if first != second {
		t.Fatal("interned strings differ in content")
	}
	if unsafe.StringData(first) != unsafe.StringData(second) {
		t.Error("interned strings should share backing storage")
	}
	if in.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", in.Len())
	}

	other := in.GetOrInsert("xyz")
	if other != "xyz" {
		t.Errorf("unexpected interned value %q", other)
	}
	if in.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", in.Len())
	}
}
